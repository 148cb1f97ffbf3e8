package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// corsMaxAge is how long, in seconds, browsers may cache a preflight result.
const corsMaxAge = 600

// allowedMethods is every method a browser may name in a preflight.
var allowedMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodConnect,
	http.MethodOptions,
	http.MethodTrace,
}

// CORSOptions configures the CORS middleware.
type CORSOptions struct {
	// AllowedOrigins is the exact-match origin allow-list.
	AllowedOrigins []string
	// Logger, when set, receives the middleware's per-request decisions.
	Logger *zap.Logger
}

// CORS returns middleware that grants credentialed cross-origin access to the
// allow-listed origins only. Allowed origins are echoed back, every method is
// allowed and the requested headers are reflected on preflight. Preflight
// requests are answered with 200 and an empty body without reaching the router.
// Other origins get no Access-Control-Allow-* headers.
func CORS(opts CORSOptions) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   allowedMethods,
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Link", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           corsMaxAge,
	})
	if opts.Logger != nil {
		c.Log = zap.NewStdLog(opts.Logger)
	}
	return c.Handler
}

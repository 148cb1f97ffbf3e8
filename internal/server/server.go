// Package server assembles the HTTP handler and runs the HTTP server.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/janisto/budget-shop-api/internal/config"
	"github.com/janisto/budget-shop-api/internal/http/routes"
	"github.com/janisto/budget-shop-api/internal/http/version"
	"github.com/janisto/budget-shop-api/internal/platform/logging"
	appmiddleware "github.com/janisto/budget-shop-api/internal/platform/middleware"
	"github.com/janisto/budget-shop-api/internal/platform/respond"
)

const (
	// Title and Description populate the OpenAPI info block.
	Title       = "Budget Shop API"
	Description = "Backend API for Budget Shop application"

	docsPath        = "/docs"
	maxBodyBytes    = 1 << 20
	shutdownTimeout = 10 * time.Second
)

// NewHandler builds the router with the full middleware chain and every route.
func NewHandler(cfg config.Config) http.Handler {
	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	corsOpts := appmiddleware.CORSOptions{AllowedOrigins: cfg.CORS.AllowedOrigins}
	if cfg.CORS.Debug {
		corsOpts.Logger = logging.Logger().Named("cors")
	}

	router.Use(
		appmiddleware.Security(docsPath),
		appmiddleware.Vary(),
		appmiddleware.CORS(corsOpts),
		appmiddleware.RequestID(),
		// RealIP trusts X-Forwarded-For / X-Real-IP; run behind a trusted proxy only.
		chimiddleware.RealIP,
		chimiddleware.RequestSize(maxBodyBytes),
		logging.RequestLogger(),
		logging.AccessLogger(),
		respond.Recoverer(),
	)

	apiCfg := huma.DefaultConfig(Title, version.Version)
	apiCfg.Info.Description = Description
	apiCfg.DocsPath = docsPath
	// No $schema field or describedBy link: response bodies carry only their documented keys.
	apiCfg.CreateHooks = nil
	api := humachi.New(router, apiCfg)
	api.OpenAPI().OnAddOperation = append(api.OpenAPI().OnAddOperation, documentCBOR)

	routes.Register(router, api)
	return router
}

// documentCBOR advertises application/cbor next to every JSON body in the
// OpenAPI document.
func documentCBOR(_ *huma.OpenAPI, op *huma.Operation) {
	if op.RequestBody != nil && op.RequestBody.Content != nil {
		if content, ok := op.RequestBody.Content["application/json"]; ok {
			op.RequestBody.Content["application/cbor"] = content
		}
	}
	for _, resp := range op.Responses {
		if resp.Content == nil {
			continue
		}
		if content, ok := resp.Content["application/json"]; ok {
			resp.Content["application/cbor"] = content
		}
	}
}

// New returns an http.Server for cfg serving handler.
func New(cfg config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           handler,
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    64 << 10,
		ErrorLog:          zap.NewStdLog(logging.Logger().Named("http")),
	}
}

// Serve runs srv on ln until ctx is cancelled, then shuts down gracefully,
// giving in-flight requests up to shutdownTimeout to finish. It returns once
// the serve goroutine has exited.
func Serve(ctx context.Context, srv *http.Server, ln net.Listener) error {
	serveErr := make(chan error, 1)
	go func() {
		defer close(serveErr)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()
	logging.Info(ctx, "server listening", zap.String("addr", ln.Addr().String()))

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("serve %s: %w", ln.Addr(), err)
		}
		return nil
	case <-ctx.Done():
	}

	logging.Info(ctx, "shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	<-serveErr
	logging.Info(ctx, "server exited")
	return nil
}

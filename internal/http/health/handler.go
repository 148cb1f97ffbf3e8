// Package health serves the liveness probe. It is a plain net/http handler
// mounted outside Huma so probes never depend on content negotiation.
package health

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/janisto/budget-shop-api/internal/platform/logging"
)

// Path is where the handler is mounted.
const Path = "/health"

// Response is the health payload.
type Response struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

var healthy = Response{Status: "healthy", Service: "budget-shop-api"}

// Handler reports that the process can serve requests. It makes no downstream calls.
func Handler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(healthy); err != nil {
		logging.Warn(r.Context(), "failed to write health response", zap.Error(err))
	}
}

package routes

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"

	"github.com/janisto/budget-shop-api/internal/http/health"
	"github.com/janisto/budget-shop-api/internal/http/root"
	"github.com/janisto/budget-shop-api/internal/http/version"
)

// Register wires all HTTP routes. The health probe goes straight on the
// router; everything else is a documented Huma operation.
func Register(router chi.Router, api huma.API) {
	router.Get(health.Path, health.Handler)

	root.Register(api)
	version.Register(api)
}

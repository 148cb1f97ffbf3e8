package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
)

func TestRegisterMountsEveryRoute(t *testing.T) {
	router := chi.NewRouter()
	api := humachi.New(router, huma.DefaultConfig("RoutesTest", "test"))
	Register(router, api)

	for _, path := range []string{"/", "/health", "/api/version"} {
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, path, nil))
		if resp.Code != http.StatusOK {
			t.Errorf("GET %s: expected 200, got %d", path, resp.Code)
		}
	}
}

func TestRegisterDocumentsHumaOperations(t *testing.T) {
	router := chi.NewRouter()
	api := humachi.New(router, huma.DefaultConfig("RoutesTest", "test"))
	Register(router, api)

	paths := api.OpenAPI().Paths
	for _, path := range []string{"/", "/api/version"} {
		if item := paths[path]; item == nil || item.Get == nil {
			t.Errorf("expected GET %s in OpenAPI document", path)
		}
	}
	if _, ok := paths["/health"]; ok {
		t.Error("did not expect the plain health probe in the OpenAPI document")
	}
}

func TestRegisterGivesEachPayloadItsOwnSchema(t *testing.T) {
	router := chi.NewRouter()
	api := humachi.New(router, huma.DefaultConfig("RoutesTest", "test"))

	defer func() {
		if rec := recover(); rec != nil {
			t.Fatalf("registering every operation on one API panicked: %v", rec)
		}
	}()
	Register(router, api)

	schemas := api.OpenAPI().Components.Schemas.Map()
	for _, name := range []string{"WelcomeData", "VersionData"} {
		if _, ok := schemas[name]; !ok {
			t.Errorf("expected schema %q in registry, got %d schemas", name, len(schemas))
		}
	}
}

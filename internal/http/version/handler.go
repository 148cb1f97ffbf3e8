// Package version reports the API version.
package version

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

const (
	// Version is the released API version.
	Version = "0.1.0"
	// Framework names the HTTP framework serving the API. Informational only.
	Framework = "Huma"
)

// Register wires GET /api/version into the API.
func Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-version",
		Method:      http.MethodGet,
		Path:        "/api/version",
		Summary:     "API version",
		Tags:        []string{"Meta"},
	}, getHandler)
}

func getHandler(_ context.Context, _ *struct{}) (*VersionOutput, error) {
	return &VersionOutput{Body: VersionData{Version: Version, Framework: Framework}}, nil
}

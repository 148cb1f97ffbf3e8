// Package root serves the API welcome message.
package root

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// Message is the fixed welcome text.
const Message = "Welcome to Budget Shop API"

// Register wires GET / into the API.
func Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-root",
		Method:      http.MethodGet,
		Path:        "/",
		Summary:     "Welcome message",
		Tags:        []string{"Meta"},
	}, getHandler)
}

func getHandler(_ context.Context, _ *struct{}) (*WelcomeOutput, error) {
	return &WelcomeOutput{Body: WelcomeData{Message: Message}}, nil
}

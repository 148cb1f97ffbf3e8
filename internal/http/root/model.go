package root

// WelcomeData models the response payload for the root endpoint.
type WelcomeData struct {
	Message string `json:"message" doc:"Welcome message" example:"Welcome to Budget Shop API"`
}

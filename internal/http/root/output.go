package root

// WelcomeOutput is the response wrapper for GET /.
type WelcomeOutput struct {
	Body WelcomeData
}

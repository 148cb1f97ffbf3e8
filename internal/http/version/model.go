package version

// VersionData models the response payload for the version endpoint.
type VersionData struct {
	Version   string `json:"version" doc:"API version" example:"0.1.0"`
	Framework string `json:"framework" doc:"Framework serving the API" example:"Huma"`
}

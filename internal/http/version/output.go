package version

// VersionOutput is the response wrapper for GET /api/version.
type VersionOutput struct {
	Body VersionData
}

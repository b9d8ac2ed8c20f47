package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// BodyLimitMB caps the request body size in mebibytes. Uploads larger
	// than this are rejected by Fiber before the handler runs.
	BodyLimitMB int `mapstructure:"body_limit_mb" default:"16"`
	// ActorID attributes records created by unauthenticated CLI-style callers.
	// Empty means no owner attribution.
	ActorID string `mapstructure:"actor_id" default:""`
}

// BodyLimitBytes returns the body limit in bytes, falling back to 16 MiB
// when the configured value is not positive.
func (c Config) BodyLimitBytes() int {
	mb := c.BodyLimitMB
	if mb <= 0 {
		mb = 16
	}
	return mb * 1024 * 1024
}

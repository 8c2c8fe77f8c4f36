package server

// DefaultBodyLimitMB bounds request bodies when no explicit limit is configured.
// Media uploads (logos, dish photos) are the only large payloads.
const DefaultBodyLimitMB = 8

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// BodyLimitMB is the maximum accepted request body size in megabytes.
	BodyLimitMB int `mapstructure:"body_limit_mb" default:"8"`
}

// BodyLimitBytes returns the configured body limit in bytes,
// falling back to DefaultBodyLimitMB for zero or negative values.
func (c Config) BodyLimitBytes() int {
	mb := c.BodyLimitMB
	if mb <= 0 {
		mb = DefaultBodyLimitMB
	}
	return mb * 1024 * 1024
}

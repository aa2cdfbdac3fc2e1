package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// BodyLimitMB caps the size of a request body (both uploads together).
	BodyLimitMB int `mapstructure:"body_limit_mb" default:"32"`
	// Swagger exposes the API documentation under /swagger.
	Swagger bool `mapstructure:"swagger" default:"true"`
}

const defaultBodyLimitMB = 32

// BodyLimitBytes returns the request body limit in bytes.
func (c Config) BodyLimitBytes() int {
	mb := c.BodyLimitMB
	if mb <= 0 {
		mb = defaultBodyLimitMB
	}
	return mb << 20
}

// Address returns the listen address.
func (c Config) Address() string {
	if c.Port == "" {
		return ":8080"
	}
	return ":" + c.Port
}

package server

// Config holds configuration for the sandbox HTTP server.
type Config struct {
	// Host is the interface the server binds to.
	Host string `mapstructure:"host" default:"127.0.0.1"`
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8000"`
	// Token is the API token clients must send. Empty disables auth.
	Token string `mapstructure:"token" default:""`
}

// Address returns host:port.
func (c Config) Address() string {
	return c.Host + ":" + c.Port
}

// BaseURL returns the API root clients should use.
func (c Config) BaseURL() string {
	host := c.Host
	if host == "" || host == "0.0.0.0" {
		host = "127.0.0.1"
	}
	return "http://" + host + ":" + c.Port + "/api/"
}

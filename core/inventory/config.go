package inventory

// Config holds configuration for the inventory API client.
type Config struct {
	// URL is the base URL of the API, with or without the trailing "/api".
	URL string `mapstructure:"url" default:"http://localhost:8000/api/"`
	// Token is the API token sent as "Authorization: Token <token>".
	Token string `mapstructure:"token" default:""`
	// InsecureSkipVerify disables TLS certificate verification.
	// Only meant for self-signed internal endpoints.
	InsecureSkipVerify bool `mapstructure:"insecure_skip_verify" default:"false"`
	// TimeoutSeconds bounds every request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

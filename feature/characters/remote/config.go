package remote

// Config holds configuration for the remote characters API.
type Config struct {
	// BaseURL is the default API base when neither --api nor a stored preference is set.
	BaseURL string `mapstructure:"base_url" default:"http://localhost:3000"`
	// TimeoutSeconds bounds every request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
}

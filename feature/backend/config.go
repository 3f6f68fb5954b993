package backend

// Config holds configuration for the development backend.
type Config struct {
	// Port is the HTTP port the backend listens on.
	Port string `mapstructure:"port" default:"3000"`
	// ReadOnly rejects every write with 403.
	ReadOnly bool `mapstructure:"read_only" default:"false"`
	// SeedFile is a json-server db.json used to fill an empty table.
	SeedFile string `mapstructure:"seed_file" default:""`
	// ImagesEnabled serves /images from object storage.
	ImagesEnabled bool `mapstructure:"images_enabled" default:"false"`
	// ImagesPrefix is the object key prefix for images.
	ImagesPrefix string `mapstructure:"images_prefix" default:"images"`
}

// Addr returns the listen address.
func (c Config) Addr() string {
	return ":" + c.Port
}

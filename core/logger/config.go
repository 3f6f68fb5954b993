package logger

// Config holds configuration for the logger.
type Config struct {
	// Level is the minimum enabled level (debug, info, warn, error).
	Level string `mapstructure:"level" default:"info"`
	// Format is the encoding, either json or console.
	Format string `mapstructure:"format" default:"console"`
}

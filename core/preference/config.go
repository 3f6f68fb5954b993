package preference

// Config holds configuration for the preference store.
type Config struct {
	// File is the path of the preference file. Empty means <UserConfigDir>/flatacuties/preferences.yaml.
	File string `mapstructure:"file" default:""`
}

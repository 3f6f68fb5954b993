package config

import (
	"reflect"
	"strings"

	"flatacuties/core/database"
	"flatacuties/core/logger"
	"flatacuties/core/preference"
	"flatacuties/core/server"
	"flatacuties/core/storage"
	"flatacuties/feature/backend"
	"flatacuties/feature/characters/reconcile"
	"flatacuties/feature/characters/remote"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application, one section per concern.
type Config struct {
	// Server is the session API server.
	Server server.Config `mapstructure:"server"`
	// Remote is the characters API the session syncs with.
	Remote remote.Config `mapstructure:"remote"`
	// Session holds reconciliation settings.
	Session reconcile.Config `mapstructure:"session"`
	// Preference locates the stored API base preference.
	Preference preference.Config `mapstructure:"preference"`
	// Backend is the development characters API.
	Backend backend.Config `mapstructure:"backend"`
	// Storage is the object storage holding character images.
	Storage storage.Config `mapstructure:"storage"`
	// Database is the backend's database.
	Database database.Config `mapstructure:"database"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// a missing .env is fine
	_ = godotenv.Overload(envPath)

	v := viper.New()

	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. SERVER_PORT -> server.port)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues registers every mapstructure key of iface with viper, using the
// field's default tag as its value, so AutomaticEnv can resolve it.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// sections recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// empty defaults still register the key
		v.SetDefault(key, defaultValue)
	}
}

package reconcile

// Config holds the session reconciliation settings.
type Config struct {
	// OnPersistFailure is retain or revert.
	OnPersistFailure string `mapstructure:"on_persist_failure" default:"retain"`
	// RefreshOnSelect fetches every selected record from the remote instead of the cache.
	RefreshOnSelect bool `mapstructure:"refresh_on_select" default:"false"`
	// PersistTimeoutSeconds bounds each background persistence call.
	PersistTimeoutSeconds int `mapstructure:"persist_timeout_seconds" default:"15"`
}

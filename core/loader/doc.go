// Package loader provides the plugin-like feature loading system.
//
// Each feature implements the Feature interface, which defines its name, whether
// it is enabled, and its route registration logic.
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// The Manager keeps the registry of features and loads the enabled ones with
// LoadAll. The session API (characters) and the development backend are both
// loaded this way.
package loader

// Package loader provides the plugin-like feature loading system.
//
// Each feature implements the Feature interface, which reports whether it is
// enabled and registers its routes.
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// The Manager holds the registry: Register adds features and LoadAll loads
// the enabled ones in registration order. Features such as 'relationships'
// and 'integrity' are developed and tested in isolation.
package loader

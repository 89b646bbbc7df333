// Package provider implements capability provider discovery: selecting
// exactly one implementation of a pluggable capability (a database driver, a
// model backend) from whatever implementations were registered.
//
// Each capability owns a typed Registry; implementations register a
// Descriptor at a well-defined initialization point. Discovery returns an
// immutable snapshot, and selection follows a strict policy: a single
// registered implementation is used automatically, while multiple
// implementations require an explicit discriminator via Named selection.
//
// Usage:
//
//	var drivers = provider.NewRegistry[Driver]()
//
//	func init() { // or explicit wiring in the embedding app
//	    drivers.Register(provider.Descriptor[Driver]{Name: "postgres", New: newPostgres})
//	}
//
//	descriptor, err := provider.Choose(drivers.Discover(), provider.Named(kind))
package provider

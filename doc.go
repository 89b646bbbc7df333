// Package kalla is a configuration resolution engine for modular
// applications: components declare their settings as keys, register them
// with a shared registry at construction time, and resolve effective values
// through a fixed precedence of sources.
//
// # Keys and sources
//
// A Key identifies one setting by owner type, dot-delimited name and an
// optional instance prefix. It derives both canonical spellings: the
// property form ("orders.pool.max.size") and the environment form
// ("ORDERS_POOL_MAX_SIZE"). A Source describes where the raw string comes
// from; most settings use Derived sources and rely entirely on the key's
// spellings.
//
//	type PoolConfig struct{ registry *kalla.Registry }
//
//	var maxSize = kalla.Of[PoolConfig]("pool.max.size")
//
//	func NewPoolConfig(registry *kalla.Registry) *PoolConfig {
//	    registry.Register(maxSize, kalla.Derived().WithDefault("10"))
//	    return &PoolConfig{registry: registry}
//	}
//
// # Resolution order
//
// Resolve walks a fixed tier order regardless of how the source was
// declared: environment variable, mutable runtime property, file-backed
// property, host environment, and finally the source's own declared value or
// default. Operational overrides therefore always win over checked-in
// configuration, and an explicit default is the last resort.
//
// # Multi-instance components
//
// Several independently configured instances of one component type coexist
// by namespacing keys under instance prefixes. DiscoverPrefixes extracts the
// distinct prefixes from the raw configured names across all tiers, so
// orchestration code learns how many instances exist without enumerating
// them in advance; Prefixed clones a component's binding set under each
// discovered prefix.
//
// Capability provider selection lives in the provider subpackage; host
// environment adapters live in the host subpackage. Module wires the
// registry into an Fx application.
package kalla

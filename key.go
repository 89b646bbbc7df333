package kalla

import (
	"reflect"
	"strings"
)

// Key is the immutable identity of one configurable setting. It combines the
// owning component type, a dot-delimited setting name and an optional
// instance prefix. Two keys are equal iff all three parts are equal, so keys
// can be used directly as map keys.
//
// Keys are declared once per setting, typically as package-level variables:
//
//	var hostKey = kalla.Of[QdrantConfig]("host")
type Key struct {
	owner  reflect.Type
	name   string
	prefix string
}

// Of creates an unprefixed key owned by the component type C.
// It panics if name is empty; key declarations are static and an empty name
// is a programming error, not a runtime condition.
func Of[C any](name string) Key {
	if name == "" {
		panic(ErrEmptyName)
	}

	return Key{
		owner: reflect.TypeOf((*C)(nil)).Elem(),
		name:  name,
	}
}

// WithPrefix returns a copy of the key namespaced under the given instance
// prefix. An empty prefix returns the key unchanged. The receiver is never
// mutated; prefixed keys are distinct values with their own bindings.
func (k Key) WithPrefix(prefix string) Key {
	if prefix == "" {
		return k
	}

	k.prefix = prefix

	return k
}

// Owner returns the component type that declared the key.
func (k Key) Owner() reflect.Type {
	return k.owner
}

// Prefix returns the instance prefix, or the empty string for an unprefixed key.
func (k Key) Prefix() string {
	return k.prefix
}

// Name returns the full setting name, including the prefix when present.
func (k Key) Name() string {
	if k.prefix == "" {
		return k.name
	}

	return k.prefix + "." + k.name
}

// PropertyName returns the canonical property spelling of the key:
// underscores folded to dots, lower-cased.
// Example: (prefix "orders", name "pool.max.size") -> "orders.pool.max.size".
func (k Key) PropertyName() string {
	return strings.ToLower(strings.ReplaceAll(k.Name(), "_", "."))
}

// EnvName returns the canonical environment variable spelling of the key:
// dots folded to underscores, upper-cased.
// Example: (prefix "orders", name "pool.max.size") -> "ORDERS_POOL_MAX_SIZE".
func (k Key) EnvName() string {
	return strings.ToUpper(strings.ReplaceAll(k.Name(), ".", "_"))
}

// Matches reports whether a raw configured name refers to this key. The raw
// name is compared against the canonical property spelling; callers normalize
// environment variable names before matching.
func (k Key) Matches(raw string) bool {
	return raw == k.PropertyName()
}

// String returns a diagnostic rendering of the key.
func (k Key) String() string {
	if k.owner == nil {
		return k.Name()
	}

	return k.owner.Name() + "/" + k.Name()
}

package kalla

// Source describes how a raw string value is obtained for a key. It is a
// closed tagged variant: a source either derives its lookup names from the
// key, overrides one of them, pins a fixed value, or wraps any of those with
// a fallback default.
//
// A Source is a pure description. It never caches resolved values, so
// environment variables and mutable properties changed between calls (as
// tests routinely do) are observed on the next resolution.
type Source struct {
	kind     sourceKind
	value    string
	env      string
	property string
	file     string
	def      func() string
}

type sourceKind uint8

const (
	kindDerived sourceKind = iota
	kindLiteral
	kindEnv
	kindProperty
	kindFile
)

// Derived declares a source whose environment and property spellings are
// derived entirely from the key. This is the common case for component
// settings.
func Derived() Source {
	return Source{kind: kindDerived}
}

// Literal declares a fixed value. The operational tiers (environment,
// property, file, host) are still consulted first, so a literal behaves as a
// declared value that operators can override.
func Literal(value string) Source {
	return Source{kind: kindLiteral, value: value}
}

// FromEnv declares a source whose environment tier reads the given variable
// instead of the key's derived spelling. All other tiers keep the derived
// names.
func FromEnv(varName string) Source {
	return Source{kind: kindEnv, env: varName}
}

// FromProperty declares a source whose mutable property tier reads the given
// property name instead of the key's derived spelling.
func FromProperty(propName string) Source {
	return Source{kind: kindProperty, property: propName}
}

// FromFile declares a source whose file tier reads propName from the given
// properties file. The file is loaded at most once per process; a missing or
// unreadable file makes the tier contribute nothing.
func FromFile(file, propName string) Source {
	return Source{kind: kindFile, file: file, property: propName}
}

// WithDefault returns a copy of the source with a fallback value used when
// every tier comes up empty.
func (s Source) WithDefault(value string) Source {
	s.def = func() string { return value }

	return s
}

// WithDefaultFunc returns a copy of the source with a lazily computed
// fallback. The function is invoked on each resolution that reaches the
// default tier.
func (s Source) WithDefaultFunc(fn func() string) Source {
	s.def = fn

	return s
}

// envName returns the environment variable consulted for the key.
func (s Source) envName(key Key) string {
	if s.kind == kindEnv && s.env != "" {
		return s.env
	}

	return key.EnvName()
}

// propertyName returns the property name consulted for the key.
func (s Source) propertyName(key Key) string {
	if (s.kind == kindProperty || s.kind == kindFile) && s.property != "" {
		return s.property
	}

	return key.PropertyName()
}

// fallback returns the source's own contribution: the pinned literal value
// or the declared default.
func (s Source) fallback() (string, bool) {
	if s.kind == kindLiteral {
		return s.value, true
	}

	if s.def != nil {
		return s.def(), true
	}

	return "", false
}

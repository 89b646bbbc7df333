package kalla

// Binding pairs a key with the source describing how to obtain its value.
// Components declare their settings as a binding set and register the whole
// set at construction time.
type Binding struct {
	Key    Key
	Source Source
}

// Bind is a convenience constructor for a Binding.
func Bind(key Key, source Source) Binding {
	return Binding{Key: key, Source: source}
}

// Prefixed returns a copy of the binding set with every key namespaced under
// the given instance prefix. The input set is not modified. An empty prefix
// returns a plain copy.
//
// This is how multi-instance components register one configuration set per
// discovered instance: the declared (unprefixed) set stays as the template,
// and each instance registers its own prefixed clone.
func Prefixed(bindings []Binding, prefix string) []Binding {
	out := make([]Binding, len(bindings))

	for i, b := range bindings {
		out[i] = Binding{Key: b.Key.WithPrefix(prefix), Source: b.Source}
	}

	return out
}

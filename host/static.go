package host

// StaticEnvironment is an always-available environment backed by a fixed
// map. Embedding applications use it to hand their own property space to the
// engine; tests use it to stand in for a real host.
type StaticEnvironment struct {
	name   string
	values map[string]string
}

// Static creates an environment from a copy of the given values.
func Static(name string, values map[string]string) *StaticEnvironment {
	copied := make(map[string]string, len(values))
	for k, v := range values {
		copied[k] = v
	}

	return &StaticEnvironment{name: name, values: copied}
}

// Name identifies the environment.
func (s *StaticEnvironment) Name() string {
	return s.name
}

// Available always reports true.
func (s *StaticEnvironment) Available() bool {
	return true
}

// Lookup returns the value for the given property name.
func (s *StaticEnvironment) Lookup(propertyName string) (string, bool) {
	value, ok := s.values[propertyName]

	return value, ok
}

// PropertyNames returns every property name in the backing map.
func (s *StaticEnvironment) PropertyNames() []string {
	names := make([]string, 0, len(s.values))
	for name := range s.values {
		names = append(names, name)
	}

	return names
}

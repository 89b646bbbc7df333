package host

import (
	"github.com/0xalexb/kalla/props"
)

// PropertiesEnvironment reads host configuration from a .properties file,
// the convention of properties-based embedding frameworks. The file is
// loaded once via the shared loader; if it is absent the environment reports
// itself unavailable.
type PropertiesEnvironment struct {
	name   string
	file   string
	loader *props.Loader
}

// Properties creates a host environment backed by the given properties file.
func Properties(name, file string, loader *props.Loader) *PropertiesEnvironment {
	return &PropertiesEnvironment{name: name, file: file, loader: loader}
}

// Name identifies the environment.
func (p *PropertiesEnvironment) Name() string {
	return p.name
}

// Available reports whether the backing file was found and parsed.
func (p *PropertiesEnvironment) Available() bool {
	return p.loader.Names(p.file) != nil
}

// Lookup returns the value for the given property name.
func (p *PropertiesEnvironment) Lookup(propertyName string) (string, bool) {
	return p.loader.Lookup(p.file, propertyName)
}

// PropertyNames returns every property name defined in the backing file.
func (p *PropertiesEnvironment) PropertyNames() []string {
	return p.loader.Names(p.file)
}

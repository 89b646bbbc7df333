package kalla

import (
	"log/slog"
	"os"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/0xalexb/kalla/host"
	"github.com/0xalexb/kalla/props"
)

// Registry is the configuration store components register their settings
// with and resolve them from. It is an explicit object: construct one per
// process (or per test) and hand it to every component at construction time.
//
// Resolution walks a fixed tier order regardless of how a source was
// declared: environment variable, mutable property, file-backed property,
// host environment, and finally the source's own declared value or default.
// Operational overrides always win over checked-in configuration.
//
// All methods are safe for concurrent use; components self-register
// concurrently during startup.
type Registry struct {
	logger   *slog.Logger
	files    *props.Loader
	detector *host.Detector

	mu         sync.RWMutex
	bindings   map[Key]Source
	instances  map[reflect.Type]any
	properties map[string]string
	fileNames  []string
}

// New creates an empty registry configured by the given options.
func New(opts ...Option) *Registry {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Registry{
		logger:     logger,
		files:      props.NewLoader(options.ResourcePaths...),
		detector:   host.NewDetector(options.Hosts...),
		bindings:   make(map[Key]Source),
		instances:  make(map[reflect.Type]any),
		properties: make(map[string]string),
	}
}

// Register binds a source to a key, overwriting any prior binding for the
// same key. Re-registering an identical binding is a harmless no-op;
// registering a different source is a deliberate override, which is how
// tests pin values.
func (r *Registry) Register(key Key, source Source) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.bindings[key] = source

	if source.kind == kindFile {
		r.addFile(source.file)
	}

	r.logger.Debug("registered configuration key", "key", key.String())
}

// RegisterAll registers every binding in the set.
func (r *Registry) RegisterAll(bindings []Binding) {
	for _, b := range bindings {
		r.Register(b.Key, b.Source)
	}
}

// Unregister removes the binding for a key. Intended for test isolation.
func (r *Registry) Unregister(key Key) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.bindings, key)
}

// RegisterInstance stores the singleton component instance for its dynamic
// type, overwriting any prior instance so repeated construction in tests is
// safe. Retrieve it with Instance, using the same type it was stored under.
func (r *Registry) RegisterInstance(instance any) {
	if instance == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.instances[reflect.TypeOf(instance)] = instance
}

// Instance returns the registered singleton of type C, if any.
func Instance[C any](r *Registry) (C, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.instances[reflect.TypeOf((*C)(nil)).Elem()]
	if !ok {
		var zero C

		return zero, false
	}

	typed, ok := stored.(C)

	return typed, ok
}

// RegisterFile adds a properties file to the file tier. By convention each
// component registers one file named after itself; the file is resolved
// against the registry's resource paths and loaded at most once, on first
// resolution that reaches the file tier.
func (r *Registry) RegisterFile(file string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.addFile(file)
}

// addFile appends a file name once, preserving registration order.
// Callers hold the write lock.
func (r *Registry) addFile(file string) {
	for _, existing := range r.fileNames {
		if existing == file {
			return
		}
	}

	r.fileNames = append(r.fileNames, file)
}

// SetProperty sets a mutable runtime property. Properties live for the
// process (or registry) lifetime and rank below environment variables and
// above file-backed values.
func (r *Registry) SetProperty(name, value string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.properties[name] = value
}

// Property returns the current value of a mutable runtime property.
func (r *Registry) Property(name string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	value, ok := r.properties[name]

	return value, ok
}

// ClearProperty removes a mutable runtime property.
func (r *Registry) ClearProperty(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.properties, name)
}

// Resolve returns the effective value for a key, walking the tiers in fixed
// order: environment, mutable property, file, host environment, declared
// value or default. Absence is a normal outcome, not an error.
//
// A key that was never registered resolves with fully derived names, which
// is what lets prefixed variants of a declared key resolve without separate
// registration.
func (r *Registry) Resolve(key Key) (string, bool) {
	r.mu.RLock()

	source := r.bindings[key]
	fileNames := r.fileNames

	propertyValue, propertyFound := r.properties[source.propertyName(key)]

	r.mu.RUnlock()

	if value, ok := os.LookupEnv(source.envName(key)); ok {
		return value, true
	}

	if propertyFound {
		return propertyValue, true
	}

	if value, ok := r.resolveFile(key, source, fileNames); ok {
		return value, true
	}

	if env, ok := r.detector.Detect(); ok {
		if value, found := env.Lookup(key.PropertyName()); found {
			return value, true
		}
	}

	return source.fallback()
}

// resolveFile looks the key up in the file tier: the source's own file when
// it declares one, otherwise every registered component file in order.
func (r *Registry) resolveFile(key Key, source Source, fileNames []string) (string, bool) {
	if source.kind == kindFile {
		return r.files.Lookup(source.file, source.propertyName(key))
	}

	for _, file := range fileNames {
		if value, ok := r.files.Lookup(file, key.PropertyName()); ok {
			return value, true
		}
	}

	return "", false
}

// Require resolves a key that must have a value. When the full tier walk
// comes up empty it returns a MissingConfigError carrying both derived
// spellings.
func (r *Registry) Require(key Key) (string, error) {
	value, ok := r.Resolve(key)
	if !ok {
		return "", &MissingConfigError{
			Property: key.PropertyName(),
			Env:      key.EnvName(),
		}
	}

	return value, nil
}

// ResolveList resolves a key and splits the raw value on commas, with no
// trimming. An absent key yields nil; an empty value yields a single empty
// element, which is deliberate: "set to nothing" and "not set" are different
// statements.
func (r *Registry) ResolveList(key Key) []string {
	value, ok := r.Resolve(key)
	if !ok {
		return nil
	}

	return strings.Split(value, ",")
}

// DiscoverPrefixes applies a pattern with exactly one capture group to every
// configured name visible across the tiers (environment variables normalized
// to dotted lower-case form, mutable properties, file-backed properties and
// host properties) and returns the distinct captured values, sorted.
//
// This is how orchestration code learns how many instances of a
// multi-instance component exist: keys "orders.jdbc.url" and
// "inventory.jdbc.url" under the pattern `(.+)\.jdbc\..*` yield
// ["inventory", "orders"].
func (r *Registry) DiscoverPrefixes(pattern string) ([]string, error) {
	matcher, err := regexp.Compile("^(?:" + pattern + ")$")
	if err != nil {
		return nil, err
	}

	if matcher.NumSubexp() != 1 {
		return nil, ErrPrefixPattern
	}

	distinct := make(map[string]struct{})

	for _, name := range r.configuredNames() {
		if match := matcher.FindStringSubmatch(name); match != nil {
			distinct[match[1]] = struct{}{}
		}
	}

	prefixes := make([]string, 0, len(distinct))
	for prefix := range distinct {
		prefixes = append(prefixes, prefix)
	}

	sort.Strings(prefixes)

	r.logger.Debug("discovered instance prefixes", "pattern", pattern, "prefixes", prefixes)

	return prefixes, nil
}

// configuredNames collects the normalized raw key names from every tier.
func (r *Registry) configuredNames() []string {
	var names []string

	for _, entry := range os.Environ() {
		name, _, found := strings.Cut(entry, "=")
		if found {
			names = append(names, normalizeName(name))
		}
	}

	r.mu.RLock()

	for name := range r.properties {
		names = append(names, normalizeName(name))
	}

	fileNames := r.fileNames

	r.mu.RUnlock()

	for _, file := range fileNames {
		for _, name := range r.files.Names(file) {
			names = append(names, normalizeName(name))
		}
	}

	if env, ok := r.detector.Detect(); ok {
		for _, name := range env.PropertyNames() {
			names = append(names, normalizeName(name))
		}
	}

	return names
}

// normalizeName folds any raw configured name to the canonical property
// spelling: underscores to dots, lower case. Environment variable names and
// property names normalize through the same rule.
func normalizeName(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, "_", "."))
}

// Reset clears every binding, instance, mutable property and registered
// file. Intended for test isolation; production code constructs a registry
// once and never resets it.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.bindings = make(map[Key]Source)
	r.instances = make(map[reflect.Type]any)
	r.properties = make(map[string]string)
	r.fileNames = nil
}

package host

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"dario.cat/mergo"
	"github.com/goccy/go-yaml"
)

// YAMLEnvironment reads host configuration from a YAML document, flattened
// to canonical dotted property names. Profile overlays, named after the base
// file ("application.yaml" + profile "prod" -> "application-prod.yaml"), are
// deep-merged over the base document with overlay values winning.
//
// The document is read and flattened once; a missing or malformed base file
// makes the environment unavailable.
type YAMLEnvironment struct {
	name     string
	path     string
	profiles []string

	once   sync.Once
	values map[string]string
}

// YAML creates a host environment backed by the given YAML file and optional
// profile overlays.
func YAML(name, path string, profiles ...string) *YAMLEnvironment {
	return &YAMLEnvironment{name: name, path: path, profiles: profiles}
}

// Name identifies the environment.
func (y *YAMLEnvironment) Name() string {
	return y.name
}

// Available reports whether the base document was found and parsed.
func (y *YAMLEnvironment) Available() bool {
	y.load()

	return y.values != nil
}

// Lookup returns the value for the given dotted property name.
func (y *YAMLEnvironment) Lookup(propertyName string) (string, bool) {
	y.load()

	value, ok := y.values[propertyName]

	return value, ok
}

// PropertyNames returns every flattened property name in the document.
func (y *YAMLEnvironment) PropertyNames() []string {
	y.load()

	names := make([]string, 0, len(y.values))
	for name := range y.values {
		names = append(names, name)
	}

	return names
}

func (y *YAMLEnvironment) load() {
	y.once.Do(func() {
		document, ok := readDocument(y.path)
		if !ok {
			return
		}

		for _, profile := range y.profiles {
			overlay, found := readDocument(profilePath(y.path, profile))
			if !found {
				continue
			}

			if err := mergo.Merge(&document, overlay, mergo.WithOverride); err != nil {
				slog.Warn("skipping profile overlay", "profile", profile, "error", err)
			}
		}

		y.values = make(map[string]string)
		flatten("", document, y.values)
	})
}

func readDocument(path string) (map[string]any, bool) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		slog.Debug("yaml document not found", "path", path)

		return nil, false
	}

	var document map[string]any

	if err := yaml.Unmarshal(data, &document); err != nil {
		slog.Warn("skipping malformed yaml document", "path", path, "error", err)

		return nil, false
	}

	return document, true
}

// profilePath derives the overlay file name for a profile:
// "conf/application.yaml" + "prod" -> "conf/application-prod.yaml".
func profilePath(base, profile string) string {
	ext := filepath.Ext(base)

	return strings.TrimSuffix(base, ext) + "-" + profile + ext
}

// flatten walks nested mappings, joining keys with dots. Scalars are
// rendered with fmt.Sprint; sequences of scalars are rendered as a
// comma-separated list, matching the engine's list value convention.
func flatten(prefix string, value any, out map[string]string) {
	switch typed := value.(type) {
	case map[string]any:
		for key, nested := range typed {
			flatten(joinKey(prefix, key), nested, out)
		}
	case []any:
		parts := make([]string, len(typed))
		for i, item := range typed {
			parts[i] = fmt.Sprint(item)
		}

		out[prefix] = strings.Join(parts, ",")
	case nil:
		out[prefix] = ""
	default:
		out[prefix] = fmt.Sprint(typed)
	}
}

func joinKey(prefix, key string) string {
	if prefix == "" {
		return key
	}

	return prefix + "." + key
}

package props

import (
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/magiconair/properties"
)

// Loader reads .properties files at most once per process. Every file is
// loaded lazily on first access and the parsed result (or the fact that
// loading failed) is cached for the lifetime of the loader.
//
// A missing or malformed file is not an error: the file simply contributes
// no values. Configuration resolution must keep walking the remaining tiers
// even when a checked-in file is absent or corrupt.
type Loader struct {
	paths []string

	mu    sync.Mutex
	files map[string]*loadedFile
}

type loadedFile struct {
	once  sync.Once
	props *properties.Properties
}

// NewLoader creates a loader resolving relative file names against the given
// search paths, in order. With no search paths, file names are resolved
// against the working directory.
func NewLoader(searchPaths ...string) *Loader {
	return &Loader{
		paths: searchPaths,
		files: make(map[string]*loadedFile),
	}
}

// Lookup returns the value of name in the given properties file. The file is
// loaded on first access; concurrent first callers share a single load.
func (l *Loader) Lookup(file, name string) (string, bool) {
	loaded := l.load(file)
	if loaded.props == nil {
		return "", false
	}

	return loaded.props.Get(name)
}

// Names returns the property names defined in the given file, or nil when
// the file could not be loaded.
func (l *Loader) Names(file string) []string {
	loaded := l.load(file)
	if loaded.props == nil {
		return nil
	}

	return loaded.props.Keys()
}

func (l *Loader) load(file string) *loadedFile {
	l.mu.Lock()

	entry, ok := l.files[file]
	if !ok {
		entry = &loadedFile{}
		l.files[file] = entry
	}

	l.mu.Unlock()

	entry.once.Do(func() {
		entry.props = l.read(file)
	})

	return entry
}

func (l *Loader) read(file string) *properties.Properties {
	path, ok := l.locate(file)
	if !ok {
		slog.Debug("properties file not found", "file", file)

		return nil
	}

	parsed, err := properties.LoadFile(path, properties.UTF8)
	if err != nil {
		slog.Warn("skipping unreadable properties file", "file", path, "error", err)

		return nil
	}

	slog.Debug("loaded properties file", "file", path, "entries", parsed.Len())

	return parsed
}

// locate resolves a file name against the search paths and returns the first
// candidate that exists as a regular file.
func (l *Loader) locate(file string) (string, bool) {
	var candidates []string

	if filepath.IsAbs(file) || len(l.paths) == 0 {
		candidates = []string{filepath.Clean(file)}
	} else {
		for _, dir := range l.paths {
			candidates = append(candidates, filepath.Join(dir, file))
		}
	}

	for _, candidate := range candidates {
		stat, err := os.Stat(candidate)
		if err != nil || stat.IsDir() {
			continue
		}

		return candidate, true
	}

	return "", false
}

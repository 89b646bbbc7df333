package host_test

import (
	"testing"

	"github.com/0xalexb/kalla/host"
	"github.com/0xalexb/kalla/props"

	"github.com/stretchr/testify/require"
)

// flakyEnvironment reports availability from a counter so tests can prove
// detection runs exactly once.
type flakyEnvironment struct {
	name   string
	probes int
	avail  bool
}

func (f *flakyEnvironment) Name() string { return f.name }

func (f *flakyEnvironment) Available() bool {
	f.probes++

	return f.avail
}

func (f *flakyEnvironment) Lookup(string) (string, bool) { return "", false }

func (f *flakyEnvironment) PropertyNames() []string { return nil }

func TestDetector_FirstAvailableWins(t *testing.T) {
	t.Parallel()

	unavailable := &flakyEnvironment{name: "first"}
	winner := host.Static("second", map[string]string{"a": "1"})
	shadowed := host.Static("third", map[string]string{"a": "2"})

	detector := host.NewDetector(unavailable, winner, shadowed)

	detected, ok := detector.Detect()
	require.True(t, ok)
	require.Equal(t, "second", detected.Name())
}

func TestDetector_ResultIsCached(t *testing.T) {
	t.Parallel()

	candidate := &flakyEnvironment{name: "only", avail: true}
	detector := host.NewDetector(candidate)

	_, ok := detector.Detect()
	require.True(t, ok)

	_, ok = detector.Detect()
	require.True(t, ok)

	require.Equal(t, 1, candidate.probes, "probing is a one-shot decision")
}

func TestDetector_NoCandidateAvailable(t *testing.T) {
	t.Parallel()

	detector := host.NewDetector(&flakyEnvironment{name: "down"})

	env, ok := detector.Detect()
	require.False(t, ok)
	require.Nil(t, env)
}

func TestDetector_Empty(t *testing.T) {
	t.Parallel()

	detector := host.NewDetector()

	_, ok := detector.Detect()
	require.False(t, ok)
}

func TestStatic_LookupAndNames(t *testing.T) {
	t.Parallel()

	values := map[string]string{"app.name": "kalla", "app.mode": "test"}
	env := host.Static("static", values)

	// Mutating the input map must not affect the environment.
	values["app.name"] = "mutated"

	require.True(t, env.Available())

	value, ok := env.Lookup("app.name")
	require.True(t, ok)
	require.Equal(t, "kalla", value)

	_, ok = env.Lookup("missing")
	require.False(t, ok)

	require.ElementsMatch(t, []string{"app.name", "app.mode"}, env.PropertyNames())
}

func TestProperties_Environment(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "application.properties", "server.port=8080\n")

	loader := props.NewLoader(dir)

	env := host.Properties("app-props", "application.properties", loader)
	require.True(t, env.Available())

	value, ok := env.Lookup("server.port")
	require.True(t, ok)
	require.Equal(t, "8080", value)

	require.ElementsMatch(t, []string{"server.port"}, env.PropertyNames())
}

func TestProperties_MissingFileIsUnavailable(t *testing.T) {
	t.Parallel()

	loader := props.NewLoader(t.TempDir())

	env := host.Properties("app-props", "application.properties", loader)
	require.False(t, env.Available())
}

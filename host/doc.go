// Package host provides the host-integration tier of configuration
// resolution: reading values from the property space of the framework the
// application is embedded in.
//
// Host environments form an explicit, enumerable set. The embedding
// application constructs the adapters it knows about (a YAML document, a
// .properties file, or a static map it populates itself) and hands them to a
// Detector; the first available environment wins and the decision is cached
// for the lifetime of the process. Nothing here inspects the runtime to
// guess which framework is present.
//
// Usage:
//
//	detector := host.NewDetector(
//	    host.YAML("app-yaml", "config/application.yaml", "prod"),
//	    host.Properties("app-props", "application.properties", loader),
//	)
//	env, ok := detector.Detect()
package host

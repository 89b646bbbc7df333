package kalla

import (
	"log/slog"

	"github.com/0xalexb/kalla/host"
)

// Options holds construction settings for a Registry and for the Fx module.
type Options struct {
	ResourcePaths []string
	Hosts         []host.Environment
	Logger        *slog.Logger
	LogLevel      string
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithResourcePaths adds directories searched, in order, when resolving
// relative properties file names for the file tier.
func WithResourcePaths(paths ...string) Option {
	return func(opts *Options) {
		opts.ResourcePaths = append(opts.ResourcePaths, paths...)
	}
}

// WithHosts adds host environment candidates, in probe order. The first
// available candidate becomes the host-integration tier for the lifetime of
// the registry.
func WithHosts(hosts ...host.Environment) Option {
	return func(opts *Options) {
		opts.Hosts = append(opts.Hosts, hosts...)
	}
}

// WithLogger sets the logger used for engine diagnostics. Defaults to
// slog.Default.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

// WithLogLevel sets the log level used by Module when it constructs the
// application logger. Valid levels are "debug", "info", "warn" and "error";
// invalid or empty levels default to "info". Ignored when WithLogger is set.
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

package kalla

import (
	"os"

	"github.com/0xalexb/kalla/logging"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

// Module creates an Fx module that provides the configuration registry to
// the application container. Components take *Registry in their constructors
// and self-register their settings there; construction order does not matter
// because resolution follows the fixed tier order, not declaration order.
//
// The module also supplies the application logger and routes Fx lifecycle
// events through it.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func Module(opts ...Option) fx.Option {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	logger := options.Logger
	if logger == nil {
		logger = logging.NewLogger(logging.LoggerConfig{Level: options.LogLevel}, os.Stderr)
	}

	combined := make([]Option, 0, len(opts)+1)
	combined = append(combined, opts...)
	combined = append(combined, WithLogger(logger))

	registry := New(combined...)

	return fx.Module("kalla",
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		fx.Supply(logger),
		fx.Supply(registry),
	)
}

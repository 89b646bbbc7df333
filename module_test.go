package kalla_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/0xalexb/kalla"
	"github.com/0xalexb/kalla/logging"

	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func TestModule_ProvidesRegistry(t *testing.T) {
	t.Parallel()

	var captured *kalla.Registry

	app := fx.New(
		kalla.Module(kalla.WithLogger(logging.Nop())),
		fx.Invoke(func(registry *kalla.Registry) {
			captured = registry
		}),
	)

	err := app.Start(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Stop(context.Background()) })

	require.NotNil(t, captured)
}

type fxDatabaseConfig struct {
	registry *kalla.Registry
}

var fxJdbcURL = kalla.Of[fxDatabaseConfig]("fxtest.jdbc.url")

func newFxDatabaseConfig(registry *kalla.Registry) *fxDatabaseConfig {
	registry.Register(fxJdbcURL, kalla.Derived().WithDefault("jdbc:h2:mem"))

	config := &fxDatabaseConfig{registry: registry}
	registry.RegisterInstance(config)

	return config
}

func (c *fxDatabaseConfig) URL() (string, error) {
	return c.registry.Require(fxJdbcURL)
}

func TestModule_ComponentSelfRegistration(t *testing.T) {
	t.Parallel()

	var config *fxDatabaseConfig

	app := fx.New(
		kalla.Module(kalla.WithLogger(logging.Nop())),
		fx.Provide(newFxDatabaseConfig),
		fx.Invoke(func(c *fxDatabaseConfig) {
			config = c
		}),
	)

	err := app.Start(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Stop(context.Background()) })

	url, err := config.URL()
	require.NoError(t, err)
	require.Equal(t, "jdbc:h2:mem", url)

	instance, ok := kalla.Instance[*fxDatabaseConfig](config.registry)
	require.True(t, ok)
	require.Same(t, config, instance)
}

func TestModule_SuppliesLogger(t *testing.T) {
	t.Parallel()

	var captured *slog.Logger

	app := fx.New(
		kalla.Module(kalla.WithLogLevel("error")),
		fx.Invoke(func(logger *slog.Logger) {
			captured = logger
		}),
	)

	err := app.Start(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Stop(context.Background()) })

	require.NotNil(t, captured)
}

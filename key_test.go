package kalla_test

import (
	"testing"

	"github.com/0xalexb/kalla"

	"github.com/stretchr/testify/require"
)

type ordersConfig struct{}

type inventoryConfig struct{}

func TestOf_DerivesBothSpellings(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name         string
		keyName      string
		prefix       string
		wantProperty string
		wantEnv      string
	}{
		{
			name:         "unprefixed dotted name",
			keyName:      "pool.max.size",
			wantProperty: "pool.max.size",
			wantEnv:      "POOL_MAX_SIZE",
		},
		{
			name:         "prefixed dotted name",
			keyName:      "pool.max.size",
			prefix:       "orders",
			wantProperty: "orders.pool.max.size",
			wantEnv:      "ORDERS_POOL_MAX_SIZE",
		},
		{
			name:         "underscores fold to dots in property form",
			keyName:      "jdbc_url",
			wantProperty: "jdbc.url",
			wantEnv:      "JDBC_URL",
		},
		{
			name:         "mixed case folds down in property form",
			keyName:      "Jdbc.Url",
			prefix:       "Orders",
			wantProperty: "orders.jdbc.url",
			wantEnv:      "ORDERS_JDBC_URL",
		},
	}

	for _, testCase := range testCases {
		testCase := testCase

		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			key := kalla.Of[ordersConfig](testCase.keyName).WithPrefix(testCase.prefix)

			require.Equal(t, testCase.wantProperty, key.PropertyName())
			require.Equal(t, testCase.wantEnv, key.EnvName())
		})
	}
}

func TestOf_EmptyNamePanics(t *testing.T) {
	t.Parallel()

	require.PanicsWithValue(t, kalla.ErrEmptyName, func() {
		kalla.Of[ordersConfig]("")
	})
}

func TestKey_WithPrefix(t *testing.T) {
	t.Parallel()

	base := kalla.Of[ordersConfig]("jdbc.url")
	prefixed := base.WithPrefix("orders")

	require.Equal(t, "jdbc.url", base.Name(), "receiver must stay unprefixed")
	require.Equal(t, "orders.jdbc.url", prefixed.Name())
	require.Equal(t, "orders", prefixed.Prefix())
	require.NotEqual(t, base, prefixed)

	require.Equal(t, base, base.WithPrefix(""), "empty prefix returns the key unchanged")
}

func TestKey_Equality(t *testing.T) {
	t.Parallel()

	require.Equal(t, kalla.Of[ordersConfig]("jdbc.url"), kalla.Of[ordersConfig]("jdbc.url"))
	require.NotEqual(t, kalla.Of[ordersConfig]("jdbc.url"), kalla.Of[inventoryConfig]("jdbc.url"),
		"owner type is part of key identity")
	require.NotEqual(t, kalla.Of[ordersConfig]("jdbc.url"), kalla.Of[ordersConfig]("jdbc.user"))
}

func TestKey_Matches(t *testing.T) {
	t.Parallel()

	key := kalla.Of[ordersConfig]("jdbc.url").WithPrefix("orders")

	require.True(t, key.Matches("orders.jdbc.url"))
	require.False(t, key.Matches("jdbc.url"))
	require.False(t, key.Matches("inventory.jdbc.url"))
}

func TestKey_RoundTrip(t *testing.T) {
	t.Parallel()

	key := kalla.Of[ordersConfig]("pool.max.size").WithPrefix("orders")

	// Reconstructing the key from either spelling must re-derive the other.
	fromProperty := kalla.Of[ordersConfig](key.PropertyName())
	require.Equal(t, "ORDERS_POOL_MAX_SIZE", fromProperty.EnvName())

	fromEnv := kalla.Of[ordersConfig](key.EnvName())
	require.Equal(t, "orders.pool.max.size", fromEnv.PropertyName())
}

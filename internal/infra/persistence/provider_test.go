package persistence

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"fieldops/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewKVStore(t *testing.T) {
	t.Run("memory by default", func(t *testing.T) {
		store, err := NewKVStore(StoreParams{Lc: fxtest.NewLifecycle(t), Config: &config.Config{}, Logger: discardLogger()})
		require.NoError(t, err)
		require.NoError(t, store.Set(context.Background(), "k", []byte("v")))
	})

	t.Run("redis", func(t *testing.T) {
		srv := miniredis.RunT(t)
		lc := fxtest.NewLifecycle(t)
		cfg := &config.Config{Store: &config.StoreConfig{
			Provider:  "redis",
			Namespace: "ops",
			Redis:     config.RedisConfig{Addr: srv.Addr()},
		}}

		store, err := NewKVStore(StoreParams{Lc: lc, Config: cfg, Logger: discardLogger()})
		require.NoError(t, err)
		lc.RequireStart()
		defer lc.RequireStop()

		require.NoError(t, store.Set(context.Background(), "goals", []byte("[]")))
		assert.True(t, srv.Exists("ops:goals"))
	})

	t.Run("redis without address", func(t *testing.T) {
		cfg := &config.Config{Store: &config.StoreConfig{Provider: "redis"}}
		_, err := NewKVStore(StoreParams{Lc: fxtest.NewLifecycle(t), Config: cfg, Logger: discardLogger()})
		assert.Error(t, err)
	})

	t.Run("postgres without configuration", func(t *testing.T) {
		cfg := &config.Config{Store: &config.StoreConfig{Provider: "postgres"}}
		_, err := NewKVStore(StoreParams{Lc: fxtest.NewLifecycle(t), Config: cfg, Logger: discardLogger()})
		assert.Error(t, err)
	})

	t.Run("unknown provider", func(t *testing.T) {
		cfg := &config.Config{Store: &config.StoreConfig{Provider: "etcd"}}
		_, err := NewKVStore(StoreParams{Lc: fxtest.NewLifecycle(t), Config: cfg, Logger: discardLogger()})
		assert.ErrorContains(t, err, "etcd")
	})
}

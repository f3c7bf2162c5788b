// Package redis keeps application state in Redis.
package redis

import (
	"context"
	"log/slog"

	"fieldops/config"
	domainerrors "fieldops/internal/domain/errors"
	"fieldops/internal/domain/lifecycle"
	"fieldops/internal/domain/service"
	"fieldops/internal/errors"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

type kvStore struct {
	client    goredis.UniversalClient
	namespace string
}

// NewClient creates a Redis client and ties its lifetime to the fx lifecycle.
func NewClient(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) (*goredis.Client, error) {
	redisCfg := cfg.Store.Redis
	if redisCfg.Addr == "" {
		return nil, errors.New("redis address is required for redis store")
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:     redisCfg.Addr,
		Username: redisCfg.Username,
		Password: redisCfg.Password,
		DB:       redisCfg.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}
			logger.Info("Redis store connected", slog.String("addr", redisCfg.Addr))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}

// NewKVStore creates a store that prefixes every key with namespace.
func NewKVStore(client goredis.UniversalClient, namespace string) service.KVStore {
	return &kvStore{client: client, namespace: namespace}
}

func (s *kvStore) key(key string) string {
	if s.namespace == "" {
		return key
	}

	return s.namespace + ":" + key
}

func (s *kvStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := s.client.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, domainerrors.NewStoreError(err, "failed to get "+key)
	}

	return value, true, nil
}

func (s *kvStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return domainerrors.NewStoreError(err, "failed to set "+key)
	}

	return nil
}

func (s *kvStore) Clear(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return domainerrors.NewStoreError(err, "failed to clear "+key)
	}

	return nil
}

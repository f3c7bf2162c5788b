// Package persistence selects the application state store.
package persistence

import (
	"log/slog"

	"fieldops/config"
	"fieldops/internal/domain/constants"
	"fieldops/internal/domain/service"
	"fieldops/internal/errors"
	"fieldops/internal/infra/persistence/memory"
	"fieldops/internal/infra/persistence/postgres"
	"fieldops/internal/infra/persistence/redis"

	"go.uber.org/fx"
)

// StoreParams holds dependencies for the KVStore, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewKVStore creates the KVStore named by store.provider.
func NewKVStore(params StoreParams) (service.KVStore, error) {
	cfg := params.Config.Store
	logger := params.Logger

	provider := constants.StoreProviderMemory
	namespace := ""
	if cfg != nil {
		provider = cfg.Provider
		namespace = cfg.Namespace
	}

	switch provider {
	case constants.StoreProviderMemory, "":
		logger.Warn("Using in-memory store, sessions and goals are lost on restart")

		return memory.NewKVStore(), nil

	case constants.StoreProviderRedis:
		client, err := redis.NewClient(params.Lc, params.Config, logger)
		if err != nil {
			return nil, err
		}
		logger.Info("Using Redis store", slog.String("namespace", namespace))

		return redis.NewKVStore(client, namespace), nil

	case constants.StoreProviderPostgres:
		if params.Config.Postgres == nil {
			return nil, errors.New("postgres configuration is required for postgres store")
		}

		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    logger,
		})
		if err != nil {
			return nil, err
		}
		logger.Info("Using Postgres store", slog.String("namespace", namespace))

		return postgres.NewKVStore(db, namespace)

	default:
		return nil, errors.Errorf("unknown store provider: %s", provider)
	}
}

// Module provides the persistence FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewKVStore),
)

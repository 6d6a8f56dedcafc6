package persistence

import (
	"context"
	"log/slog"

	"pos/config"
	"pos/internal/domain/lifecycle"
	"pos/internal/domain/repository"
	"pos/internal/errors"
	"pos/internal/infra/persistence/memory"
	"pos/internal/infra/persistence/postgres"
	"pos/internal/infra/persistence/redis"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

// StoreParams holds dependencies for the KeyValueStore, injected by Fx.
type StoreParams struct {
	fx.In

	Lc         fx.Lifecycle
	Config     *config.Config
	Logger     *slog.Logger
	Registerer prometheus.Registerer `optional:"true"`
}

// NewKeyValueStore creates the KeyValueStore selected by basket.storage.
func NewKeyValueStore(params StoreParams) (repository.KeyValueStore, error) {
	cfg := params.Config
	logger := params.Logger

	switch cfg.Basket.Storage {
	case config.StoragePostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle:  params.Lc,
			Config:     cfg,
			Logger:     logger,
			Registerer: params.Registerer,
		})
		if err != nil {
			return nil, err
		}

		params.Lc.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
				defer cancel()

				return postgres.Migrate(ctx, db)
			},
		})

		logger.Info("Using PostgreSQL basket storage")

		return postgres.NewKVStore(db), nil

	case config.StorageRedis:
		client, err := redis.New(cfg.Redis)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create Redis client")
		}

		params.Lc.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
				defer cancel()

				if err := client.Health(ctx); err != nil {
					return errors.Wrap(err, "failed to ping Redis")
				}

				return nil
			},
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})

		logger.Info("Using Redis basket storage")

		return redis.NewKVStore(client), nil

	case config.StorageMemory:
		logger.Info("Using in-memory basket storage, baskets are lost on restart")

		return memory.NewKVStore(), nil

	default:
		return nil, errors.Errorf("unknown basket storage: %s", cfg.Basket.Storage)
	}
}

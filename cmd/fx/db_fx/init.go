package db_fx

import (
	"context"

	"go.uber.org/fx"

	"vivuplan/internal/infra"
	"vivuplan/internal/repositories"
	"vivuplan/pkg/logger"
)

var Module = fx.Provide(provideKeyValueStore)

// provideKeyValueStore picks the storage backend named by STORAGE_DRIVER.
func provideKeyValueStore(lc fx.Lifecycle, cfg *infra.AppConfig, log *logger.Logger) (repositories.KeyValueStore, error) {
	switch cfg.StorageDriver {
	case infra.StoragePostgres, infra.StorageSQLite:
		db, err := infra.InitDatabase(cfg, log)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				infra.CloseDatabase(db, log)
				return nil
			},
		})
		return repositories.NewGormKeyValueStore(db), nil

	case infra.StorageRedis:
		rdb, err := infra.InitRedis(cfg)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return rdb.Close()
			},
		})
		log.Info("redis connected", "addr", cfg.RedisAddr)
		return repositories.NewRedisKeyValueStore(rdb), nil

	default:
		log.Warn("using in-memory storage, history is lost on restart")
		return repositories.NewMemoryKeyValueStore(), nil
	}
}

package config_fx

import (
	"go.uber.org/fx"

	"vivuplan/internal/infra"
	"vivuplan/pkg/logger"
)

var Module = fx.Provide(provideConfig, provideLogger)

func provideConfig() (*infra.AppConfig, error) {
	return infra.LoadConfig()
}

func provideLogger(lc fx.Lifecycle, cfg *infra.AppConfig) (*logger.Logger, error) {
	log, err := logger.New(cfg.AppEnv)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.StopHook(log.Sync))
	return log, nil
}

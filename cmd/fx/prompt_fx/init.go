package prompt_fx

import (
	"context"

	"go.uber.org/fx"

	"vivuplan/internal/infra"
	"vivuplan/internal/services"
	"vivuplan/pkg/logger"
	"vivuplan/pkg/utils"
)

var Module = fx.Provide(
	ProvideAIClient,
	ProvidePlanGenerator)

// ProvideAIClient creates the AI client selected by AI_PROVIDER
func ProvideAIClient(lc fx.Lifecycle, cfg *infra.AppConfig, log *logger.Logger) (utils.AIClientInterface, error) {
	apiKey, model := cfg.AIKey()
	log.Info("initializing AI client", "provider", cfg.AIProvider, "model", model)

	client, err := utils.NewAIClient(cfg.AIProvider, apiKey, model)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
	return client, nil
}

func ProvidePlanGenerator(client utils.AIClientInterface, cfg *infra.AppConfig, log *logger.Logger) services.PlanGeneratorInterface {
	return services.NewAIPlanGenerator(client, cfg.AITimeout, log)
}

package feedback_fx

import (
	"go.uber.org/fx"

	"vivuplan/internal/repositories"
	"vivuplan/internal/services"
	"vivuplan/pkg/logger"
)

var Module = fx.Provide(
	provideFeedbackRepo, provideFeedbackService,
)

func provideFeedbackRepo(store repositories.KeyValueStore, log *logger.Logger) repositories.FeedbackRepositoryInterface {
	return repositories.NewFeedbackRepository(store, log)
}

func provideFeedbackService(feedbackRepo repositories.FeedbackRepositoryInterface) services.FeedbackServiceInterface {
	return services.NewFeedbackService(feedbackRepo)
}

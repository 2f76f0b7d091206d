package itinerary_fx

import (
	"go.uber.org/fx"

	"vivuplan/internal/repositories"
	"vivuplan/internal/services"
	"vivuplan/pkg/logger"
)

var Module = fx.Provide(
	services.NewItineraryStore,
	provideHistoryRepo,
	services.NewItineraryService,
)

func provideHistoryRepo(store repositories.KeyValueStore, log *logger.Logger) repositories.HistoryRepositoryInterface {
	return repositories.NewHistoryRepository(store, log)
}

package controllers_fx

import (
	"go.uber.org/fx"

	"vivuplan/internal/api/controllers"
	"vivuplan/internal/infra"
	"vivuplan/pkg/middleware"
)

var Module = fx.Options(
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewHistoryController),
	fx.Provide(controllers.NewFeedbackController),
	fx.Provide(provideRateLimiter))

func provideRateLimiter(cfg *infra.AppConfig) *middleware.RateLimiter {
	return middleware.NewRateLimiter(cfg.RateLimitPerMinute)
}

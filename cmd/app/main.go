package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"vivuplan/cmd/fx/config_fx"
	"vivuplan/cmd/fx/controllers_fx"
	"vivuplan/cmd/fx/db_fx"
	"vivuplan/cmd/fx/feedback_fx"
	"vivuplan/cmd/fx/itinerary_fx"
	"vivuplan/cmd/fx/prompt_fx"
	"vivuplan/internal/api/controllers"
	"vivuplan/internal/infra"
	"vivuplan/pkg/logger"
	"vivuplan/pkg/middleware"
)

func main() {
	app := fx.New(
		config_fx.Module,
		fx.WithLogger(func(log *logger.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log.Zap()}
		}),
		db_fx.Module,
		prompt_fx.Module,
		feedback_fx.Module,
		itinerary_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *infra.AppConfig, log *logger.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			go func() {
				log.Info("starting HTTP server", "addr", srv.Addr)
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("HTTP server stopped", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

func ProvideRouter(
	cfg *infra.AppConfig,
	limiter *middleware.RateLimiter,
	itineraryController *controllers.ItineraryController,
	historyController *controllers.HistoryController,
	feedbackController *controllers.FeedbackController) *gin.Engine {

	if cfg.AppEnv == "production" || cfg.AppEnv == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORS(cfg.CORSOrigins))

	controllers.RegisterRoutes(r, itineraryController, historyController, feedbackController, limiter.Limit())

	return r
}

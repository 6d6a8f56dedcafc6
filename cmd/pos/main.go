package main

import (
	"context"
	"log/slog"
	"os"

	"pos/config"
	"pos/internal/delivery"
	"pos/internal/delivery/api"
	"pos/internal/delivery/api/middleware"
	"pos/internal/delivery/api/router/handler"
	"pos/internal/domain/service"
	"pos/internal/infra/auth"
	logs "pos/internal/infra/log"
	"pos/internal/infra/metrics"
	"pos/internal/infra/persistence"
	"pos/internal/usecase/impl"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		func() prometheus.Registerer {
			return prometheus.DefaultRegisterer
		},
		func() prometheus.Gatherer {
			return prometheus.DefaultGatherer
		},
		fx.Annotate(
			metrics.New,
			fx.As(new(service.BasketMetrics)),
		),
		auth.NewJWTService,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			persistence.NewKeyValueStore,
			persistence.NewBasketRepository,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewNavigationService,
			impl.NewBasketService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewNavigationHandler,
			handler.NewBasketHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}

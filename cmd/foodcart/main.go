package main

import (
	"context"
	"log/slog"
	"os"

	"foodcart/config"
	"foodcart/internal/delivery"
	"foodcart/internal/delivery/api"
	"foodcart/internal/delivery/api/middleware"
	"foodcart/internal/delivery/api/router/handler"
	"foodcart/internal/domain/service"
	"foodcart/internal/infra/auth"
	"foodcart/internal/infra/cache"
	"foodcart/internal/infra/geocoding"
	logs "foodcart/internal/infra/log"
	"foodcart/internal/infra/persistence/postgres"
	"foodcart/internal/infra/pubsub"
	"foodcart/internal/infra/qrcode"
	"foodcart/internal/usecase/impl"

	"go.uber.org/fx"
)

const (
	defaultQRCodeSize  = 256
	defaultQRCodeLevel = "M"
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
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewProductRepository,
			postgres.NewRestaurantRepository,
			postgres.NewMenuRepository,
			postgres.NewOrderRepository,
			postgres.NewLocationRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			cache.NewCoordinateCache,
			geocoding.NewYandexGeocoder,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates the order QR code service, defaulting size and level
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(defaultQRCodeSize, defaultQRCodeLevel, "")
	}

	size := cfg.QRCode.Size
	if size <= 0 {
		size = defaultQRCodeSize
	}

	return qrcode.NewQRCodeService(size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewGeocodingService,
			impl.NewCatalogService,
			impl.NewOrderService,
			impl.NewAssignmentService,
			impl.NewSessionService,
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
			handler.NewOrderHandler,
			handler.NewCatalogHandler,
			handler.NewAssignmentHandler,
			handler.NewSessionHandler,
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

package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"fieldops/config"
	"fieldops/internal/capture"
	"fieldops/internal/delivery"
	"fieldops/internal/delivery/http"
	"fieldops/internal/delivery/http/middleware"
	"fieldops/internal/delivery/http/router/handler"
	"fieldops/internal/domain/service"
	"fieldops/internal/infra/artifact"
	"fieldops/internal/infra/backend"
	"fieldops/internal/infra/device"
	"fieldops/internal/infra/export"
	logs "fieldops/internal/infra/log"
	"fieldops/internal/infra/persistence"
	"fieldops/internal/infra/pubsub"
	"fieldops/internal/infra/qrcode"
	"fieldops/internal/usecase"
	"fieldops/internal/usecase/impl"

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
		persistence.Module,
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
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		backend.NewClient,
		backend.NewBackend,
		backendGateways,
		artifact.NewArtifactStore,
		pubsub.NewEventPublisher,
	)
}

// backendGateways exposes the narrower views of the backend the services depend on.
func backendGateways(b service.Backend) (service.AuthGateway, service.RecordGateway, service.PhotoGateway) {
	return b, b, b
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			backend.NewTokenInspector,
			qrcode.NewFromConfig,
			device.NewSnapshotCamera,
			device.NewPositionHub,
			device.NewGeolocation,
			device.NewPositionFeed,
			newRegistry,
			fx.Annotate(
				export.NewSpreadsheetExporter,
				fx.ResultTags(`name:"spreadsheet"`),
			),
			fx.Annotate(
				export.NewPhotoDocumentExporter,
				fx.ResultTags(`name:"photos"`),
			),
		),
	)
}

// newRegistry creates the workflow registry and sweeps idle workflows and
// session caches while the app runs.
func newRegistry(lc fx.Lifecycle, cfg *config.Config, state usecase.StateUsecase, logger *slog.Logger) *capture.Registry {
	ttl := time.Duration(0)
	if cfg.Capture != nil {
		ttl = cfg.Capture.SessionTTL
	}

	registry := capture.NewRegistry(ttl, logger)
	registry.OnSweep(state.Sweep)
	sweepCtx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go registry.Run(sweepCtx, 0)

			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			registry.Close()

			return nil
		},
	})

	return registry
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewStateService,
			impl.NewAuthService,
			impl.NewCaptureService,
			impl.NewReportService,
			impl.NewGoalService,
			impl.NewAdminService,
			impl.NewBackupService,
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
			handler.NewAuthHandler,
			handler.NewCaptureHandler,
			handler.NewReportHandler,
			handler.NewGoalHandler,
			handler.NewAdminHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
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

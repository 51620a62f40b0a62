package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/ojekdriver/internal/pkg/config"
	"github.com/piresc/ojekdriver/internal/pkg/database"
	"github.com/piresc/ojekdriver/internal/pkg/health"
	"github.com/piresc/ojekdriver/internal/pkg/logger"
	"github.com/piresc/ojekdriver/internal/pkg/metrics"
	"github.com/piresc/ojekdriver/internal/pkg/middleware"
	"github.com/piresc/ojekdriver/internal/pkg/models"
	natspkg "github.com/piresc/ojekdriver/internal/pkg/nats"
	nrpkg "github.com/piresc/ojekdriver/internal/pkg/newrelic"
	"github.com/piresc/ojekdriver/internal/pkg/server"
	"github.com/piresc/ojekdriver/internal/pkg/validation"
	"github.com/piresc/ojekdriver/services/driver"
	"github.com/piresc/ojekdriver/services/driver/dispatch"
	"github.com/piresc/ojekdriver/services/driver/gateway"
	"github.com/piresc/ojekdriver/services/driver/handler"
	"github.com/piresc/ojekdriver/services/driver/repository"
	"github.com/piresc/ojekdriver/services/driver/usecase"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API, NATS consumers and background tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(loadConfig())
	},
}

func serve(configs *models.Config) error {
	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		return fmt.Errorf("failed to create Zap logger: %w", err)
	}
	defer zapLogger.Close()

	logger.SetGlobalLogger(zapLogger)
	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment))

	e := echo.New()
	e.HideBanner = true
	e.Validator = validation.New()
	e.Server.ReadTimeout = config.Duration(configs.Server.ReadTimeout)
	e.Server.WriteTimeout = config.Duration(configs.Server.WriteTimeout)

	gs := server.NewGracefulServer(e, zapLogger, configs.Server.Host, configs.Server.Port,
		config.Duration(configs.Server.ShutdownTimeout))
	components := gs.Components()
	healthService := health.NewHealthService(zapLogger)

	// Components shut down in reverse registration order
	if nrApp != nil {
		components.Register("newrelic", func(context.Context) error {
			nrApp.Shutdown(10 * time.Second)
			return nil
		})
	}

	var notificationRepo driver.NotificationRepo = repository.NoopNotificationRepo{}
	if configs.Database.Enabled {
		postgresClient, err := database.NewPostgresClient(configs.Database)
		if err != nil {
			return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		components.Register("postgres", func(context.Context) error { return postgresClient.Close() })
		healthService.AddChecker("postgres", health.CheckerFunc(postgresClient.Ping))
		notificationRepo = repository.NewNotificationRepo(postgresClient.GetDB())
	} else {
		logger.Warn("PostgreSQL disabled, deposit notifications are not persisted")
	}

	var presenceRepo driver.PresenceRepo = repository.NoopPresenceRepo{}
	if configs.Redis.Enabled {
		redisClient, err := database.NewRedisClient(configs.Redis)
		if err != nil {
			return fmt.Errorf("failed to connect to Redis: %w", err)
		}
		components.Register("redis", func(context.Context) error { return redisClient.Close() })
		healthService.AddChecker("redis", health.CheckerFunc(redisClient.Ping))
		presenceRepo = repository.NewPresenceRepo(redisClient)
	} else {
		logger.Warn("Redis disabled, presence is kept in memory only")
	}

	var (
		natsClient *natspkg.Client
		natsGW     *gateway.NATSGateway
		driverGW   driver.DriverGW = gateway.NoopGateway{}
	)
	if configs.NATS.Enabled {
		natsClient, err = natspkg.NewClient(configs.NATS.URL, appName)
		if err != nil {
			return fmt.Errorf("failed to connect to NATS: %w", err)
		}
		components.Register("nats", func(context.Context) error {
			natsClient.Close()
			return nil
		})
		healthService.AddChecker("nats", health.CheckerFunc(func(context.Context) error { return natsClient.Ping() }))
		natsGW = gateway.NewNATSGateway(natsClient)
		driverGW = natsGW
	} else {
		logger.Warn("NATS disabled, driver events are not published")
	}

	var documents driver.DocumentStore = repository.DiscardDocumentStore{}
	if configs.Storage.Bucket != "" {
		store, err := repository.NewS3DocumentStore(context.Background(), configs.Storage)
		if err != nil {
			return fmt.Errorf("failed to initialize document storage: %w", err)
		}
		documents = store
	} else {
		logger.Warn("Document storage disabled, uploads are not retained")
	}

	// Initialize usecase
	m := metrics.New()
	driverUC := usecase.NewDriverUC(configs, notificationRepo, presenceRepo, documents, driverGW,
		dispatch.Seed(configs.Dispatch), m)
	components.Register("sessions", func(context.Context) error {
		driverUC.Close()
		return nil
	})

	// Initialize handlers and NATS consumers
	driverHandler := handler.NewHandler(driverUC, natsClient, configs, nrApp)
	if err := driverHandler.InitNATSConsumers(); err != nil {
		return fmt.Errorf("failed to initialize NATS consumers: %w", err)
	}
	components.Register("nats-consumers", func(context.Context) error {
		driverHandler.StopNATSConsumers()
		return nil
	})

	if configs.Dispatch.SimulateInterval > 0 {
		startSimulator(configs, presenceRepo, driverUC, natsGW, components)
	}

	// Add middlewares (panic recovery should be first)
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(nrpkg.Middleware(nrApp))
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(m.Middleware())

	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)
	e.GET("/health/breakers", func(c echo.Context) error {
		return c.JSON(http.StatusOK, driverUC.BreakerStates())
	})
	driverHandler.RegisterRoutes(e, m)

	return gs.Start()
}

// startSimulator runs the dispatch simulator until shutdown. Offers go over
// NATS when it is enabled, straight into the use case otherwise.
func startSimulator(
	configs *models.Config,
	presenceRepo driver.PresenceRepo,
	driverUC *usecase.DriverUC,
	natsGW *gateway.NATSGateway,
	components *server.ShutdownManager,
) {
	var source dispatch.DriverSource = driverUC.Sessions()
	if configs.Redis.Enabled {
		source = presenceRepo
	}

	var publisher dispatch.OfferPublisher = dispatch.OfferPublisherFunc(func(ctx context.Context, offer *models.TripOffer) error {
		return driverUC.OfferTrip(ctx, offer.DriverID, &offer.Trip)
	})
	if natsGW != nil {
		publisher = natsGW
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		dispatch.NewSimulator(source, publisher, configs.Dispatch.SimulateInterval).Run(ctx)
	}()

	components.Register("dispatch-simulator", func(shutdownCtx context.Context) error {
		cancel()
		select {
		case <-done:
			return nil
		case <-shutdownCtx.Done():
			return shutdownCtx.Err()
		}
	})
}

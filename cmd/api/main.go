package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/dayflow/hr-service/internal/api/http"
	"github.com/dayflow/hr-service/internal/api/http/handlers"
	"github.com/dayflow/hr-service/internal/auth"
	"github.com/dayflow/hr-service/internal/config"
	"github.com/dayflow/hr-service/internal/events"
	"github.com/dayflow/hr-service/internal/observability"
	"github.com/dayflow/hr-service/internal/persistence"
	"github.com/dayflow/hr-service/internal/repository"
	"github.com/dayflow/hr-service/internal/service"
	"github.com/dayflow/hr-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(ctx, cfg.Redis, logger)
	defer redis.Close()

	metrics := observability.NewMetrics()

	pool := pg.PoolHandle()
	employeeRepo := repository.NewEmployeeRepository(pool)
	leaveRepo := repository.NewLeaveRepository(pool)

	if cfg.Seed.AccountsFile != "" {
		if _, err := service.SeedAccounts(ctx, employeeRepo, cfg.Seed.AccountsFile, cfg.Auth.BcryptCost, logger); err != nil {
			logger.Fatal("failed to seed accounts", zap.Error(err))
		}
	}

	dispatcher := events.NewInMemoryDispatcher()
	worker.StartNotificationWorker(dispatcher, redis, cfg.Notification, logger)

	gate := auth.NewGate(employeeRepo, auth.NewTokenCodec(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL()), metrics)

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		EmployeeRepo: employeeRepo,
		Gate:         gate,
		Dispatcher:   dispatcher,
		Logger:       logger,
	})
	employeeService := service.NewEmployeeService(employeeRepo, dispatcher, logger)
	leaveService := service.NewLeaveService(leaveRepo, dispatcher, logger)

	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		DisableStartupMessage: cfg.IsProduction(),
	})
	httptransport.RegisterMiddlewares(app, httptransport.MiddlewareConfig{
		Logger:       logger,
		Metrics:      metrics,
		Timeout:      cfg.App.RequestTimeout(),
		AllowOrigins: cfg.App.CORSAllowOrigins,
	})

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:   handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis, logger),
		Auth:     handlers.NewAuthHandler(authService),
		Admin:    handlers.NewAdminHandler(employeeService),
		Leave:    handlers.NewLeaveHandler(leaveService),
		Employee: handlers.NewEmployeeHandler(),
		Gate:     gate,
		Metrics:  metrics,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/query-service/internal/api/http"
	"github.com/spec-kit/query-service/internal/api/http/handlers"
	"github.com/spec-kit/query-service/internal/auth"
	"github.com/spec-kit/query-service/internal/classifier"
	"github.com/spec-kit/query-service/internal/config"
	"github.com/spec-kit/query-service/internal/events"
	"github.com/spec-kit/query-service/internal/observability"
	"github.com/spec-kit/query-service/internal/persistence"
	"github.com/spec-kit/query-service/internal/repository"
	"github.com/spec-kit/query-service/internal/service"
	"github.com/spec-kit/query-service/internal/worker"
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

	pool := pg.PoolHandle()
	queryRepo := repository.NewQueryRepository(pool)
	historyRepo := repository.NewQueryHistoryRepository(pool)
	teamRepo := repository.NewTeamRepository(pool)
	userRepo := repository.NewUserRepository(pool)

	dispatcher := events.NewInMemoryDispatcher(logger)
	directory := service.NewTeamDirectory(teamRepo, redis, cfg.Directory.CacheTTL())

	queryService := service.NewQueryService(service.QueryDependencies{
		QueryRepo:   queryRepo,
		HistoryRepo: historyRepo,
		Tx:          pg,
		Directory:   directory,
		Classifier:  classifier.New(classifier.DefaultRules()),
		Dispatcher:  dispatcher,
	})
	teamService := service.NewTeamService(teamRepo)
	analyticsService := service.NewAnalyticsService(queryRepo)
	authService := service.NewAuthService(cfg.Auth, userRepo)
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	var authMiddleware *auth.Middleware
	if cfg.Auth.Enabled {
		authMiddleware = auth.NewMiddleware(authService.TokenManager(), userRepo)
	}

	metrics := observability.NewMetrics()
	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Queries:        handlers.NewQueriesHandler(queryService),
		Teams:          handlers.NewTeamsHandler(teamService),
		Analytics:      handlers.NewAnalyticsHandler(analyticsService),
		Metrics:        handlers.NewMetricsHandler(metrics),
		AuthMiddleware: authMiddleware,
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

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/catalog-service/internal/api/http"
	"github.com/spec-kit/catalog-service/internal/api/http/handlers"
	"github.com/spec-kit/catalog-service/internal/auth"
	"github.com/spec-kit/catalog-service/internal/config"
	"github.com/spec-kit/catalog-service/internal/domain"
	"github.com/spec-kit/catalog-service/internal/observability"
	"github.com/spec-kit/catalog-service/internal/persistence"
	"github.com/spec-kit/catalog-service/internal/repository"
	"github.com/spec-kit/catalog-service/internal/service"
	"github.com/spec-kit/catalog-service/internal/worker"
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

	loc, err := cfg.App.Location()
	if err != nil {
		logger.Fatal("invalid timezone", zap.Error(err))
	}

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

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := observability.NewMetrics(registry)

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	eventRepo := repository.NewEventRepository(pool)
	productRepo := repository.NewProductRepository(pool)

	tokens, err := auth.NewTokenAuthority(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, logger)
	if err != nil {
		logger.Fatal("failed to init token authority", zap.Error(err))
	}
	throttle := auth.NewLoginThrottle(redis.Client, cfg.Auth.LoginMaxAttempts, cfg.Auth.LoginWindow(), logger)

	authService := service.NewAuthService(service.AuthDependencies{
		Users:      userRepo,
		Tokens:     tokens,
		Throttle:   throttle,
		Metrics:    metrics,
		Logger:     logger,
		BcryptCost: cfg.Auth.BcryptCost,
	})
	userService := service.NewUserService(userRepo, eventRepo, productRepo, logger, cfg.Auth.BcryptCost)
	eventService := service.NewEventService(eventRepo, loc, logger)
	catalogService := service.NewCatalogService(service.CatalogDependencies{
		Categories: repository.NewCategoryRepository(pool),
		Localities: repository.NewLocalityRepository(pool),
		Sizes:      repository.NewSizeRepository(pool),
		Products:   productRepo,
		Logger:     logger,
	})
	contentService := service.NewContentService(service.ContentDependencies{
		Offerings: repository.NewOfferingRepository(pool),
		Photos:    repository.NewMediaRepository(pool, domain.MediaPhoto),
		Videos:    repository.NewMediaRepository(pool, domain.MediaVideo),
		About:     repository.NewAboutRepository(pool),
		Contact:   repository.NewContactRepository(pool),
		Logger:    logger,
	})

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health: handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, map[string]handlers.Pinger{
			"postgres": pg,
			"redis":    redis,
		}),
		Auth:     handlers.NewAuthHandler(authService),
		Profile:  handlers.NewProfileHandler(userService),
		Admin:    handlers.NewAdminHandler(userService),
		Events:   handlers.NewEventsHandler(eventService),
		Catalog:  handlers.NewCatalogHandler(catalogService),
		Content:  handlers.NewContentHandler(contentService),
		Photos:   handlers.NewMediaHandler(contentService, domain.MediaPhoto),
		Videos:   handlers.NewMediaHandler(contentService, domain.MediaVideo),
		Guard:    auth.NewGuard(tokens),
		Gatherer: registry,
	})

	purger := worker.NewEventPurger(eventService, cfg.Events.PurgeInterval(), metrics, logger)
	go purger.Run(ctx)

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	cancel()
	if err := app.Shutdown(); err != nil {
		logger.Warn("fiber shutdown", zap.Error(err))
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}

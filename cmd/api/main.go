package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/notice-board/internal/api/http"
	"github.com/spec-kit/notice-board/internal/api/http/handlers"
	"github.com/spec-kit/notice-board/internal/config"
	"github.com/spec-kit/notice-board/internal/events"
	"github.com/spec-kit/notice-board/internal/observability"
	"github.com/spec-kit/notice-board/internal/persistence"
	"github.com/spec-kit/notice-board/internal/repository"
	"github.com/spec-kit/notice-board/internal/service"
	"github.com/spec-kit/notice-board/internal/worker"
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

	store, closeStore, err := newStore(ctx, cfg.Store, logger)
	if err != nil {
		logger.Fatal("failed to init store", zap.Error(err))
	}
	defer closeStore()

	if err := persistence.Seed(ctx, store, logger); err != nil {
		logger.Fatal("failed to seed store", zap.Error(err))
	}

	noticeRepo := repository.NewNoticeRepository(store)
	userRepo := repository.NewUserRepository(store)
	categoryRepo := repository.NewCategoryRepository(store)

	dispatcher := events.NewInMemoryDispatcher()
	worker.StartAuditWorker(service.NewAuditService(dispatcher, logger))

	noticeService := service.NewNoticeService(noticeRepo, dispatcher)
	userService := service.NewUserService(userRepo, dispatcher)
	categoryService := service.NewCategoryService(categoryRepo, dispatcher)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:     handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, store),
		Notices:    handlers.NewNoticesHandler(noticeService),
		Users:      handlers.NewUsersHandler(userService),
		Categories: handlers.NewCategoriesHandler(categoryService),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func newStore(ctx context.Context, cfg config.StoreConfig, logger *zap.Logger) (persistence.Store, func(), error) {
	switch cfg.Driver {
	case "memory":
		return persistence.NewMemoryStore(), func() {}, nil
	case "sqlite":
		store, err := persistence.NewSQLiteStore(cfg.SQLitePath, logger)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { _ = store.Close() }, nil
	case "redis":
		store := persistence.NewRedisStore(cfg.Redis, logger)
		return store, func() { _ = store.Close() }, nil
	case "postgres":
		store, err := persistence.NewPostgresStore(ctx, cfg.PostgresDSN, logger)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}

package main

// @title Trees Microservice API
// @version 1.0.0
// @description Геопространственный API только на чтение поверх каталога городских деревьев.
// @description
// @description Основные возможности:
// @description - Карточка дерева по идентификатору
// @description - Список деревьев с фильтрами и пагинацией
// @description - Пространственный поиск: bbox, радиус вокруг точки, ближайшие деревья
// @description - Кэширование результатов поиска, количества и списка видов

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/trees-microservice/docs"
	"github.com/trees-microservice/internal/config"
	httpDelivery "github.com/trees-microservice/internal/delivery/http"
	"github.com/trees-microservice/internal/delivery/http/handler"
	"github.com/trees-microservice/internal/domain/repository"
	"github.com/trees-microservice/internal/pkg/logger"
	"github.com/trees-microservice/internal/repository/cache"
	"github.com/trees-microservice/internal/repository/postgres"
	"github.com/trees-microservice/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting Trees Microservice")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("cache_backend", cfg.Cache.Backend),
	)

	// 3. Connect to PostgreSQL (PostGIS)
	db, err := postgres.New(cfg, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	log.Info("PostgreSQL connected")

	// 4. Cache store
	cacheRepo, closeCache, err := newCacheRepository(cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize cache", zap.Error(err))
	}
	log.Info("Cache initialized", zap.String("backend", cfg.Cache.Backend))

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}

	// 6. Repositories
	treeRepo := postgres.NewTreeRepository(db)

	// 7. Use cases
	readThrough := usecase.NewReadThrough(cacheRepo, log)

	searchUC := usecase.NewSearchUseCase(
		treeRepo,
		readThrough,
		log,
		cfg.Cache.SearchCacheTTL,
	)

	treeUC := usecase.NewTreeUseCase(
		treeRepo,
		readThrough,
		log,
		cfg.Cache.CountCacheTTL,
		cfg.Cache.SpeciesCacheTTL,
	)

	healthUC := usecase.NewHealthUseCase(treeRepo, cacheRepo, log)

	// 8. Handlers and server
	server := httpDelivery.NewServer(
		cfg,
		log,
		handler.NewTreeHandler(searchUC, treeUC, log),
		handler.NewHealthHandler(healthUC, log),
	)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 9. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if err := db.Close(); err != nil {
		log.Error("Failed to close PostgreSQL", zap.Error(err))
	}

	if err := closeCache(); err != nil {
		log.Error("Failed to close cache", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}

// newCacheRepository выбирает хранилище кэша по CACHE_BACKEND
func newCacheRepository(cfg *config.Config, log *zap.Logger) (repository.CacheRepository, func() error, error) {
	if cfg.Cache.Backend == config.CacheBackendMemory {
		repo, err := cache.NewMemoryRepository(cfg.Cache.MemorySize, log)
		if err != nil {
			return nil, nil, err
		}
		return repo, func() error { return nil }, nil
	}

	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		return nil, nil, err
	}
	return cache.NewCacheRepository(redisClient), redisClient.Close, nil
}

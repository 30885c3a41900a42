package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/mapview-backend/internal/adapter/handler"
	"github.com/marcos-nsantos/mapview-backend/internal/adapter/observer"
	"github.com/marcos-nsantos/mapview-backend/internal/adapter/repository/postgres"
	"github.com/marcos-nsantos/mapview-backend/internal/domain"
	"github.com/marcos-nsantos/mapview-backend/internal/infrastructure/auth"
	"github.com/marcos-nsantos/mapview-backend/internal/infrastructure/cache"
	"github.com/marcos-nsantos/mapview-backend/internal/infrastructure/config"
	"github.com/marcos-nsantos/mapview-backend/internal/infrastructure/database"
	"github.com/marcos-nsantos/mapview-backend/internal/infrastructure/messaging"
	"github.com/marcos-nsantos/mapview-backend/internal/infrastructure/middleware"
	"github.com/marcos-nsantos/mapview-backend/internal/infrastructure/observability"
	"github.com/marcos-nsantos/mapview-backend/internal/infrastructure/server"
	"github.com/marcos-nsantos/mapview-backend/internal/infrastructure/storage"
	"github.com/marcos-nsantos/mapview-backend/internal/usecase/mapview"
	"github.com/marcos-nsantos/mapview-backend/internal/usecase/tiles"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Log, "mapview-backend")
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	pool, err := database.NewPostgresPool(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := database.RunMigrations(ctx, pool, cfg.Database.MigrationsPath, logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	regionMetrics := observability.NewRegionMetrics(registry)
	httpMetrics := observability.NewHTTPMetrics(registry)

	// Redis backs the region cache and the rate limiter
	var redisClient *redis.Client
	if cfg.Observers.CacheEnabled || cfg.RateLimit.Enabled {
		redisClient, err = cache.NewRedisClient(cfg.Redis)
		if err != nil {
			logger.Fatal("failed to connect to redis", zap.Error(err))
		}
		defer redisClient.Close()
	}

	// Region observers, built once per map view
	factories := []mapview.ObserverFactory{
		func(viewID uuid.UUID) domain.RegionObserver {
			return observer.NewLoggingObserver(viewID, logger)
		},
		func(uuid.UUID) domain.RegionObserver {
			return observer.NewMetricsObserver(regionMetrics)
		},
	}

	var regionCache *cache.RegionCache
	if cfg.Observers.CacheEnabled {
		regionCache = cache.NewRegionCache(redisClient, cfg.Observers.CacheTTL)
		factories = append(factories, func(viewID uuid.UUID) domain.RegionObserver {
			return observer.NewCacheObserver(viewID, regionCache, cfg.Observers.Timeout, logger)
		})
	}

	if cfg.Observers.PublishEnabled {
		var natsConn *nats.Conn
		natsConn, err = messaging.NewNATSConn(cfg.NATS, logger)
		if err != nil {
			logger.Fatal("failed to connect to nats", zap.Error(err))
		}
		defer natsConn.Drain()

		factories = append(factories, func(viewID uuid.UUID) domain.RegionObserver {
			return observer.NewPublisherObserver(viewID, natsConn, cfg.NATS.SubjectPrefix, logger)
		})
	}

	if cfg.Observers.ArchiveEnabled {
		s3Storage, err := storage.NewS3Storage(cfg.S3)
		if err != nil {
			logger.Fatal("failed to create s3 storage", zap.Error(err))
		}
		factories = append(factories, func(viewID uuid.UUID) domain.RegionObserver {
			return observer.NewArchiveObserver(viewID, s3Storage, cfg.Observers.ArchiveQueueSize, cfg.Observers.Timeout, logger)
		})
	}

	// Use cases
	viewRepo := postgres.NewViewRepo(pool)
	var viewSvc *mapview.Service
	if regionCache != nil {
		viewSvc = mapview.NewService(viewRepo, regionCache, logger, factories...)
	} else {
		viewSvc = mapview.NewService(viewRepo, nil, logger, factories...)
	}
	defer viewSvc.Close()

	tileSvc := tiles.NewService(cfg.Tiles.MaxTiles, cfg.Tiles.MaxCells)
	jwtSvc := auth.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.ViewTokenTTL)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtSvc)
	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		rateLimiter = middleware.NewRateLimiter(redisClient, cfg.RateLimit, logger)
	}

	// Router
	router := server.NewRouter(server.RouterConfig{
		ViewHandler:    handler.NewViewHandler(viewSvc, jwtSvc),
		TileHandler:    handler.NewTileHandler(viewSvc, tileSvc),
		AuthMiddleware: authMiddleware,
		RateLimiter:    rateLimiter,
		HTTPMetrics:    httpMetrics,
		Gatherer:       registry,
		Logger:         logger,
		Environment:    cfg.Server.Environment,
	})

	// Server
	srv := server.NewServer(server.ServerConfig{
		Port:         cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		Handler:      router.Engine(),
		Logger:       logger,
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}

	logger.Info("server stopped")
}

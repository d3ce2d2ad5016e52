package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/random"
	"go.uber.org/zap"

	"trustcart/internal/caching"
	"trustcart/internal/config"
	"trustcart/internal/handlers"
	"trustcart/internal/jobs/background"
	"trustcart/internal/middleware"
	"trustcart/internal/repositories"
	"trustcart/internal/services"
	"trustcart/pkg/database"
	appLogger "trustcart/pkg/logger"

	_ "trustcart/docs"
)

const version = "1.0.0"

func main() {
	cfg := config.Load()

	logger, err := appLogger.New(appLogger.Config{
		Level:             cfg.Logger.Level,
		Encoding:          cfg.Logger.Encoding,
		Development:       cfg.Logger.Development,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	})
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pricingDefaults, err := config.LoadPricingDefaults(cfg.Pricing.DefaultsFile)
	if err != nil {
		logger.Fatal("Failed to load pricing defaults", zap.String("file", cfg.Pricing.DefaultsFile), zap.Error(err))
	}

	health := handlers.NewHealthHandlers(version)

	// Persistence
	var (
		stateRepo repositories.StateRepository
		userRepo  repositories.UserRepository
	)
	if cfg.DB.URL != "" {
		pool, err := database.NewPool(ctx, cfg.DB.URL)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer pool.Close()
		if err := database.Migrate(ctx, pool); err != nil {
			logger.Fatal("Failed to migrate database", zap.Error(err))
		}
		stateRepo = repositories.NewStateRepo(pool)
		userRepo = repositories.NewUserRepo(pool)
		health.Register("database", pool.Ping, true)
	} else {
		logger.Warn("DATABASE_URL not set, workspaces and users are kept in memory")
		stateRepo = repositories.NewMemoryStateRepo()
		userRepo = repositories.NewMemoryUserRepo()
	}

	// Cache
	var cacheService caching.CacheService
	if cfg.Redis.Addr != "" {
		cacheService = caching.NewRedisCacheService(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err := cacheService.Ping(ctx); err != nil {
			logger.Warn("Redis unreachable at startup, requests will fall through to storage", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
		}
		health.Register("cache", cacheService.Ping, false)
	} else {
		cacheService = caching.NewMemoryCacheService()
	}

	// Snapshot storage
	storageService := services.NewDisabledStorageService()
	if cfg.MinIO.Endpoint != "" {
		minioStorage, err := services.NewMinioStorageService(cfg.MinIO.Endpoint, cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, cfg.MinIO.Bucket, cfg.MinIO.UseSSL)
		if err != nil {
			logger.Fatal("Failed to create MinIO client", zap.Error(err))
		}
		if err := minioStorage.EnsureBucketExists(ctx); err != nil {
			logger.Warn("Failed to ensure snapshot bucket", zap.String("bucket", cfg.MinIO.Bucket), zap.Error(err))
		}
		storageService = minioStorage
		health.Register("storage", storageService.EnsureBucketExists, false)
	}

	// Services
	workspaceService := services.NewWorkspaceService(stateRepo, cacheService, logger, pricingDefaults)
	categoryService := services.NewCategoryService(cacheService, logger)
	productService := services.NewProductService(workspaceService, categoryService, logger)
	pricingService := services.NewPricingService(workspaceService, cacheService, logger)
	bundleService := services.NewBundleService(workspaceService, logger)
	transferService := services.NewTransferService(workspaceService, categoryService, storageService, cacheService, logger)

	jwtSecret := cfg.JWT.Secret
	if jwtSecret == "" {
		jwtSecret = random.String(32)
		logger.Warn("JWT_SECRET not set, using a generated secret; sessions will not survive a restart")
	}
	authService := services.NewAuthService(userRepo, cacheService, logger, jwtSecret, cfg.JWT.SessionTTL)

	var tokenParser middleware.TokenParser = authService
	if cfg.JWT.JWKSURL != "" {
		jwksParser, err := middleware.NewJWKSParser(cfg.JWT.JWKSURL, logger)
		if err != nil {
			logger.Fatal("Failed to load JWKS", zap.String("url", cfg.JWT.JWKSURL), zap.Error(err))
		}
		defer jwksParser.Close()
		tokenParser = middleware.ParserChain{authService, jwksParser}
	}

	// Background jobs
	scheduler, err := background.NewJobScheduler(workspaceService, pricingService, transferService, storageService, logger, background.Intervals{
		MetricsRefresh: cfg.Jobs.MetricsRefreshInterval,
		Snapshot:       cfg.Jobs.SnapshotInterval,
	})
	if err != nil {
		logger.Fatal("Failed to create job scheduler", zap.Error(err))
	}
	health.SetJobStatus(scheduler.GetJobStatus)
	scheduler.Start()
	defer func() {
		if err := scheduler.Stop(); err != nil {
			logger.Warn("Failed to stop job scheduler", zap.Error(err))
		}
	}()

	// HTTP server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Pre(echoMiddleware.RemoveTrailingSlash())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(logger))
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.BodyLimit("10M"))

	handlers.RegisterRoutes(e, handlers.Handlers{
		Auth:       handlers.NewAuthHandlers(authService),
		Products:   handlers.NewProductHandlers(productService, pricingService),
		Pricing:    handlers.NewPricingHandlers(pricingService),
		Bundles:    handlers.NewBundleHandlers(bundleService),
		Categories: handlers.NewCategoryHandlers(categoryService),
		Transfer:   handlers.NewTransferHandlers(transferService),
		Health:     health,
	}, middleware.JWTMiddleware(tokenParser, authService, logger))

	go func() {
		logger.Info("Starting server", zap.String("port", cfg.Server.Port), zap.String("env", cfg.Server.AppEnv), zap.String("version", version))
		if err := e.Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", zap.Error(err))
	}
}

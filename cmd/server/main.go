package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	catalogapp "github.com/storeadmin/backend/internal/application/catalog"
	identityapp "github.com/storeadmin/backend/internal/application/identity"
	integrationapp "github.com/storeadmin/backend/internal/application/integration"
	"github.com/storeadmin/backend/internal/infrastructure/auth"
	"github.com/storeadmin/backend/internal/infrastructure/config"
	"github.com/storeadmin/backend/internal/infrastructure/ecommerce"
	"github.com/storeadmin/backend/internal/infrastructure/logger"
	"github.com/storeadmin/backend/internal/infrastructure/persistence"
	"github.com/storeadmin/backend/internal/interfaces/http/handler"
	"github.com/storeadmin/backend/internal/interfaces/http/middleware"
	"github.com/storeadmin/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting StoreAdmin Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Token blacklist backed by Redis
	blacklist, err := auth.NewRedisTokenBlacklist(auth.RedisTokenBlacklistConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	log.Info("Redis connected successfully")

	// Initialize repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	credentialRepo := persistence.NewGormCredentialRepository(db.DB)

	// Initialize application services
	jwtService := auth.NewJWTService(cfg.JWT)
	platformFactory := ecommerce.NewAdapterFactory(cfg.WooCommerce.RequestTimeout, log)
	authService := identityapp.NewAuthService(userRepo, jwtService, blacklist, log)
	productService := catalogapp.NewProductService(productRepo, credentialRepo, platformFactory, log)
	connectionService := integrationapp.NewConnectionService(credentialRepo, platformFactory, log)

	// Setup gin engine
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Failed to set trusted proxies", zap.Error(err))
		}
	}

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders

	engine.Use(middleware.RequestID())
	engine.Use(middleware.CORSWithConfig(corsConfig))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(logger.Recovery(log))

	jwtMiddleware := middleware.JWTAuthMiddleware(middleware.JWTMiddlewareConfig{
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
		Logger:         log,
	})

	// Handlers and routes
	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(productService)
	integrationHandler := handler.NewIntegrationHandler(connectionService)
	systemHandler := handler.NewSystemHandler(db)

	r := router.NewRouter(engine,
		router.WithAPIVersion("v1"),
		router.WithAuthMiddleware(jwtMiddleware),
	)
	r.RegisterPublic(authHandler.RegisterPublicRoutes)
	r.RegisterPublic(systemHandler.RegisterRoutes)
	r.Register(authHandler).
		Register(productHandler).
		Register(integrationHandler)
	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

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

	collectionapp "github.com/koreat/backend/internal/application/collection"
	identityapp "github.com/koreat/backend/internal/application/identity"
	placeapp "github.com/koreat/backend/internal/application/place"
	"github.com/koreat/backend/internal/infrastructure/auth"
	"github.com/koreat/backend/internal/infrastructure/config"
	"github.com/koreat/backend/internal/infrastructure/email"
	"github.com/koreat/backend/internal/infrastructure/enrichment"
	"github.com/koreat/backend/internal/infrastructure/logger"
	"github.com/koreat/backend/internal/infrastructure/persistence"
	"github.com/koreat/backend/internal/infrastructure/storage"
	"github.com/koreat/backend/internal/infrastructure/translation"
	"github.com/koreat/backend/internal/interfaces/http/handler"
	"github.com/koreat/backend/internal/interfaces/http/middleware"
	"github.com/koreat/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load config: " + err.Error())
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
		_ = log.Sync()
	}()

	log.Info("Starting KOREAT backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Initialize database with a GORM logger driven by the app log level
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLogger := logger.NewGormLogger(log, gormLogLevel)

	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLogger)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database", zap.Error(err))
		}
	}()

	// Repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	verificationRepo := persistence.NewGormVerificationRepository(db.DB)
	placeRepo := persistence.NewGormPlaceRepository(db.DB)
	translationRepo := persistence.NewGormTranslationRepository(db.DB)
	auditRepo := persistence.NewGormAuditRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	savedPlaceRepo := persistence.NewGormSavedPlaceRepository(db.DB)
	reviewRepo := persistence.NewGormReviewRepository(db.DB)
	moderationRepo := persistence.NewGormModerationRepository(db.DB)

	// Token blacklist: Redis in deployments that run one, in-memory otherwise
	var blacklist auth.TokenBlacklist
	if cfg.Redis.Enabled {
		redisBlacklist, err := auth.NewRedisTokenBlacklist(auth.RedisTokenBlacklistConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		blacklist = redisBlacklist
		log.Info("Using Redis token blacklist",
			zap.String("host", cfg.Redis.Host),
			zap.Int("port", cfg.Redis.Port),
		)
	} else {
		blacklist = auth.NewInMemoryTokenBlacklist()
		log.Info("Using in-memory token blacklist")
	}

	jwtService := auth.NewJWTService(cfg.JWT)

	// Outbound adapters
	mailer := email.NewSMTPMailer(cfg.SMTP, log)
	enricher := enrichment.NewClient(cfg.Enrichment, log)
	translator := translation.NewDeepLClient(cfg.Translation, log)

	var objectStorage collectionapp.ObjectStorage
	if cfg.Storage.Bucket != "" {
		s3Storage, err := storage.NewS3ObjectStorage(&cfg.Storage)
		if err != nil {
			log.Fatal("Failed to initialize object storage", zap.Error(err))
		}
		objectStorage = s3Storage
		log.Info("Using S3 object storage", zap.String("bucket", cfg.Storage.Bucket))
	} else {
		objectStorage = storage.NewStubObjectStorage()
		log.Warn("Object storage is not configured, review images will be discarded")
	}

	// Application services
	authService := identityapp.NewAuthService(userRepo, jwtService, blacklist, log)
	userService := identityapp.NewUserService(userRepo, verificationRepo, blacklist, jwtService, log)
	verificationService := identityapp.NewVerificationService(verificationRepo, userRepo, mailer, log)

	placeService := placeapp.NewPlaceService(placeRepo, auditRepo, userRepo, enricher, translator, placeapp.PlaceServiceConfig{
		MaxRetries:     cfg.Enrichment.MaxRetries,
		RetryBaseDelay: cfg.Enrichment.RetryBaseDelay,
	}, log)
	translationService := placeapp.NewTranslationService(translationRepo, auditRepo, userRepo, translator, log)

	categoryService := collectionapp.NewCategoryService(categoryRepo, log)
	savedPlaceService := collectionapp.NewSavedPlaceService(savedPlaceRepo, categoryRepo, placeRepo, log)
	reviewService := collectionapp.NewReviewService(reviewRepo, placeRepo, objectStorage, log)
	moderationService := collectionapp.NewModerationService(moderationRepo, reviewRepo, placeRepo, userRepo, log)

	// HTTP handlers
	authHandler := handler.NewAuthHandler(authService, userService, verificationService)
	userHandler := handler.NewUserHandler(userService)
	placeHandler := handler.NewPlaceHandler(placeService, translationService)
	categoryHandler := handler.NewCategoryHandler(categoryService, savedPlaceService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	moderationHandler := handler.NewModerationHandler(moderationService)
	systemHandler := handler.NewSystemHandler(db.DB)

	// Gin engine
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		log.Fatal("Failed to set trusted proxies", zap.Error(err))
	}

	jwtConfig := middleware.DefaultJWTConfig(jwtService)
	jwtConfig.TokenBlacklist = blacklist
	jwtConfig.Logger = log

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))
	engine.Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig))

	// Health endpoints live at the engine root, outside the versioned API
	systemHandler.Register(engine)

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(authHandler).
		Register(userHandler).
		Register(placeHandler).
		Register(categoryHandler).
		Register(reviewHandler).
		Register(moderationHandler)
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited")
}

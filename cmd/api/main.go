package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/Koushik2208/contentgen-pro/config"
	_ "github.com/Koushik2208/contentgen-pro/docs" // Important for Swagger
	v1 "github.com/Koushik2208/contentgen-pro/internal/delivery/http/v1"
	"github.com/Koushik2208/contentgen-pro/internal/repository/postgres"
	"github.com/Koushik2208/contentgen-pro/internal/usecase"
	"github.com/Koushik2208/contentgen-pro/pkg/auth"
	"github.com/Koushik2208/contentgen-pro/pkg/database"
	"github.com/Koushik2208/contentgen-pro/pkg/logger"
	"github.com/Koushik2208/contentgen-pro/pkg/redis"
	"github.com/Koushik2208/contentgen-pro/pkg/storage"
	"github.com/Koushik2208/contentgen-pro/pkg/validation"
)

// @title           ContentGen Pro API
// @version         1.0
// @description     Backend for the ContentGen Pro content creation platform using Clean Architecture.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting contentgen backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresPool(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (rate limiting); in-memory fallback when unavailable
	if err := redis.Initialize(redis.Config{
		URL:      cfg.UpstashRedisURL,
		Password: cfg.UpstashRedisPassword,
	}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
	}
	defer redis.Close()

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	profileRepo := postgres.NewProfileRepository(dbPool)
	prefsRepo := postgres.NewPreferencesRepository(dbPool)
	contentRepo := postgres.NewContentRepository(dbPool)
	carouselRepo := postgres.NewCarouselRepository(dbPool)
	templateRepo := postgres.NewTemplateRepository(dbPool)
	analyticsRepo := postgres.NewAnalyticsRepository(dbPool)

	// 6. Setup Avatar Storage (Supabase Storage, S3-compatible)
	avatarStore, err := storage.NewAvatarStore(context.Background(), storage.AvatarStoreConfig{
		Endpoint:        cfg.StorageEndpoint,
		Region:          cfg.StorageRegion,
		AccessKeyID:     cfg.StorageAccessKey,
		SecretAccessKey: cfg.StorageSecretKey,
		Bucket:          cfg.StorageBucket,
		PublicBaseURL:   cfg.StoragePublicURL,
	})
	if err != nil {
		logger.Log.Error("Failed to init avatar storage", "error", err)
		os.Exit(1)
	}
	if !avatarStore.IsConfigured() {
		logger.Log.Warn("Avatar storage not fully configured - avatar uploads will be unavailable")
	}

	// 7. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)

	statusChecker := usecase.NewStatusChecker(
		prefsRepo,
		time.Duration(cfg.OnboardingCheckTimeoutSeconds)*time.Second,
		logger.Log,
	)

	authUC := usecase.NewAuthUsecase(userRepo)
	onboardingUC := usecase.NewOnboardingUsecase(profileRepo, prefsRepo, statusChecker, validate)
	contentUC := usecase.NewContentUsecase(contentRepo, validate)
	carouselUC := usecase.NewCarouselUsecase(carouselRepo, contentRepo)
	profileUC := usecase.NewProfileUsecase(profileRepo, prefsRepo, statusChecker, validate)
	templateUC := usecase.NewTemplateUsecase(templateRepo)
	analyticsUC := usecase.NewAnalyticsUsecase(analyticsRepo, contentRepo, validate)

	// 8. Setup Auth Provider (JWKS)
	// Assuming Supabase URL is like https://xyz.supabase.co
	jwksURL := cfg.SupabaseUrl + "/auth/v1/.well-known/jwks.json"
	jwksProvider := auth.NewProvider(jwksURL)

	// 9. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        authUC,
		OnboardingUC:  onboardingUC,
		ContentUC:     contentUC,
		CarouselUC:    carouselUC,
		ProfileUC:     profileUC,
		TemplateUC:    templateUC,
		AnalyticsUC:   analyticsUC,
		StatusChecker: statusChecker,
		AvatarStore:   avatarStore,
		JWKSProvider:  jwksProvider,
		Config:        cfg,
	})

	// 10. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}

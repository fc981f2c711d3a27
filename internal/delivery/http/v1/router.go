package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Koushik2208/contentgen-pro/config"
	"github.com/Koushik2208/contentgen-pro/internal/delivery/http/middleware"
	"github.com/Koushik2208/contentgen-pro/internal/delivery/http/response"
	"github.com/Koushik2208/contentgen-pro/internal/domain"
	"github.com/Koushik2208/contentgen-pro/internal/usecase"
	"github.com/Koushik2208/contentgen-pro/pkg/auth"
	"github.com/Koushik2208/contentgen-pro/pkg/storage"
)

type RouterDeps struct {
	AuthUC        domain.AuthUsecase
	OnboardingUC  domain.OnboardingUsecase
	ContentUC     domain.ContentUsecase
	CarouselUC    domain.CarouselUsecase
	ProfileUC     domain.ProfileUsecase
	TemplateUC    domain.TemplateUsecase
	AnalyticsUC   domain.AnalyticsUsecase
	StatusChecker *usecase.StatusChecker
	AvatarStore   *storage.AvatarStore
	JWKSProvider  *auth.Provider
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware()) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger()) // Use standard Gin logger
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.RateLimitMiddleware(middleware.DefaultRateLimitConfig(deps.Config)))
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public auth routes carry the strict login rate limit; they are the only
	// endpoints worth brute-forcing
	publicAuth := v1.Group("")
	publicAuth.Use(middleware.RateLimitMiddleware(middleware.LoginRateLimitConfig(deps.Config)))

	// Protected routes: valid Supabase JWT required
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.JWKSProvider, deps.Config, deps.AuthUC))
	{
		NewAuthHandler(publicAuth, protected, deps.AuthUC, deps.OnboardingUC, deps.Config)
		NewOnboardingHandler(protected, deps.OnboardingUC)
	}

	// Onboarded routes: the dashboard surface, gated on a completed wizard.
	// The gate fails open, so these stay reachable when the status lookup is
	// slow or erroring.
	onboarded := protected.Group("")
	onboarded.Use(middleware.RequireOnboarded(deps.StatusChecker))
	{
		uploadLimited := onboarded.Group("")
		uploadLimited.Use(middleware.RateLimitMiddleware(middleware.UploadRateLimitConfig(deps.Config)))

		NewContentHandler(onboarded, deps.ContentUC, deps.AnalyticsUC)
		NewCarouselHandler(onboarded, deps.CarouselUC)
		NewTemplateHandler(onboarded, deps.TemplateUC)
		NewProfileHandler(onboarded, uploadLimited, deps.ProfileUC, deps.AvatarStore)
	}

	return r
}

package v1

import (
	"estate-site-backend/config"
	"estate-site-backend/internal/delivery/http/middleware"
	"estate-site-backend/internal/domain"
	"estate-site-backend/internal/metrics"
	"estate-site-backend/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

type RouterDeps struct {
	ContactUC domain.ContactUsecase
	HealthUC  usecase.HealthUsecase
	Metrics   *metrics.Metrics
	Gatherer  prometheus.Gatherer
	Logger    *zap.Logger
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	devOrigins := []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	if deps.Config.FrontendURL != "" {
		devOrigins = append(devOrigins, deps.Config.FrontendURL)
	}

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(middleware.CORSConfig{
		AllowedOrigins: deps.Config.AllowedOrigins,
		DevOrigins:     devOrigins,
		IsProduction:   deps.Config.IsProduction(),
	})) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.SecurityHeadersMiddleware(deps.Config.IsProduction()))
	r.Use(middleware.ErrorHandler(deps.Logger))

	if deps.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	v1 := r.Group("/v1")

	NewHealthHandler(v1, deps.HealthUC)
	NewContactHandler(v1, deps.ContactUC, deps.Config.ContactMaxBodyBytes, deps.Metrics) // Contact form (no auth required)

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

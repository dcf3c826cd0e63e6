package apiHttp

import (
	"context"
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/regional-portal/geo-backend/docs"
	"github.com/regional-portal/geo-backend/pkg/auth"
	"github.com/regional-portal/geo-backend/pkg/limiter"
	"github.com/regional-portal/geo-backend/pkg/logger"
	"github.com/regional-portal/geo-backend/pkg/validator"

	internalV1 "github.com/regional-portal/geo-backend/internal/api/http/internal/v1"
	"github.com/regional-portal/geo-backend/internal/config"
	"github.com/regional-portal/geo-backend/internal/service"
	"github.com/regional-portal/geo-backend/internal/tenantrouter"
)

const readinessTimeout = 2 * time.Second

// HealthCheck reports whether a dependency can serve requests.
type HealthCheck func(ctx context.Context) error

type Handler struct {
	services     *service.Services
	tokenManager auth.TokenManager
	router       *tenantrouter.Router
	config       *config.Config
	gatherer     prometheus.Gatherer
	checks       map[string]HealthCheck
}

func NewHandlers(
	services *service.Services,
	tokenManager auth.TokenManager,
	cfg *config.Config,
	gatherer prometheus.Gatherer,
	checks map[string]HealthCheck,
) *Handler {
	return &Handler{
		services:     services,
		tokenManager: tokenManager,
		router:       tenantrouter.New(cfg.Router),
		config:       cfg,
		gatherer:     gatherer,
		checks:       checks,
	}
}

// Init builds the engine. Background middleware work stops when ctx is done.
func (h *Handler) Init(ctx context.Context, cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	validator.RegisterGinValidator()

	router.Use(
		ginzap.Ginzap(logger.Logger(), time.RFC3339, true),
		limiter.Limit(ctx, cfg.Limiter.RPS, cfg.Limiter.Burst, cfg.Limiter.TTL),
		corsMiddleware(cfg.HttpServer.AllowedOrigins),
	)
	router.Use(ginzap.RecoveryWithZap(logger.Logger(), true))

	if cfg.HttpServer.SwaggerEnabled {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.NewHandler(), ginSwagger.InstanceName("internal")))
	}

	if cfg.HttpServer.MetricsEnabled && h.gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{})))
	}

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/readyz", h.readiness)

	h.initAPI(router)

	return router
}

func (h *Handler) initAPI(router *gin.Engine) {
	internalHandlersV1 := internalV1.NewHandler(h.services, h.tokenManager, h.router, h.config)
	api := router.Group("/api")
	internalHandlersV1.Init(api)
}

func (h *Handler) readiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
	defer cancel()

	status := http.StatusOK
	result := make(map[string]string, len(h.checks))
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			logger.Warn("readiness check failed", zap.String("dependency", name), zap.Error(err))
			result[name] = "unavailable"
			status = http.StatusServiceUnavailable
			continue
		}
		result[name] = "ok"
	}

	c.JSON(status, result)
}

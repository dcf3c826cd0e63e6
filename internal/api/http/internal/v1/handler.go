package v1

import (
	"github.com/regional-portal/geo-backend/internal/config"
	"github.com/regional-portal/geo-backend/internal/service"
	"github.com/regional-portal/geo-backend/internal/tenantrouter"
	"github.com/regional-portal/geo-backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

// @title Geo Routing API
// @version 1.0
// @description Resolves visitors of the regional portal to a partner tenant or the national site

// @BasePath /api/v1

// @securityDefinitions.apikey AdminAuth
// @in header
// @name Authorization

// @securityDefinitions.apikey UserAuth
// @in header
// @name Authorization

type Handler struct {
	services     *service.Services
	tokenManager auth.TokenManager
	router       *tenantrouter.Router
	config       *config.Config
}

func NewHandler(
	services *service.Services,
	tokenManager auth.TokenManager,
	router *tenantrouter.Router,
	config *config.Config,
) *Handler {
	return &Handler{
		services:     services,
		tokenManager: tokenManager,
		router:       router,
		config:       config,
	}
}

func (h *Handler) Init(api *gin.RouterGroup) {
	v1 := api.Group("v1")

	h.initGeoRoutes(v1)
	h.initAdminRoutes(v1)
}

package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/regional-portal/geo-backend/internal/domain"
	"github.com/regional-portal/geo-backend/internal/service"
	"github.com/regional-portal/geo-backend/internal/tenantrouter"
	"github.com/regional-portal/geo-backend/pkg/logger"
)

func (h *Handler) initGeoRoutes(api *gin.RouterGroup) {
	geo := api.Group("/geo", h.tenantMarkerMiddleware)

	geo.GET("/resolve", h.resolve)
	geo.GET("/route", h.route)
	geo.GET("/marker", h.getMarker)
	geo.DELETE("/marker", h.resetMarker)
	geo.GET("/tenants/:slug", h.getTenant)

	geo.POST("/preference", h.optionalUserIdentityMiddleware, h.savePreference)
	geo.GET("/preference", h.optionalUserIdentityMiddleware, h.getPreference)
}

type resolveQuery struct {
	CEP  string `form:"cep"`
	UF   string `form:"uf"`
	City string `form:"city"`
	Lat  string `form:"lat"`
	Lng  string `form:"lng"`
}

func (q resolveQuery) lookup() (domain.Lookup, error) {
	return domain.ParseLookup(domain.LookupParams{
		CEP:       q.CEP,
		StateCode: q.UF,
		City:      q.City,
		Latitude:  q.Lat,
		Longitude: q.Lng,
	})
}

type regionResponse struct {
	ID        uuid.UUID `json:"id"`
	StateCode string    `json:"uf"`
	CityName  string    `json:"city"`
} // @name Region

type tenantResponse struct {
	ID     uuid.UUID `json:"id"`
	Slug   string    `json:"slug"`
	Domain string    `json:"domain"`
	Name   string    `json:"name,omitempty"`
} // @name Tenant

type resolveResponse struct {
	Region   *regionResponse `json:"region"`
	Tenant   *tenantResponse `json:"tenant"`
	Fallback bool            `json:"fallback"`
} // @name Resolution

func newResolveResponse(res *domain.Resolution) resolveResponse {
	out := resolveResponse{Fallback: res.Fallback}
	if res.Region != nil {
		out.Region = &regionResponse{
			ID:        res.Region.ID,
			StateCode: res.Region.StateCode,
			CityName:  res.Region.CityName,
		}
	}
	if res.Tenant != nil {
		out.Tenant = &tenantResponse{
			ID:     res.Tenant.ID,
			Slug:   res.Tenant.Slug,
			Domain: res.Tenant.Domain,
			Name:   res.Tenant.Name,
		}
	}

	return out
}

// @Summary Resolve location
// @Tags Geo
// @Description Resolves exactly one of cep, uf+city or lat+lng to a region and its partner tenant.
// @Description A lookup without a partner answers 200 with fallback=true.
// @ModuleID resolve
// @Produce  json
// @Param cep query string false "Postal code (CEP)"
// @Param uf query string false "State code"
// @Param city query string false "City name"
// @Param lat query number false "Latitude"
// @Param lng query number false "Longitude"
// @Success 200 {object} resolveResponse
// @Failure 400 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /geo/resolve [get]
func (h *Handler) resolve(c *gin.Context) {
	res, err := h.resolveQuery(c)
	if err != nil {
		lookupErrorResponse(c, err, ResolveFailedMessage)
		return
	}

	c.JSON(http.StatusOK, newResolveResponse(res))
}

func (h *Handler) resolveQuery(c *gin.Context) (*domain.Resolution, error) {
	var query resolveQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		return nil, domain.ErrMalformedLookup
	}

	lookup, err := query.lookup()
	if err != nil {
		return nil, err
	}

	return h.services.Resolver.Resolve(c.Request.Context(), lookup)
}

// @Summary Route to tenant
// @Tags Geo
// @Description Resolves the location, stores the tenant marker cookie and redirects to the tenant or national base path.
// @ModuleID route
// @Param cep query string false "Postal code (CEP)"
// @Param uf query string false "State code"
// @Param city query string false "City name"
// @Param lat query number false "Latitude"
// @Param lng query number false "Longitude"
// @Success 302
// @Failure 400 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /geo/route [get]
func (h *Handler) route(c *gin.Context) {
	res, err := h.resolveQuery(c)
	if err != nil {
		lookupErrorResponse(c, err, ResolveFailedMessage)
		return
	}

	nav, err := h.router.Transition(tenantrouter.NewCookieStore(c, h.config.Router), res, nil)
	if err != nil {
		logger.Error("tenant transition failed", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, RouteFailedMessage)
		return
	}

	c.Redirect(http.StatusFound, nav.Target)
}

type markerResponse struct {
	State  string  `json:"state"`
	Marker *string `json:"marker"`
	Target *string `json:"target"`
} // @name TenantMarker

// @Summary Current tenant marker
// @Tags Geo
// @Description Returns the persisted routing decision without resolving again.
// @Description A marker of a tenant that no longer exists reads as unresolved.
// @ModuleID getMarker
// @Produce  json
// @Success 200 {object} markerResponse
// @Failure 500 {object} ErrorStruct
// @Router /geo/marker [get]
func (h *Handler) getMarker(c *gin.Context) {
	current := getMarkerState(c)
	unresolved := markerResponse{State: tenantrouter.Unresolved.String()}
	if current.State != tenantrouter.Resolved {
		c.JSON(http.StatusOK, unresolved)
		return
	}

	var tenantDomain string
	if !current.Marker.IsNational() && h.router.NeedsTenantDomain() {
		tenant, err := h.services.Tenants.GetBySlug(c.Request.Context(), current.Marker.TenantSlug())
		if err != nil {
			if errors.Is(err, service.ErrTenantNotFound) {
				c.JSON(http.StatusOK, unresolved)
				return
			}
			logger.Error("get marker tenant failed", zap.Error(err))
			errorResponse(c, http.StatusInternalServerError, GetTenantFailedMessage)
			return
		}
		tenantDomain = tenant.Domain
	}

	marker := current.Marker.String()
	target := h.router.Target(current.Marker, tenantDomain)
	c.JSON(http.StatusOK, markerResponse{
		State:  current.State.String(),
		Marker: &marker,
		Target: &target,
	})
}

// @Summary Reset tenant marker
// @Tags Geo
// @Description Clears the marker so the next visit starts unresolved.
// @ModuleID resetMarker
// @Success 204
// @Failure 500 {object} ErrorStruct
// @Router /geo/marker [delete]
func (h *Handler) resetMarker(c *gin.Context) {
	if err := h.router.Reset(tenantrouter.NewCookieStore(c, h.config.Router)); err != nil {
		logger.Error("tenant marker reset failed", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, MarkerResetFailedMessage)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get tenant
// @Tags Geo
// @Description Looks up a partner tenant by the slug stored in the marker.
// @ModuleID getTenant
// @Produce  json
// @Param slug path string true "Tenant slug"
// @Success 200 {object} tenantResponse
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /geo/tenants/{slug} [get]
func (h *Handler) getTenant(c *gin.Context) {
	tenant, err := h.services.Tenants.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrTenantNotFound) {
			errorResponse(c, http.StatusNotFound, TenantNotFoundMessage)
			return
		}
		logger.Error("get tenant failed", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, GetTenantFailedMessage)
		return
	}

	c.JSON(http.StatusOK, tenantResponse{
		ID:     tenant.ID,
		Slug:   tenant.Slug,
		Domain: tenant.Domain,
		Name:   tenant.Name,
	})
}

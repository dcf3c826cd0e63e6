package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/regional-portal/geo-backend/internal/tenantrouter"
	"github.com/regional-portal/geo-backend/pkg/auth"
	"github.com/regional-portal/geo-backend/pkg/logger"
)

const (
	authorizationHeader = "Authorization"
	claimsCtx           = "claims"
	markerCtx           = "tenantMarker"
)

var errEmptyAuthHeader = errors.New("empty auth header")

// optionalUserIdentityMiddleware lets anonymous callers through but rejects a broken bearer token.
func (h *Handler) optionalUserIdentityMiddleware(c *gin.Context) {
	claims, err := h.parseAuthHeader(c)
	if errors.Is(err, errEmptyAuthHeader) {
		return
	}
	if err != nil {
		if !errors.Is(err, auth.ErrAccessTokenExpired) {
			logger.Warn("parse auth header failed", zap.Error(err))
		}
		errorResponse(c, http.StatusUnauthorized, InvalidAccessTokenMessage)
		return
	}

	c.Set(claimsCtx, claims)
}

func (h *Handler) adminIdentityMiddleware(c *gin.Context) {
	claims, err := h.parseAuthHeader(c)
	if err != nil {
		errorResponse(c, http.StatusUnauthorized, InvalidAccessTokenMessage)
		return
	}
	if !claims.IsAdmin() {
		errorResponse(c, http.StatusForbidden, AccessDeniedMessage)
		return
	}

	c.Set(claimsCtx, claims)
}

func (h *Handler) parseAuthHeader(c *gin.Context) (*auth.Claims, error) {
	header := c.GetHeader(authorizationHeader)
	if header == "" {
		return nil, errEmptyAuthHeader
	}

	headerParts := strings.Split(header, " ")
	if len(headerParts) != 2 || headerParts[0] != "Bearer" {
		return nil, errors.New("invalid auth header")
	}

	if len(headerParts[1]) == 0 {
		return nil, errors.New("token is empty")
	}

	return h.tokenManager.Parse(headerParts[1])
}

// getUserID returns nil for anonymous callers.
func getUserID(c *gin.Context) *uuid.UUID {
	value, ok := c.Get(claimsCtx)
	if !ok {
		return nil
	}
	claims, ok := value.(*auth.Claims)
	if !ok {
		return nil
	}
	id, err := claims.UserID()
	if err != nil {
		return nil
	}

	return &id
}

type markerState struct {
	State  tenantrouter.State
	Marker tenantrouter.Marker
}

// tenantMarkerMiddleware reads the persisted marker once per request so handlers never re-resolve.
func (h *Handler) tenantMarkerMiddleware(c *gin.Context) {
	state, marker, err := h.router.Current(tenantrouter.NewCookieStore(c, h.config.Router))
	if err != nil {
		logger.Warn("read tenant marker failed", zap.Error(err))
		state, marker = tenantrouter.Unresolved, tenantrouter.Marker{}
	}

	c.Set(markerCtx, markerState{State: state, Marker: marker})
}

func getMarkerState(c *gin.Context) markerState {
	value, ok := c.Get(markerCtx)
	if !ok {
		return markerState{State: tenantrouter.Unresolved}
	}
	state, _ := value.(markerState)
	return state
}

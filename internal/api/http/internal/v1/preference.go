package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/regional-portal/geo-backend/internal/domain"
	"github.com/regional-portal/geo-backend/internal/service"
	"github.com/regional-portal/geo-backend/pkg/logger"
)

type savePreferenceRequest struct {
	TenantIDPreferred *uuid.UUID `json:"tenantIdPreferred"`
	RegionID          *uuid.UUID `json:"regionId"`
	CEP               *string    `json:"cep" binding:"omitempty,cep"`
	AnonID            string     `json:"anonId" binding:"omitempty,max=64"`
} // @name SavePreferenceRequest

// @Summary Save tenant preference
// @Tags Preferences
// @Description Upserts the tenant choice of the signed in user, or of anonId when there is no session.
// @Description Every call refreshes lastResolvedAt.
// @ModuleID savePreference
// @Accept  json
// @Param input body savePreferenceRequest true "preference"
// @Success 204
// @Failure 400 {object} ErrorStruct
// @Failure 401 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Security UserAuth
// @Router /geo/preference [post]
func (h *Handler) savePreference(c *gin.Context) {
	var req savePreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	identity, err := domain.NewIdentity(getUserID(c), req.AnonID)
	if err != nil {
		errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	err = h.services.Preferences.Save(c.Request.Context(), service.SavePreferenceInput{
		Identity:          identity,
		TenantIDPreferred: req.TenantIDPreferred,
		RegionID:          req.RegionID,
		PostalCode:        req.CEP,
	})
	if err != nil {
		if errors.Is(err, domain.ErrMalformedLookup) || errors.Is(err, domain.ErrInvalidIdentity) {
			errorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
		logger.Error("save preference failed", zap.Error(err), zap.String("identity_kind", string(identity.Kind())))
		errorResponse(c, http.StatusInternalServerError, SavePreferenceFailedMessage)
		return
	}

	c.Status(http.StatusNoContent)
}

type preferenceResponse struct {
	IdentityKind      string     `json:"identityKind"`
	TenantIDPreferred *uuid.UUID `json:"tenantIdPreferred"`
	RegionID          *uuid.UUID `json:"regionId"`
	CEP               *string    `json:"cep"`
	LastResolvedAt    time.Time  `json:"lastResolvedAt"`
} // @name TenantPreference

// @Summary Get tenant preference
// @Tags Preferences
// @Description Returns the stored preference of the signed in user, or of anonId when there is no session.
// @ModuleID getPreference
// @Produce  json
// @Param anonId query string false "Anonymous visitor id"
// @Success 200 {object} preferenceResponse
// @Failure 400 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Security UserAuth
// @Router /geo/preference [get]
func (h *Handler) getPreference(c *gin.Context) {
	identity, err := domain.NewIdentity(getUserID(c), c.Query("anonId"))
	if err != nil {
		errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	pref, err := h.services.Preferences.Get(c.Request.Context(), identity)
	if err != nil {
		if errors.Is(err, service.ErrPreferenceNotFound) {
			errorResponse(c, http.StatusNotFound, PreferenceNotFoundMessage)
			return
		}
		logger.Error("get preference failed", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, GetPreferenceFailedMessage)
		return
	}

	c.JSON(http.StatusOK, preferenceResponse{
		IdentityKind:      string(pref.Identity.Kind()),
		TenantIDPreferred: pref.TenantIDPreferred,
		RegionID:          pref.RegionID,
		CEP:               pref.PostalCode,
		LastResolvedAt:    pref.LastResolvedAt,
	})
}

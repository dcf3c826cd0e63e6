package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/regional-portal/geo-backend/internal/domain"
	"github.com/regional-portal/geo-backend/pkg/logger"
)

func (h *Handler) initAdminRoutes(api *gin.RouterGroup) {
	admin := api.Group("/admin", h.adminIdentityMiddleware)
	admin.GET("/geo/fallbacks", h.getFallbackReport)
}

type fallbackReportQuery struct {
	Days  int `form:"days" binding:"omitempty,min=1,max=90"`
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}

type fallbackReportResponse struct {
	Items []domain.FallbackStat `json:"items"`
} // @name FallbackReport

// @Summary Fallback report
// @Tags Admin
// @Description Regions whose visitors were sent to the national site, most frequent first.
// @ModuleID getFallbackReport
// @Produce  json
// @Param days query int false "Window in days, 7 by default"
// @Param limit query int false "Max rows, 20 by default"
// @Success 200 {object} fallbackReportResponse
// @Failure 400 {object} ValidationErrorStruct
// @Failure 401 {object} ErrorStruct
// @Failure 403 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Security AdminAuth
// @Router /admin/geo/fallbacks [get]
func (h *Handler) getFallbackReport(c *gin.Context) {
	var query fallbackReportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		validationErrorResponse(c, err)
		return
	}

	stats, err := h.services.Reports.Fallbacks(c.Request.Context(), time.Duration(query.Days)*24*time.Hour, query.Limit)
	if err != nil {
		logger.Error("fallback report failed", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, FallbackReportFailedMessage)
		return
	}
	if stats == nil {
		stats = []domain.FallbackStat{}
	}

	c.JSON(http.StatusOK, fallbackReportResponse{Items: stats})
}

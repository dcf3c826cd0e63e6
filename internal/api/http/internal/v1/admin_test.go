package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/regional-portal/geo-backend/internal/domain"
	"github.com/regional-portal/geo-backend/pkg/auth"
)

func TestFallbackReport_RequiresAdmin(t *testing.T) {
	f := newHandlerFixture(t)

	w := f.do(httptest.NewRequest(http.MethodGet, "/api/v1/admin/geo/fallbacks", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/geo/fallbacks", nil)
	req.Header.Set("Authorization", f.bearer(t, uuid.New(), auth.RoleReader))
	w = f.do(req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	f.reports.AssertNotCalled(t, "Fallbacks", mock.Anything, mock.Anything, mock.Anything)
}

func TestFallbackReport(t *testing.T) {
	f := newHandlerFixture(t)
	lastSeen := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	f.reports.On("Fallbacks", mock.Anything, 3*24*time.Hour, 10).Return([]domain.FallbackStat{
		{StateCode: "MG", CityName: "Uberaba", Count: 42, LastSeen: lastSeen},
	}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/geo/fallbacks?days=3&limit=10", nil)
	req.Header.Set("Authorization", f.bearer(t, uuid.New(), auth.RoleAdmin))
	w := f.do(req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"items":[{"uf":"MG","city":"Uberaba","count":42,"last_seen":"2026-03-01T12:00:00Z"}]}`, w.Body.String())
}

func TestFallbackReport_InvalidQuery(t *testing.T) {
	f := newHandlerFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/geo/fallbacks?days=365", nil)
	req.Header.Set("Authorization", f.bearer(t, uuid.New(), auth.RoleAdmin))
	w := f.do(req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "days", decodeBody(t, w.Body)["validation_errors"].([]any)[0].(map[string]any)["field_key"])
}

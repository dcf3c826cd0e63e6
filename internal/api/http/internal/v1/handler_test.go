package v1

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/regional-portal/geo-backend/internal/config"
	"github.com/regional-portal/geo-backend/internal/service"
	mock_service "github.com/regional-portal/geo-backend/internal/service/mock"
	"github.com/regional-portal/geo-backend/internal/tenantrouter"
	"github.com/regional-portal/geo-backend/pkg/auth"
	pkgvalidator "github.com/regional-portal/geo-backend/pkg/validator"
)

type handlerFixture struct {
	engine       *gin.Engine
	resolver     *mock_service.Resolver
	preferences  *mock_service.Preferences
	tenants      *mock_service.Tenants
	reports      *mock_service.Reports
	tokenManager *auth.Manager
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()
	return newHandlerFixtureWithTemplate(t, "/t/{slug}")
}

func newHandlerFixtureWithTemplate(t *testing.T, tenantPathTemplate string) *handlerFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	pkgvalidator.RegisterGinValidator()

	cfg := &config.Config{
		Router: config.RouterConfig{
			CookieName:         "tenant",
			CookieTTL:          time.Hour,
			NationalPath:       "/",
			TenantPathTemplate: tenantPathTemplate,
		},
	}

	tokenManager, err := auth.NewManager(config.JWTConfig{SigningKey: "test-key", AccessTokenTTL: time.Minute})
	require.NoError(t, err)

	f := &handlerFixture{
		resolver:     new(mock_service.Resolver),
		preferences:  new(mock_service.Preferences),
		tenants:      new(mock_service.Tenants),
		reports:      new(mock_service.Reports),
		tokenManager: tokenManager,
	}

	services := &service.Services{
		Resolver:    f.resolver,
		Preferences: f.preferences,
		Tenants:     f.tenants,
		Reports:     f.reports,
	}

	f.engine = gin.New()
	NewHandler(services, tokenManager, tenantrouter.New(cfg.Router), cfg).Init(f.engine.Group("/api"))

	t.Cleanup(func() {
		f.resolver.AssertExpectations(t)
		f.preferences.AssertExpectations(t)
		f.reports.AssertExpectations(t)
	})

	return f
}

func (f *handlerFixture) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)
	return w
}

func (f *handlerFixture) bearer(t *testing.T, userID uuid.UUID, role string) string {
	t.Helper()
	token, _, err := f.tokenManager.NewJWT(userID, role)
	require.NoError(t, err)
	return "Bearer " + token
}

func decodeBody(t *testing.T, body io.Reader) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&out))
	return out
}

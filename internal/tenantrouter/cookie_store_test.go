package tenantrouter

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regional-portal/geo-backend/internal/config"
)

var testRouterConfig = config.RouterConfig{
	CookieName:   "tenant",
	CookieTTL:    time.Hour,
	NationalPath: "/",
}

func newTestContext(cookie *http.Cookie) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		c.Request.AddCookie(cookie)
	}
	return c, w
}

func TestCookieStore_Load(t *testing.T) {
	c, _ := newTestContext(nil)
	_, ok, err := NewCookieStore(c, testRouterConfig).Load()
	require.NoError(t, err)
	assert.False(t, ok)

	c, _ = newTestContext(&http.Cookie{Name: "tenant", Value: "acme"})
	marker, ok, err := NewCookieStore(c, testRouterConfig).Load()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "acme", marker.String())

	c, _ = newTestContext(&http.Cookie{Name: "tenant", Value: "<script>"})
	_, ok, err = NewCookieStore(c, testRouterConfig).Load()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCookieStore_SaveAndClear(t *testing.T) {
	c, w := newTestContext(nil)
	store := NewCookieStore(c, testRouterConfig)

	require.NoError(t, store.Save(National))
	header := w.Header().Get("Set-Cookie")
	assert.True(t, strings.HasPrefix(header, "tenant=national"), header)
	assert.Contains(t, header, "Max-Age=3600")
	assert.Contains(t, header, "SameSite=Lax")

	c, w = newTestContext(nil)
	require.NoError(t, NewCookieStore(c, testRouterConfig).Clear())
	assert.Contains(t, w.Header().Get("Set-Cookie"), "Max-Age=0")
}

package tenantrouter

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/regional-portal/geo-backend/internal/config"
)

// CookieStore keeps the marker in a cookie readable by the front-end.
type CookieStore struct {
	c      *gin.Context
	name   string
	maxAge int
	domain string
	secure bool
}

func NewCookieStore(c *gin.Context, cfg config.RouterConfig) *CookieStore {
	name := cfg.CookieName
	if name == "" {
		name = "tenant"
	}

	return &CookieStore{
		c:      c,
		name:   name,
		maxAge: int(cfg.CookieTTL.Seconds()),
		domain: cfg.CookieDomain,
		secure: cfg.CookieSecure,
	}
}

func (s *CookieStore) Load() (Marker, bool, error) {
	raw, err := s.c.Cookie(s.name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return Marker{}, false, nil
		}
		return Marker{}, false, err
	}

	marker, ok := ParseMarker(raw)
	return marker, ok, nil
}

func (s *CookieStore) Save(marker Marker) error {
	s.c.SetSameSite(http.SameSiteLaxMode)
	s.c.SetCookie(s.name, marker.String(), s.maxAge, "/", s.domain, s.secure, false)
	return nil
}

func (s *CookieStore) Clear() error {
	s.c.SetSameSite(http.SameSiteLaxMode)
	s.c.SetCookie(s.name, "", -1, "/", s.domain, s.secure, false)
	return nil
}

package tenantrouter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regional-portal/geo-backend/internal/config"
	"github.com/regional-portal/geo-backend/internal/domain"
)

type memoryStore struct {
	marker  Marker
	set     bool
	saveErr error
}

func (s *memoryStore) Load() (Marker, bool, error) { return s.marker, s.set, nil }

func (s *memoryStore) Save(m Marker) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.marker, s.set = m, true
	return nil
}

func (s *memoryStore) Clear() error {
	s.marker, s.set = Marker{}, false
	return nil
}

func newTestRouter() *Router {
	return New(config.RouterConfig{NationalPath: "/", TenantPathTemplate: "/t/{slug}"})
}

func TestRouter_TransitionToTenant(t *testing.T) {
	r := newTestRouter()
	store := &memoryStore{}

	nav, err := r.Transition(store, &domain.Resolution{Tenant: &domain.Tenant{Slug: "acme"}, Fallback: false}, nil)
	require.NoError(t, err)
	assert.Equal(t, "acme", nav.Marker.String())
	assert.Equal(t, "/t/acme", nav.Target)

	state, current, err := r.Current(store)
	require.NoError(t, err)
	assert.Equal(t, Resolved, state)
	assert.Equal(t, "acme", current.TenantSlug())
	assert.Equal(t, "/t/acme", r.Target(current, ""))
}

func TestRouter_TransitionToNational(t *testing.T) {
	r := newTestRouter()
	store := &memoryStore{}

	nav, err := r.Transition(store, &domain.Resolution{Tenant: nil, Fallback: true}, nil)
	require.NoError(t, err)
	assert.Equal(t, National, nav.Marker)
	assert.Equal(t, "national", store.marker.String())
	assert.Equal(t, "/", nav.Target)
}

func TestRouter_FailedResolutionKeepsState(t *testing.T) {
	r := newTestRouter()

	unresolved := &memoryStore{}
	_, err := r.Transition(unresolved, nil, errors.New("500"))
	assert.ErrorIs(t, err, ErrNoTransition)
	state, _, err := r.Current(unresolved)
	require.NoError(t, err)
	assert.Equal(t, Unresolved, state)

	resolved := &memoryStore{marker: Marker{slug: "acme"}, set: true}
	_, err = r.Transition(resolved, nil, nil)
	assert.ErrorIs(t, err, ErrNoTransition)
	assert.Equal(t, "acme", resolved.marker.String())
}

func TestRouter_TenantPathTemplateWithDomain(t *testing.T) {
	r := New(config.RouterConfig{TenantPathTemplate: "https://{domain}/"})
	assert.True(t, r.NeedsTenantDomain())
	store := &memoryStore{}

	nav, err := r.Transition(store, domain.NewResolution(nil, &domain.Tenant{Slug: "acme", Domain: "acme.example"}), nil)
	require.NoError(t, err)
	assert.Equal(t, "https://acme.example/", nav.Target)

	_, current, err := r.Current(store)
	require.NoError(t, err)
	assert.Equal(t, "https://acme.example/", r.Target(current, "acme.example"))
	assert.Equal(t, "/", r.Target(National, ""))
	assert.False(t, newTestRouter().NeedsTenantDomain())
}

func TestRouter_RejectsUnsafeSlug(t *testing.T) {
	r := newTestRouter()
	store := &memoryStore{}

	for _, slug := range []string{"../admin", "national", "Acme"} {
		_, err := r.Transition(store, domain.NewResolution(nil, &domain.Tenant{Slug: slug}), nil)
		assert.ErrorIs(t, err, ErrInvalidSlug, slug)
	}
	assert.False(t, store.set)
}

func TestRouter_SaveFailure(t *testing.T) {
	r := newTestRouter()

	_, err := r.Transition(&memoryStore{saveErr: errors.New("disk full")}, domain.Unresolved(), nil)
	assert.Error(t, err)
}

func TestRouter_Reset(t *testing.T) {
	r := newTestRouter()
	store := &memoryStore{marker: National, set: true}

	require.NoError(t, r.Reset(store))

	state, _, err := r.Current(store)
	require.NoError(t, err)
	assert.Equal(t, Unresolved, state)
}

func TestParseMarker(t *testing.T) {
	for raw, want := range map[string]bool{
		"acme":          true,
		"national":      true,
		"sao-paulo-123": true,
		"":              false,
		"-acme":         false,
		"acme-":         false,
		"ACME":          false,
		"a b":           false,
	} {
		_, ok := ParseMarker(raw)
		assert.Equal(t, want, ok, raw)
	}
}

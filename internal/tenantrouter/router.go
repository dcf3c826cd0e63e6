// Package tenantrouter decides where a visitor goes after a resolution and remembers the decision.
//
// A visitor is either Unresolved (no marker) or Resolved to a tenant slug or to the national site.
// Only Transition moves Unresolved to Resolved and only Reset goes back.
package tenantrouter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/regional-portal/geo-backend/internal/config"
	"github.com/regional-portal/geo-backend/internal/domain"
)

type State int

const (
	Unresolved State = iota
	Resolved
)

func (s State) String() string {
	if s == Resolved {
		return "resolved"
	}
	return "unresolved"
}

var (
	// ErrNoTransition is returned when the resolution failed; the persisted marker is left untouched.
	ErrNoTransition = errors.New("resolution failed, no transition")
	ErrInvalidSlug  = errors.New("invalid tenant slug")
)

// MarkerStore persists the marker on the client side.
type MarkerStore interface {
	// Load reports ok=false when nothing valid is stored.
	Load() (marker Marker, ok bool, err error)
	Save(marker Marker) error
	Clear() error
}

type Navigation struct {
	Marker Marker
	Target string
}

type Router struct {
	nationalPath       string
	tenantPathTemplate string
}

func New(cfg config.RouterConfig) *Router {
	nationalPath := cfg.NationalPath
	if nationalPath == "" {
		nationalPath = "/"
	}
	template := cfg.TenantPathTemplate
	if template == "" {
		template = "/t/{slug}"
	}

	return &Router{
		nationalPath:       nationalPath,
		tenantPathTemplate: template,
	}
}

// Transition applies a resolver answer. A failed or empty answer never changes state.
func (r *Router) Transition(store MarkerStore, res *domain.Resolution, resolveErr error) (Navigation, error) {
	if resolveErr != nil {
		return Navigation{}, fmt.Errorf("%w: %w", ErrNoTransition, resolveErr)
	}
	if res == nil {
		return Navigation{}, ErrNoTransition
	}

	nav := Navigation{Marker: National, Target: r.nationalPath}
	if res.Tenant != nil && res.Tenant.Slug != "" {
		marker, ok := ParseMarker(res.Tenant.Slug)
		if !ok || marker.IsNational() {
			return Navigation{}, fmt.Errorf("%w: %q", ErrInvalidSlug, res.Tenant.Slug)
		}
		nav = Navigation{Marker: marker, Target: r.tenantPath(res.Tenant.Slug, res.Tenant.Domain)}
	}

	if err := store.Save(nav.Marker); err != nil {
		return Navigation{}, fmt.Errorf("save tenant marker: %w", err)
	}

	return nav, nil
}

// Current reads the persisted decision without re-resolving.
func (r *Router) Current(store MarkerStore) (State, Marker, error) {
	marker, ok, err := store.Load()
	if err != nil {
		return Unresolved, Marker{}, fmt.Errorf("load tenant marker: %w", err)
	}
	if !ok || marker.IsZero() {
		return Unresolved, Marker{}, nil
	}

	return Resolved, marker, nil
}

func (r *Router) Reset(store MarkerStore) error {
	if err := store.Clear(); err != nil {
		return fmt.Errorf("clear tenant marker: %w", err)
	}
	return nil
}

// NeedsTenantDomain reports whether tenant targets embed {domain}, which a stored marker does not carry.
func (r *Router) NeedsTenantDomain() bool {
	return strings.Contains(r.tenantPathTemplate, "{domain}")
}

// Target is the base path of a stored marker. tenantDomain is only used when NeedsTenantDomain.
func (r *Router) Target(marker Marker, tenantDomain string) string {
	if marker.IsZero() || marker.IsNational() {
		return r.nationalPath
	}
	return r.tenantPath(marker.TenantSlug(), tenantDomain)
}

func (r *Router) tenantPath(slug, tenantDomain string) string {
	return strings.NewReplacer("{slug}", slug, "{domain}", tenantDomain).Replace(r.tenantPathTemplate)
}

package tenantrouter

import (
	"regexp"
)

// NationalSlug is the marker value of visitors routed to the national site.
const NationalSlug = "national"

var slugPattern = regexp.MustCompile(`^[a-z0-9](?:[a-z0-9-]{0,62}[a-z0-9])?$`)

// Marker is the persisted routing decision: a tenant slug or National.
// The zero Marker means no decision has been made.
type Marker struct {
	slug string
}

var National = Marker{slug: NationalSlug}

// ParseMarker reads a persisted marker value. Anything that is not a valid slug is rejected.
func ParseMarker(raw string) (Marker, bool) {
	if !slugPattern.MatchString(raw) {
		return Marker{}, false
	}
	return Marker{slug: raw}, true
}

func (m Marker) String() string   { return m.slug }
func (m Marker) IsZero() bool     { return m.slug == "" }
func (m Marker) IsNational() bool { return m.slug == NationalSlug }

// TenantSlug returns the partner slug, empty for National and the zero marker.
func (m Marker) TenantSlug() string {
	if m.IsNational() {
		return ""
	}
	return m.slug
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// ResolutionEvent records one served resolution for the partner coverage report.
type ResolutionEvent struct {
	ID         uuid.UUID  `db:"id" json:"id"`
	LookupKind LookupKind `db:"lookup_kind" json:"lookup_kind"`
	RegionID   *uuid.UUID `db:"region_id" json:"region_id,omitempty"`
	StateCode  *string    `db:"uf" json:"uf,omitempty"`
	CityName   *string    `db:"city" json:"city,omitempty"`
	TenantID   *uuid.UUID `db:"tenant_id" json:"tenant_id,omitempty"`
	Fallback   bool       `db:"fallback" json:"fallback"`
	ResolvedAt time.Time  `db:"resolved_at" json:"resolved_at"`
}

func NewResolutionEvent(id uuid.UUID, kind LookupKind, res *Resolution, at time.Time) *ResolutionEvent {
	event := &ResolutionEvent{
		ID:         id,
		LookupKind: kind,
		Fallback:   res.Fallback,
		ResolvedAt: at,
	}
	if res.Region != nil {
		regionID := res.Region.ID
		stateCode := res.Region.StateCode
		cityName := res.Region.CityName
		event.RegionID = &regionID
		event.StateCode = &stateCode
		event.CityName = &cityName
	}
	if res.Tenant != nil {
		tenantID := res.Tenant.ID
		event.TenantID = &tenantID
	}

	return event
}

// FallbackStat counts fallback resolutions of one region. Unknown regions are reported with empty uf and city.
type FallbackStat struct {
	StateCode string    `db:"uf" json:"uf"`
	CityName  string    `db:"city" json:"city"`
	Count     int64     `db:"count" json:"count"`
	LastSeen  time.Time `db:"last_seen" json:"last_seen"`
}

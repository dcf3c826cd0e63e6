package domain

import (
	"github.com/google/uuid"
)

// Tenant is a regional partner site.
type Tenant struct {
	ID     uuid.UUID `db:"id" json:"id"`
	Slug   string    `db:"slug" json:"slug"`
	Domain string    `db:"domain" json:"domain"`
	Name   string    `db:"name" json:"name"`
}

// PartnerMapping links a region to a tenant. Lower priority wins, inactive rows are never eligible.
type PartnerMapping struct {
	RegionID uuid.UUID `db:"region_id" json:"region_id"`
	TenantID uuid.UUID `db:"tenant_id" json:"tenant_id"`
	Priority int       `db:"priority" json:"priority"`
	Active   bool      `db:"active" json:"active"`
}

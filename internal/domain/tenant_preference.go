package domain

import (
	"time"

	"github.com/google/uuid"
)

// TenantPreference is the last resolved tenant choice of one identity.
type TenantPreference struct {
	Identity          Identity
	TenantIDPreferred *uuid.UUID
	RegionID          *uuid.UUID
	PostalCode        *string
	LastResolvedAt    time.Time
}

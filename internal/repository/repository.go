package repository

import (
	"context"
	"time"

	"github.com/regional-portal/geo-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	Regions           Regions
	Tenants           Tenants
	GeoProcedures     GeoProcedures
	TenantPreferences TenantPreferences
	ResolutionEvents  ResolutionEvents
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		Regions:           newRegionRepository(db),
		Tenants:           newTenantRepository(db),
		GeoProcedures:     newGeoProcedureRepository(db),
		TenantPreferences: newTenantPreferenceRepository(db),
		ResolutionEvents:  newResolutionEventRepository(db),
	}
}

type Regions interface {
	GetByStateAndCity(ctx context.Context, stateCode string, cityName string) (*domain.Region, error)
}

type Tenants interface {
	GetPreferredByRegionID(ctx context.Context, regionID uuid.UUID) (*domain.Tenant, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error)
}

// GeoProcedures wraps the store side fuzzy and spatial resolution procedures.
type GeoProcedures interface {
	ResolveByPostalCode(ctx context.Context, code string) (*domain.Resolution, error)
	ResolveByPoint(ctx context.Context, latitude, longitude float64) (*domain.Resolution, error)
}

type TenantPreferences interface {
	Upsert(ctx context.Context, pref *domain.TenantPreference) error
	GetByIdentity(ctx context.Context, identity domain.Identity) (*domain.TenantPreference, error)
}

type ResolutionEvents interface {
	Create(ctx context.Context, event *domain.ResolutionEvent) error
	FallbackStats(ctx context.Context, since time.Time, limit int) ([]domain.FallbackStat, error)
}

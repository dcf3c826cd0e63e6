package service

import (
	"context"
	"time"

	"github.com/regional-portal/geo-backend/internal/domain"
	"github.com/regional-portal/geo-backend/internal/metrics"
	"github.com/regional-portal/geo-backend/internal/repository"

	"github.com/google/uuid"
)

type Services struct {
	Resolver    Resolver
	Preferences Preferences
	Tenants     Tenants
	Reports     Reports
}

type Deps struct {
	Repos     *repository.Repositories
	Publisher ResolutionPublisher
	Metrics   *metrics.Metrics
	// Clock defaults to time.Now.
	Clock func() time.Time
}

func NewServices(deps Deps) *Services {
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}

	publisher := deps.Publisher
	if publisher == nil {
		publisher = NopPublisher{}
	}

	return &Services{
		Resolver: newResolverService(
			deps.Repos.Regions,
			deps.Repos.Tenants,
			deps.Repos.GeoProcedures,
			publisher,
			deps.Metrics,
			clock,
		),
		Preferences: newPreferenceService(deps.Repos.TenantPreferences, deps.Metrics, clock),
		Tenants:     newTenantService(deps.Repos.Tenants),
		Reports:     newReportService(deps.Repos.ResolutionEvents, clock),
	}
}

// Resolver maps a lookup to a region and its preferred partner tenant.
type Resolver interface {
	Resolve(ctx context.Context, lookup domain.Lookup) (*domain.Resolution, error)
}

// Preferences persists the tenant choice of an identity.
type Preferences interface {
	Save(ctx context.Context, input SavePreferenceInput) error
	Get(ctx context.Context, identity domain.Identity) (*domain.TenantPreference, error)
}

type Tenants interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error)
}

type Reports interface {
	Fallbacks(ctx context.Context, window time.Duration, limit int) ([]domain.FallbackStat, error)
}

// ResolutionPublisher hands resolution events to the background recorder.
type ResolutionPublisher interface {
	PublishResolution(ctx context.Context, event *domain.ResolutionEvent) error
}

type NopPublisher struct{}

func (NopPublisher) PublishResolution(context.Context, *domain.ResolutionEvent) error { return nil }

type SavePreferenceInput struct {
	Identity          domain.Identity
	TenantIDPreferred *uuid.UUID
	RegionID          *uuid.UUID
	PostalCode        *string
}

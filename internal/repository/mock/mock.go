package mock_repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/regional-portal/geo-backend/internal/domain"
)

type Regions struct {
	mock.Mock
}

func (m *Regions) GetByStateAndCity(ctx context.Context, stateCode string, cityName string) (*domain.Region, error) {
	args := m.Called(ctx, stateCode, cityName)

	region, _ := args.Get(0).(*domain.Region)
	return region, args.Error(1)
}

type Tenants struct {
	mock.Mock
}

func (m *Tenants) GetPreferredByRegionID(ctx context.Context, regionID uuid.UUID) (*domain.Tenant, error) {
	args := m.Called(ctx, regionID)

	tenant, _ := args.Get(0).(*domain.Tenant)
	return tenant, args.Error(1)
}

func (m *Tenants) GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	args := m.Called(ctx, slug)

	tenant, _ := args.Get(0).(*domain.Tenant)
	return tenant, args.Error(1)
}

type GeoProcedures struct {
	mock.Mock
}

func (m *GeoProcedures) ResolveByPostalCode(ctx context.Context, code string) (*domain.Resolution, error) {
	args := m.Called(ctx, code)

	res, _ := args.Get(0).(*domain.Resolution)
	return res, args.Error(1)
}

func (m *GeoProcedures) ResolveByPoint(ctx context.Context, latitude, longitude float64) (*domain.Resolution, error) {
	args := m.Called(ctx, latitude, longitude)

	res, _ := args.Get(0).(*domain.Resolution)
	return res, args.Error(1)
}

type TenantPreferences struct {
	mock.Mock
}

func (m *TenantPreferences) Upsert(ctx context.Context, pref *domain.TenantPreference) error {
	args := m.Called(ctx, pref)

	return args.Error(0)
}

func (m *TenantPreferences) GetByIdentity(ctx context.Context, identity domain.Identity) (*domain.TenantPreference, error) {
	args := m.Called(ctx, identity)

	pref, _ := args.Get(0).(*domain.TenantPreference)
	return pref, args.Error(1)
}

type ResolutionEvents struct {
	mock.Mock
}

func (m *ResolutionEvents) Create(ctx context.Context, event *domain.ResolutionEvent) error {
	args := m.Called(ctx, event)

	return args.Error(0)
}

func (m *ResolutionEvents) FallbackStats(ctx context.Context, since time.Time, limit int) ([]domain.FallbackStat, error) {
	args := m.Called(ctx, since, limit)

	stats, _ := args.Get(0).([]domain.FallbackStat)
	return stats, args.Error(1)
}

package mock_service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/regional-portal/geo-backend/internal/domain"
	"github.com/regional-portal/geo-backend/internal/service"
)

type Resolver struct {
	mock.Mock
}

func (m *Resolver) Resolve(ctx context.Context, lookup domain.Lookup) (*domain.Resolution, error) {
	args := m.Called(ctx, lookup)

	res, _ := args.Get(0).(*domain.Resolution)
	return res, args.Error(1)
}

type Preferences struct {
	mock.Mock
}

func (m *Preferences) Save(ctx context.Context, input service.SavePreferenceInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}

func (m *Preferences) Get(ctx context.Context, identity domain.Identity) (*domain.TenantPreference, error) {
	args := m.Called(ctx, identity)

	pref, _ := args.Get(0).(*domain.TenantPreference)
	return pref, args.Error(1)
}

type Tenants struct {
	mock.Mock
}

func (m *Tenants) GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	args := m.Called(ctx, slug)

	tenant, _ := args.Get(0).(*domain.Tenant)
	return tenant, args.Error(1)
}

type Reports struct {
	mock.Mock
}

func (m *Reports) Fallbacks(ctx context.Context, window time.Duration, limit int) ([]domain.FallbackStat, error) {
	args := m.Called(ctx, window, limit)

	stats, _ := args.Get(0).([]domain.FallbackStat)
	return stats, args.Error(1)
}

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/regional-portal/geo-backend/internal/domain"
	"github.com/regional-portal/geo-backend/internal/repository"
)

type tenantService struct {
	tenantRepository repository.Tenants
}

func newTenantService(tenantRepository repository.Tenants) *tenantService {
	return &tenantService{
		tenantRepository: tenantRepository,
	}
}

func (s *tenantService) GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	tenant, err := s.tenantRepository.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, fmt.Errorf("get tenant by slug failed: %w", err)
	}
	return tenant, nil
}

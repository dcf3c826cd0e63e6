package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/regional-portal/geo-backend/internal/domain"
	"github.com/regional-portal/geo-backend/internal/metrics"
	"github.com/regional-portal/geo-backend/internal/repository"
)

type preferenceService struct {
	preferenceRepository repository.TenantPreferences
	metrics              *metrics.Metrics
	clock                func() time.Time
}

func newPreferenceService(
	preferenceRepository repository.TenantPreferences,
	metrics *metrics.Metrics,
	clock func() time.Time,
) *preferenceService {
	return &preferenceService{
		preferenceRepository: preferenceRepository,
		metrics:              metrics,
		clock:                clock,
	}
}

// Save upserts the preference of input.Identity and refreshes its last resolved time,
// even when the same tenant is chosen again.
func (s *preferenceService) Save(ctx context.Context, input SavePreferenceInput) error {
	if input.Identity == nil {
		return domain.ErrInvalidIdentity
	}

	pref := &domain.TenantPreference{
		Identity:          input.Identity,
		TenantIDPreferred: input.TenantIDPreferred,
		RegionID:          input.RegionID,
		LastResolvedAt:    s.clock().UTC().Truncate(time.Microsecond),
	}

	if input.PostalCode != nil {
		code, ok := domain.NormalizePostalCode(*input.PostalCode)
		if !ok {
			return fmt.Errorf("%w: cep must have 8 digits", domain.ErrMalformedLookup)
		}
		pref.PostalCode = &code
	}

	identityKind := string(input.Identity.Kind())
	if err := s.preferenceRepository.Upsert(ctx, pref); err != nil {
		s.metrics.ObservePreferenceWrite(identityKind, metrics.OutcomeError)
		return fmt.Errorf("upsert tenant preference failed: %w", err)
	}
	s.metrics.ObservePreferenceWrite(identityKind, metrics.OutcomeOK)

	return nil
}

func (s *preferenceService) Get(ctx context.Context, identity domain.Identity) (*domain.TenantPreference, error) {
	if identity == nil {
		return nil, domain.ErrInvalidIdentity
	}

	pref, err := s.preferenceRepository.GetByIdentity(ctx, identity)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrPreferenceNotFound
		}
		return nil, fmt.Errorf("get tenant preference failed: %w", err)
	}

	return pref, nil
}

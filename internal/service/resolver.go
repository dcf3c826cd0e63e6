package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/regional-portal/geo-backend/internal/domain"
	"github.com/regional-portal/geo-backend/internal/metrics"
	"github.com/regional-portal/geo-backend/internal/repository"
	"github.com/regional-portal/geo-backend/pkg/logger"
)

type resolverService struct {
	regionRepository repository.Regions
	tenantRepository repository.Tenants
	geoProcedures    repository.GeoProcedures
	publisher        ResolutionPublisher
	metrics          *metrics.Metrics
	clock            func() time.Time
}

func newResolverService(
	regionRepository repository.Regions,
	tenantRepository repository.Tenants,
	geoProcedures repository.GeoProcedures,
	publisher ResolutionPublisher,
	metrics *metrics.Metrics,
	clock func() time.Time,
) *resolverService {
	return &resolverService{
		regionRepository: regionRepository,
		tenantRepository: tenantRepository,
		geoProcedures:    geoProcedures,
		publisher:        publisher,
		metrics:          metrics,
		clock:            clock,
	}
}

// Resolve performs one store round trip per call. Store failures are returned as is, without retry.
func (s *resolverService) Resolve(ctx context.Context, lookup domain.Lookup) (*domain.Resolution, error) {
	if lookup == nil {
		return nil, domain.ErrMissingParams
	}

	kind := string(lookup.Kind())
	start := s.clock()

	res, err := s.resolve(ctx, lookup)
	took := s.clock().Sub(start)
	if err != nil {
		s.metrics.ObserveResolution(kind, metrics.OutcomeError, took)
		return nil, err
	}

	outcome := metrics.OutcomeTenant
	if res.Fallback {
		outcome = metrics.OutcomeFallback
	}
	s.metrics.ObserveResolution(kind, outcome, took)

	s.publish(ctx, lookup.Kind(), res)

	return res, nil
}

func (s *resolverService) resolve(ctx context.Context, lookup domain.Lookup) (*domain.Resolution, error) {
	switch l := lookup.(type) {
	case domain.PostalCodeLookup:
		res, err := s.geoProcedures.ResolveByPostalCode(ctx, l.Code)
		if err != nil {
			return nil, fmt.Errorf("resolve by postal code failed: %w", err)
		}
		return res, nil
	case domain.CoordinateLookup:
		res, err := s.geoProcedures.ResolveByPoint(ctx, l.Latitude, l.Longitude)
		if err != nil {
			return nil, fmt.Errorf("resolve by point failed: %w", err)
		}
		return res, nil
	case domain.CityLookup:
		return s.resolveCity(ctx, l)
	}

	return nil, fmt.Errorf("%w: unsupported lookup %T", domain.ErrMalformedLookup, lookup)
}

func (s *resolverService) resolveCity(ctx context.Context, lookup domain.CityLookup) (*domain.Resolution, error) {
	region, err := s.regionRepository.GetByStateAndCity(ctx, lookup.StateCode, lookup.CityName)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Unresolved(), nil
		}
		return nil, fmt.Errorf("get region by uf and city failed: %w", err)
	}

	tenant, err := s.tenantRepository.GetPreferredByRegionID(ctx, region.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewResolution(region, nil), nil
		}
		return nil, fmt.Errorf("get preferred tenant by region failed: %w", err)
	}

	return domain.NewResolution(region, tenant), nil
}

// publish is best effort: the caller already has its answer.
func (s *resolverService) publish(ctx context.Context, kind domain.LookupKind, res *domain.Resolution) {
	id, err := uuid.NewV7()
	if err != nil {
		logger.Warn("generate resolution event id failed", zap.Error(err))
		return
	}

	event := domain.NewResolutionEvent(id, kind, res, s.clock().UTC())
	if err := s.publisher.PublishResolution(ctx, event); err != nil {
		s.metrics.ObserveEventPublish(metrics.OutcomeError)
		logger.Warn("publish resolution event failed", zap.Error(err), zap.String("kind", string(kind)))
		return
	}
	s.metrics.ObserveEventPublish(metrics.OutcomeOK)
}

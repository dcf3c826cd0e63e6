package service

import (
	"context"
	"time"

	"github.com/regional-portal/geo-backend/internal/domain"
	"github.com/regional-portal/geo-backend/internal/repository"
)

const (
	defaultReportWindow = 7 * 24 * time.Hour
	maxReportWindow     = 90 * 24 * time.Hour
	defaultReportLimit  = 20
	maxReportLimit      = 100
)

type reportService struct {
	resolutionEventRepository repository.ResolutionEvents
	clock                     func() time.Time
}

func newReportService(resolutionEventRepository repository.ResolutionEvents, clock func() time.Time) *reportService {
	return &reportService{
		resolutionEventRepository: resolutionEventRepository,
		clock:                     clock,
	}
}

// Fallbacks lists the places that most often fell back to the national site within window.
func (s *reportService) Fallbacks(ctx context.Context, window time.Duration, limit int) ([]domain.FallbackStat, error) {
	if window <= 0 {
		window = defaultReportWindow
	}
	if window > maxReportWindow {
		window = maxReportWindow
	}
	if limit < 1 || limit > maxReportLimit {
		limit = defaultReportLimit
	}

	since := s.clock().UTC().Add(-window)

	return s.resolutionEventRepository.FallbackStats(ctx, since, limit)
}

package worker

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/regional-portal/geo-backend/internal/domain"
	"github.com/regional-portal/geo-backend/internal/repository"
	"github.com/regional-portal/geo-backend/pkg/logger"
)

type resolutionRecorder struct {
	resolutionEventRepository repository.ResolutionEvents
}

func newResolutionRecorder(resolutionEventRepository repository.ResolutionEvents) *resolutionRecorder {
	return &resolutionRecorder{
		resolutionEventRepository: resolutionEventRepository,
	}
}

// Record persists event. A replayed event that is already stored counts as recorded.
func (r *resolutionRecorder) Record(ctx context.Context, event *domain.ResolutionEvent) error {
	if err := r.resolutionEventRepository.Create(ctx, event); err != nil {
		if errors.Is(err, domain.ErrDuplicateEntry) {
			logger.Debug("resolution event already recorded", zap.String("id", event.ID.String()))
			return nil
		}
		return fmt.Errorf("create resolution event failed: %w", err)
	}

	return nil
}

package worker

import (
	"context"

	"github.com/regional-portal/geo-backend/internal/domain"
	"github.com/regional-portal/geo-backend/internal/repository"
)

type Workers struct {
	ResolutionRecorder ResolutionRecorder
}

type Deps struct {
	Repos *repository.Repositories
}

type ResolutionRecorder interface {
	Record(ctx context.Context, event *domain.ResolutionEvent) error
}

func NewWorkers(deps Deps) *Workers {
	return &Workers{
		ResolutionRecorder: newResolutionRecorder(deps.Repos.ResolutionEvents),
	}
}

package processor

import (
	"context"

	"github.com/hibiken/asynq"
	"github.com/pkg/errors"

	"github.com/regional-portal/geo-backend/internal/queue/task"
	"github.com/regional-portal/geo-backend/internal/worker"
)

type recordResolutionProcessor struct {
	workers *worker.Workers
}

func NewRecordResolutionProcessor(workers *worker.Workers) *recordResolutionProcessor {
	return &recordResolutionProcessor{
		workers: workers,
	}
}

func (p *recordResolutionProcessor) ProcessTask(ctx context.Context, t *asynq.Task) error {
	event, err := task.ParseRecordResolutionTask(t)
	if err != nil {
		// a payload that cannot be decoded will never succeed
		return errors.Wrap(asynq.SkipRetry, err.Error())
	}

	if err := p.workers.ResolutionRecorder.Record(ctx, event); err != nil {
		return errors.Wrap(err, "record resolution event failed")
	}

	return nil
}

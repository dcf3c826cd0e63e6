package task

import (
	"encoding/json"

	"github.com/hibiken/asynq"
	"github.com/pkg/errors"

	"github.com/regional-portal/geo-backend/internal/domain"
)

const (
	RecordResolutionTaskName  = "resolution:record"
	RecordResolutionQueueName = "resolutionEvents"
)

func NewRecordResolutionTask(event *domain.ResolutionEvent) (*asynq.Task, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "json data marshal failed")
	}

	return asynq.NewTask(
		RecordResolutionTaskName,
		payload,
		asynq.MaxRetry(5),
		asynq.Queue(RecordResolutionQueueName),
		// the event id doubles as task id so a double publish is rejected by asynq
		asynq.TaskID(event.ID.String()),
	), nil
}

func ParseRecordResolutionTask(t *asynq.Task) (*domain.ResolutionEvent, error) {
	var event domain.ResolutionEvent
	if err := json.Unmarshal(t.Payload(), &event); err != nil {
		return nil, errors.Wrap(err, "record resolution task json unmarshal failed")
	}

	return &event, nil
}

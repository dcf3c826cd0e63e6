package task

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regional-portal/geo-backend/internal/domain"
)

func TestRecordResolutionTask(t *testing.T) {
	region := &domain.Region{ID: uuid.New(), StateCode: "SP", CityName: "Campinas"}
	event := domain.NewResolutionEvent(uuid.New(), domain.LookupKindCity, domain.NewResolution(region, nil),
		time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC))

	tsk, err := NewRecordResolutionTask(event)
	require.NoError(t, err)
	assert.Equal(t, RecordResolutionTaskName, tsk.Type())

	got, err := ParseRecordResolutionTask(tsk)
	require.NoError(t, err)
	assert.Equal(t, event, got)
}

func TestParseRecordResolutionTask_BadPayload(t *testing.T) {
	_, err := ParseRecordResolutionTask(asynq.NewTask(RecordResolutionTaskName, []byte("{")))
	assert.Error(t, err)
}

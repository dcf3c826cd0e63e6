package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/regional-portal/geo-backend/internal/domain"
)

var testNow = time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

// stepClock returns now and then advances by step on every call.
func stepClock(now time.Time, step time.Duration) func() time.Time {
	return func() time.Time {
		current := now
		now = now.Add(step)
		return current
	}
}

type publisherMock struct {
	mock.Mock
}

func (m *publisherMock) PublishResolution(ctx context.Context, event *domain.ResolutionEvent) error {
	args := m.Called(ctx, event)

	return args.Error(0)
}

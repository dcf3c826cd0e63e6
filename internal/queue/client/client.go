package client

import (
	"context"
	"sync"

	"github.com/hibiken/asynq"
	"github.com/pkg/errors"

	"github.com/regional-portal/geo-backend/internal/domain"
	"github.com/regional-portal/geo-backend/internal/queue/task"
)

type ctxKey int

const (
	_ ctxKey = iota
	asyncQCtxKey
)

var (
	globalClient *asynq.Client
	globalMu     sync.RWMutex

	ErrNoClient = errors.New("asynq client is not configured")
)

// GetClient returns the Client stored in ctx, falling back to the global one set with SetClient.
// It's safe for concurrent use.
func GetClient(ctx context.Context) *asynq.Client {
	c := ctx.Value(asyncQCtxKey)
	if c != nil {
		client, ok := c.(*asynq.Client)
		if !ok {
			return nil
		}

		return client
	}

	globalMu.RLock()
	client := globalClient
	globalMu.RUnlock()

	return client
}

// WithClient stores client in ctx, overriding the global one.
func WithClient(ctx context.Context, client *asynq.Client) context.Context {
	return context.WithValue(ctx, asyncQCtxKey, client)
}

// SetClient replaces the global Client, and returns a
// function to restore the original value. It's safe for concurrent use.
func SetClient(client *asynq.Client) func() {
	globalMu.Lock()
	prev := globalClient
	globalClient = client
	globalMu.Unlock()
	return func() { SetClient(prev) }
}

// ResolutionPublisher enqueues resolution events on the asynq client found via GetClient.
type ResolutionPublisher struct{}

func NewResolutionPublisher() *ResolutionPublisher {
	return &ResolutionPublisher{}
}

func (p *ResolutionPublisher) PublishResolution(ctx context.Context, event *domain.ResolutionEvent) error {
	client := GetClient(ctx)
	if client == nil {
		return ErrNoClient
	}

	t, err := task.NewRecordResolutionTask(event)
	if err != nil {
		return errors.Wrap(err, "build record resolution task")
	}

	if _, err := client.EnqueueContext(ctx, t); err != nil {
		if errors.Is(err, asynq.ErrTaskIDConflict) {
			return nil
		}
		return errors.Wrap(err, "enqueue record resolution task")
	}

	return nil
}

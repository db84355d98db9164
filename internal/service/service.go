// Package service holds what the use case packages share: the commit step
// that persists the store and announces the change.
package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/Domenick1991/airtransport/internal/domain"
	"github.com/google/uuid"
)

type Persister interface {
	Persist(ctx context.Context)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type Committer struct {
	persister Persister
	producer  Producer
	topic     string
	timeout   time.Duration
	now       func() time.Time
}

// defaultPublishTimeout bounds one publish so a slow broker cannot stall the
// operator.
const defaultPublishTimeout = 3 * time.Second

type CommitterOption func(*Committer)

// WithProducer enables event publishing to topic.
func WithProducer(producer Producer, topic string) CommitterOption {
	return func(c *Committer) {
		c.producer = producer
		c.topic = topic
	}
}

func WithPublishTimeout(timeout time.Duration) CommitterOption {
	return func(c *Committer) {
		c.timeout = timeout
	}
}

func WithClock(now func() time.Time) CommitterOption {
	return func(c *Committer) {
		c.now = now
	}
}

func NewCommitter(persister Persister, opts ...CommitterOption) *Committer {
	c := &Committer{persister: persister, timeout: defaultPublishTimeout, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Commit saves the whole store, then publishes event. Publishing is best
// effort and never affects the operation result.
func (c *Committer) Commit(ctx context.Context, event domain.Event) domain.Event {
	if c.persister != nil {
		c.persister.Persist(ctx)
	}

	event.ID = uuid.NewString()
	event.OccurredAt = c.now()

	if c.producer == nil || c.topic == "" {
		return event
	}
	publishCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	if err := c.producer.Publish(publishCtx, c.topic, event.ID, event); err != nil {
		slog.Warn("failed to publish event", "type", event.Type, "id", event.ID, "error", err)
	}
	return event
}

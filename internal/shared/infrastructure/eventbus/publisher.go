package eventbus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/felixgeelhaar/fitsmart/internal/shared/domain"
	"github.com/google/uuid"
)

// Publisher sends serialized events to a broker.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, payload []byte) error
	Close() error
}

// Envelope is the wire format for every published domain event.
type Envelope struct {
	EventID       uuid.UUID       `json:"event_id"`
	RoutingKey    string          `json:"routing_key"`
	AggregateID   uuid.UUID       `json:"aggregate_id"`
	AggregateType string          `json:"aggregate_type"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Payload       json.RawMessage `json:"payload"`
}

// NewEnvelope wraps a domain event for publishing.
func NewEnvelope(event domain.DomainEvent) (Envelope, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return Envelope{}, fmt.Errorf("marshal %s: %w", event.RoutingKey(), err)
	}
	return Envelope{
		EventID:       event.EventID(),
		RoutingKey:    event.RoutingKey(),
		AggregateID:   event.AggregateID(),
		AggregateType: event.AggregateType(),
		OccurredAt:    event.OccurredAt(),
		Payload:       payload,
	}, nil
}

// PublishEvents publishes events after their aggregate has been committed.
// Failures are logged and joined; the write that produced the events stands.
func PublishEvents(ctx context.Context, pub Publisher, logger *slog.Logger, events []domain.DomainEvent) error {
	if pub == nil || len(events) == 0 {
		return nil
	}
	if logger == nil {
		logger = slog.Default()
	}

	var errs []error
	for _, event := range events {
		env, err := NewEnvelope(event)
		if err == nil {
			var body []byte
			if body, err = json.Marshal(env); err == nil {
				err = pub.Publish(ctx, env.RoutingKey, body)
			}
		}
		if err != nil {
			logger.WarnContext(ctx, "event not published",
				"routing_key", event.RoutingKey(),
				"event_id", event.EventID(),
				"error", err,
			)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

package eventbus

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
)

// Handler reacts to a published envelope.
type Handler func(ctx context.Context, env Envelope) error

// MatchAll subscribes a handler to every routing key.
const MatchAll = "#"

// InProcessBus delivers events synchronously to local subscribers. It is the
// publisher used when no broker is configured.
type InProcessBus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
	logger   *slog.Logger
}

// NewInProcessBus creates an empty bus.
func NewInProcessBus(logger *slog.Logger) *InProcessBus {
	if logger == nil {
		logger = slog.Default()
	}
	return &InProcessBus{
		handlers: make(map[string][]Handler),
		logger:   logger,
	}
}

// Subscribe registers h for routingKey, or for every key with MatchAll.
func (b *InProcessBus) Subscribe(routingKey string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[routingKey] = append(b.handlers[routingKey], h)
}

// Publish decodes the envelope and dispatches it. Handler errors are logged,
// never returned, so a failing subscriber cannot fail the command.
func (b *InProcessBus) Publish(ctx context.Context, routingKey string, payload []byte) error {
	var env Envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		b.logger.ErrorContext(ctx, "failed to unmarshal event payload", "routing_key", routingKey, "error", err)
		return nil
	}
	if env.RoutingKey == "" {
		env.RoutingKey = routingKey
	}

	b.mu.RLock()
	handlers := append(append([]Handler(nil), b.handlers[routingKey]...), b.handlers[MatchAll]...)
	b.mu.RUnlock()

	for _, h := range handlers {
		if err := h(ctx, env); err != nil {
			b.logger.ErrorContext(ctx, "event handler failed",
				"routing_key", routingKey,
				"event_id", env.EventID,
				"error", err,
			)
		}
	}
	return nil
}

func (b *InProcessBus) Close() error { return nil }

package kvstore

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/sony/gobreaker/v2"
)

// BreakerConfig configures the circuit breaker placed in front of a remote store.
type BreakerConfig struct {
	Name string
	// MaxRequests allowed through while half-open.
	MaxRequests uint32
	// Interval clears failure counts while closed. Zero never clears.
	Interval time.Duration
	// Timeout is how long the breaker stays open.
	Timeout time.Duration
	// FailureThreshold is the number of consecutive failures that opens it.
	FailureThreshold uint32
}

// DefaultBreakerConfig returns the settings used for Redis and PostgreSQL.
func DefaultBreakerConfig(name string) BreakerConfig {
	return BreakerConfig{
		Name:             name,
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          30 * time.Second,
		FailureThreshold: 5,
	}
}

// BreakerStore fails fast with ErrStoreUnavailable once the wrapped store has
// failed FailureThreshold times in a row. Missing keys are not failures.
type BreakerStore struct {
	inner   Store
	breaker *gobreaker.CircuitBreaker[any]
}

// NewBreakerStore wraps inner with a circuit breaker.
func NewBreakerStore(inner Store, cfg BreakerConfig, logger *slog.Logger) *BreakerStore {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.FailureThreshold == 0 {
		cfg.FailureThreshold = 5
	}

	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		IsSuccessful: func(err error) bool {
			return err == nil ||
				errors.Is(err, ErrKeyNotFound) ||
				errors.Is(err, ErrKeyInvalid)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("store circuit breaker state changed",
				"store", name,
				"from", from.String(),
				"to", to.String(),
			)
		},
	}

	return &BreakerStore{
		inner:   inner,
		breaker: gobreaker.NewCircuitBreaker[any](settings),
	}
}

// State reports the breaker state (closed, half-open, open).
func (s *BreakerStore) State() string {
	return s.breaker.State().String()
}

func (s *BreakerStore) execute(fn func() (any, error)) (any, error) {
	result, err := s.breaker.Execute(fn)
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, ErrStoreUnavailable
	}
	return result, err
}

func (s *BreakerStore) Get(ctx context.Context, key string) ([]byte, error) {
	result, err := s.execute(func() (any, error) {
		return s.inner.Get(ctx, key)
	})
	if err != nil {
		return nil, err
	}
	return result.([]byte), nil
}

func (s *BreakerStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.execute(func() (any, error) {
		return nil, s.inner.Set(ctx, key, value)
	})
	return err
}

func (s *BreakerStore) Delete(ctx context.Context, key string) error {
	_, err := s.execute(func() (any, error) {
		return nil, s.inner.Delete(ctx, key)
	})
	return err
}

var _ Store = (*BreakerStore)(nil)

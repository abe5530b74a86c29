package observability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthRegistry_Check(t *testing.T) {
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	t.Run("all healthy", func(t *testing.T) {
		r := NewHealthRegistry()
		r.Register("store", StoreHealthChecker(ok))
		r.Register("broker", BrokerHealthChecker(ok))

		results := r.Check(context.Background())
		require.Len(t, results, 2)
		assert.Equal(t, "broker", results[0].Component)
		assert.Equal(t, "store", results[1].Component)
		assert.Equal(t, HealthStatusHealthy, OverallStatus(results))
	})

	t.Run("broker down degrades", func(t *testing.T) {
		r := NewHealthRegistry()
		r.Register("store", StoreHealthChecker(ok))
		r.Register("broker", BrokerHealthChecker(down))

		results := r.Check(context.Background())
		assert.Equal(t, HealthStatusDegraded, OverallStatus(results))
		assert.Contains(t, results[0].Message, "connection refused")
	})

	t.Run("store down is unhealthy", func(t *testing.T) {
		r := NewHealthRegistry()
		r.Register("store", StoreHealthChecker(down))
		r.Register("broker", BrokerHealthChecker(down))

		assert.Equal(t, HealthStatusUnhealthy, OverallStatus(r.Check(context.Background())))
	})

	t.Run("no checks", func(t *testing.T) {
		assert.Equal(t, HealthStatusHealthy, OverallStatus(NewHealthRegistry().Check(context.Background())))
	})
}

package queries

import (
	"context"
	"testing"
	"time"

	"github.com/felixgeelhaar/fitsmart/internal/billing/domain"
	identityDomain "github.com/felixgeelhaar/fitsmart/internal/identity/domain"
	identityPersistence "github.com/felixgeelhaar/fitsmart/internal/identity/infrastructure/persistence"
	sharedDomain "github.com/felixgeelhaar/fitsmart/internal/shared/domain"
	"github.com/felixgeelhaar/fitsmart/internal/shared/infrastructure/kvstore"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSubscriptionStatusHandler(t *testing.T) {
	ctx := context.Background()
	registered := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	accounts := identityPersistence.NewKVAccountRepository(kvstore.NewMemoryStore(), nil)

	email, _ := identityDomain.NewEmail("ana@example.com")
	name, _ := identityDomain.NewName("Ana")
	account := identityDomain.NewAccount(email, name, registered)
	require.NoError(t, accounts.Save(ctx, account))

	tests := []struct {
		name     string
		now      time.Time
		days     int
		expired  bool
		canEnter bool
	}{
		{"fresh trial", registered, 3, false, false},
		{"one and a half days in", registered.Add(36 * time.Hour), 2, false, false},
		{"after expiry", registered.Add(73 * time.Hour), 0, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewGetSubscriptionStatusHandler(accounts, sharedDomain.FixedClock(tt.now))
			status, err := handler.Handle(ctx, account.ID())
			require.NoError(t, err)
			assert.Equal(t, domain.StatusTrial, status.Status)
			assert.Equal(t, tt.days, status.DaysRemaining)
			assert.Equal(t, tt.expired, status.TrialExpired)
			assert.Equal(t, tt.canEnter, status.CanAccessApp)
		})
	}

	_, err := NewGetSubscriptionStatusHandler(accounts, sharedDomain.FixedClock(registered)).Handle(ctx, uuid.New())
	assert.ErrorIs(t, err, identityDomain.ErrAccountNotFound)
}

func TestListOffersHandler(t *testing.T) {
	offers := NewListOffersHandler().Handle(context.Background())
	require.Len(t, offers, 2)
	assert.Equal(t, domain.PlanMonthly, offers[0].Plan)
	assert.Equal(t, "R$ 119.90", offers[1].Price())
}

package domain

import (
	"testing"
	"time"

	billingDomain "github.com/felixgeelhaar/fitsmart/internal/billing/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

func newAccount(t *testing.T) *Account {
	t.Helper()
	email, err := NewEmail("ana@example.com")
	require.NoError(t, err)
	name, err := NewName("Ana Souza")
	require.NoError(t, err)
	return NewAccount(email, name, now)
}

func TestNewAccount(t *testing.T) {
	a := newAccount(t)

	assert.False(t, a.HasCompletedQuiz())
	assert.Equal(t, billingDomain.StatusTrial, a.Subscription().Status)
	assert.Equal(t, 3, a.TrialDaysRemaining(now))
	assert.False(t, a.CanAccessApp(now))

	events := a.DomainEvents()
	require.Len(t, events, 1)
	assert.Equal(t, RoutingKeyAccountRegistered, events[0].RoutingKey())
	assert.Equal(t, a.ID(), events[0].AggregateID())
}

func TestAccount_MarkQuizComplete(t *testing.T) {
	a := newAccount(t)
	a.ClearDomainEvents()

	a.MarkQuizComplete(now)
	a.MarkQuizComplete(now)

	assert.True(t, a.HasCompletedQuiz())
	assert.True(t, a.CanAccessApp(now))
	require.Len(t, a.DomainEvents(), 1)
	assert.Equal(t, RoutingKeyQuizCompleted, a.DomainEvents()[0].RoutingKey())
}

func TestAccount_ActivateSubscription(t *testing.T) {
	a := newAccount(t)
	a.MarkQuizComplete(now)
	a.ClearDomainEvents()

	afterTrial := now.Add(96 * time.Hour)
	assert.True(t, a.IsTrialExpired(afterTrial))
	assert.False(t, a.CanAccessApp(afterTrial))

	require.NoError(t, a.ActivateSubscription(billingDomain.PlanMonthly, afterTrial))
	sub := a.Subscription()
	assert.Equal(t, billingDomain.StatusActive, sub.Status)
	assert.Nil(t, sub.TrialEndsAt)
	assert.Equal(t, 0, a.TrialDaysRemaining(afterTrial))
	assert.True(t, a.CanAccessApp(afterTrial))
	require.Len(t, a.DomainEvents(), 1)
	assert.Equal(t, billingDomain.RoutingKeySubscriptionActivated, a.DomainEvents()[0].RoutingKey())

	err := a.ActivateSubscription(billingDomain.PlanFree, afterTrial)
	assert.ErrorIs(t, err, billingDomain.ErrInvalidPlan)
}

func TestStageFor(t *testing.T) {
	assert.Equal(t, StageLogin, StageFor(nil, now))

	a := newAccount(t)
	assert.Equal(t, StageQuiz, StageFor(a, now))

	a.MarkQuizComplete(now)
	assert.Equal(t, StageApp, StageFor(a, now))
	assert.Equal(t, StageSubscription, StageFor(a, now.Add(73*time.Hour)))

	require.NoError(t, a.ActivateSubscription(billingDomain.PlanAnnual, now.Add(73*time.Hour)))
	assert.Equal(t, StageApp, StageFor(a, now.Add(73*time.Hour)))
}

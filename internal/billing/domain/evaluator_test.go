package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var registeredAt = time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC)

func TestNewTrial(t *testing.T) {
	sub := NewTrial(registeredAt)

	assert.Equal(t, PlanFree, sub.Plan)
	assert.Equal(t, StatusTrial, sub.Status)
	assert.Equal(t, registeredAt, sub.StartDate)
	assert.Equal(t, 72*time.Hour, sub.ExpiryDate.Sub(sub.StartDate))
	require.NotNil(t, sub.TrialEndsAt)
	assert.Equal(t, sub.ExpiryDate, *sub.TrialEndsAt)
}

func TestIsTrialExpired(t *testing.T) {
	sub := NewTrial(registeredAt)

	tests := []struct {
		name string
		sub  Subscription
		now  time.Time
		want bool
	}{
		{"one second before expiry", sub, sub.ExpiryDate.Add(-time.Second), false},
		{"exactly at expiry", sub, sub.ExpiryDate, false},
		{"one second after expiry", sub, sub.ExpiryDate.Add(time.Second), true},
		{"active is never trial expired", Subscription{Status: StatusActive, ExpiryDate: registeredAt}, registeredAt.AddDate(1, 0, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTrialExpired(tt.sub, tt.now))
		})
	}
}

func TestTrialDaysRemaining(t *testing.T) {
	sub := NewTrial(registeredAt)

	assert.Equal(t, 3, TrialDaysRemaining(sub, registeredAt))
	assert.Equal(t, 3, TrialDaysRemaining(sub, registeredAt.Add(time.Minute)), "partial days round up")
	assert.Equal(t, 2, TrialDaysRemaining(sub, registeredAt.Add(24*time.Hour)))
	assert.Equal(t, 1, TrialDaysRemaining(sub, sub.ExpiryDate.Add(-time.Second)))
	assert.Equal(t, 0, TrialDaysRemaining(sub, sub.ExpiryDate))
	assert.Equal(t, 0, TrialDaysRemaining(sub, sub.ExpiryDate.Add(48*time.Hour)), "floored at zero")

	active, err := Activate(PlanMonthly, registeredAt)
	require.NoError(t, err)
	assert.Equal(t, 0, TrialDaysRemaining(active, registeredAt))

	noEnd := sub
	noEnd.TrialEndsAt = nil
	assert.Equal(t, 0, TrialDaysRemaining(noEnd, registeredAt))
}

func TestTrialDaysRemaining_Monotonic(t *testing.T) {
	sub := NewTrial(registeredAt)
	prev := TrialDaysRemaining(sub, registeredAt)
	for step := time.Duration(0); step <= 4*24*time.Hour; step += 37 * time.Minute {
		got := TrialDaysRemaining(sub, registeredAt.Add(step))
		assert.GreaterOrEqual(t, got, 0)
		assert.LessOrEqual(t, got, 3)
		assert.LessOrEqual(t, got, prev)
		prev = got
	}
}

func TestCanAccessApp(t *testing.T) {
	trial := NewTrial(registeredAt)
	active, err := Activate(PlanAnnual, registeredAt)
	require.NoError(t, err)
	expired := Subscription{Plan: PlanFree, Status: StatusExpired, ExpiryDate: registeredAt}

	assert.False(t, CanAccessApp(false, trial, registeredAt), "quiz required even during trial")
	assert.False(t, CanAccessApp(false, active, registeredAt))
	assert.True(t, CanAccessApp(true, trial, registeredAt))
	assert.False(t, CanAccessApp(true, trial, trial.ExpiryDate.Add(time.Second)))
	assert.True(t, CanAccessApp(true, active, registeredAt.AddDate(2, 0, 0)))
	assert.False(t, CanAccessApp(true, expired, registeredAt))
}

func TestActivate(t *testing.T) {
	monthly, err := Activate(PlanMonthly, registeredAt)
	require.NoError(t, err)
	assert.Equal(t, StatusActive, monthly.Status)
	assert.Equal(t, registeredAt, monthly.StartDate)
	assert.Equal(t, time.Date(2026, 4, 10, 23, 59, 0, 0, time.UTC), monthly.ExpiryDate)
	assert.Nil(t, monthly.TrialEndsAt)

	annual, err := Activate(PlanAnnual, registeredAt)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2027, 3, 10, 23, 59, 0, 0, time.UTC), annual.ExpiryDate)

	_, err = Activate(PlanFree, registeredAt)
	assert.ErrorIs(t, err, ErrInvalidPlan)
}

func TestParsePlan(t *testing.T) {
	p, err := ParsePlan("annual")
	require.NoError(t, err)
	assert.Equal(t, PlanAnnual, p)
	assert.True(t, p.IsPaid())
	assert.False(t, PlanFree.IsPaid())

	_, err = ParsePlan("weekly")
	assert.ErrorIs(t, err, ErrInvalidPlan)

	assert.ErrorIs(t, Subscription{Plan: PlanFree, Status: "paused"}.Validate(), ErrInvalidStatus)
	assert.NoError(t, NewTrial(registeredAt).Validate())
}

package domain

import (
	"errors"
	"fmt"
	"time"
)

// Plan is a subscription tier.
type Plan string

const (
	PlanFree    Plan = "free"
	PlanMonthly Plan = "monthly"
	PlanAnnual  Plan = "annual"
)

// Status is the stored subscription state.
type Status string

const (
	StatusTrial  Status = "trial"
	StatusActive Status = "active"
	// StatusExpired is accepted when reading documents but never written;
	// an elapsed trial is detected by IsTrialExpired instead.
	StatusExpired Status = "expired"
)

// TrialDuration is the free access window granted on registration.
const TrialDuration = 3 * 24 * time.Hour

var (
	ErrInvalidPlan   = errors.New("invalid subscription plan")
	ErrInvalidStatus = errors.New("invalid subscription status")
)

// ParsePlan converts user input into a Plan.
func ParsePlan(s string) (Plan, error) {
	p := Plan(s)
	if !p.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPlan, s)
	}
	return p, nil
}

func (p Plan) IsValid() bool {
	switch p {
	case PlanFree, PlanMonthly, PlanAnnual:
		return true
	}
	return false
}

// IsPaid reports whether the plan can be purchased.
func (p Plan) IsPaid() bool {
	return p == PlanMonthly || p == PlanAnnual
}

func (s Status) IsValid() bool {
	switch s {
	case StatusTrial, StatusActive, StatusExpired:
		return true
	}
	return false
}

// Subscription is embedded in every account.
type Subscription struct {
	Plan        Plan       `json:"plan"`
	Status      Status     `json:"status"`
	StartDate   time.Time  `json:"start_date"`
	ExpiryDate  time.Time  `json:"expiry_date"`
	TrialEndsAt *time.Time `json:"trial_ends_at,omitempty"`
}

// NewTrial starts the free trial at now.
func NewTrial(now time.Time) Subscription {
	now = now.UTC()
	end := now.Add(TrialDuration)
	return Subscription{
		Plan:        PlanFree,
		Status:      StatusTrial,
		StartDate:   now,
		ExpiryDate:  end,
		TrialEndsAt: &end,
	}
}

// Activate returns an active subscription for a paid plan starting at now.
// Monthly runs one calendar month, annual one calendar year. The trial end is
// cleared.
func Activate(plan Plan, now time.Time) (Subscription, error) {
	now = now.UTC()

	var expiry time.Time
	switch plan {
	case PlanMonthly:
		expiry = now.AddDate(0, 1, 0)
	case PlanAnnual:
		expiry = now.AddDate(1, 0, 0)
	default:
		return Subscription{}, fmt.Errorf("%w: %q cannot be purchased", ErrInvalidPlan, plan)
	}

	return Subscription{
		Plan:       plan,
		Status:     StatusActive,
		StartDate:  now,
		ExpiryDate: expiry,
	}, nil
}

// Validate checks a subscription read from storage.
func (s Subscription) Validate() error {
	if !s.Plan.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPlan, s.Plan)
	}
	if !s.Status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, s.Status)
	}
	return nil
}

package domain

import (
	"errors"
	"time"

	billingDomain "github.com/felixgeelhaar/fitsmart/internal/billing/domain"
	sharedDomain "github.com/felixgeelhaar/fitsmart/internal/shared/domain"
	"github.com/google/uuid"
)

var (
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountNotFound    = errors.New("account not found")
	ErrNoSession          = errors.New("no active session")
)

// Account is a registered user together with the subscription that gates
// access to tracking.
type Account struct {
	sharedDomain.BaseAggregateRoot
	email         Email
	name          Name
	quizCompleted bool
	subscription  billingDomain.Subscription
}

// NewAccount registers an account on a fresh three-day trial.
func NewAccount(email Email, name Name, now time.Time) *Account {
	a := &Account{
		BaseAggregateRoot: sharedDomain.NewBaseAggregateRoot(now),
		email:             email,
		name:              name,
		subscription:      billingDomain.NewTrial(now),
	}
	a.AddDomainEvent(NewAccountRegistered(a.ID(), email, a.subscription, now))
	return a
}

// RehydrateAccount recreates an account from persisted state.
func RehydrateAccount(
	id uuid.UUID,
	email Email,
	name Name,
	createdAt, updatedAt time.Time,
	version int,
	quizCompleted bool,
	subscription billingDomain.Subscription,
) *Account {
	return &Account{
		BaseAggregateRoot: sharedDomain.RehydrateBaseAggregateRoot(id, createdAt, updatedAt, version),
		email:             email,
		name:              name,
		quizCompleted:     quizCompleted,
		subscription:      subscription,
	}
}

func (a *Account) Email() Email                             { return a.email }
func (a *Account) Name() Name                               { return a.name }
func (a *Account) HasCompletedQuiz() bool                   { return a.quizCompleted }
func (a *Account) Subscription() billingDomain.Subscription { return a.subscription }

// MarkQuizComplete records that onboarding finished. Repeated calls are no-ops.
func (a *Account) MarkQuizComplete(now time.Time) {
	if a.quizCompleted {
		return
	}
	a.quizCompleted = true
	a.Touch(now)
	a.AddDomainEvent(NewQuizCompleted(a.ID(), now))
}

// ActivateSubscription replaces the current subscription with a paid plan.
func (a *Account) ActivateSubscription(plan billingDomain.Plan, now time.Time) error {
	sub, err := billingDomain.Activate(plan, now)
	if err != nil {
		return err
	}
	a.subscription = sub
	a.Touch(now)
	a.AddDomainEvent(billingDomain.NewSubscriptionActivated(a.ID(), sub, now))
	return nil
}

// IsTrialExpired reports whether the trial has lapsed at now.
func (a *Account) IsTrialExpired(now time.Time) bool {
	return billingDomain.IsTrialExpired(a.subscription, now)
}

// TrialDaysRemaining returns the whole days left in the trial.
func (a *Account) TrialDaysRemaining(now time.Time) int {
	return billingDomain.TrialDaysRemaining(a.subscription, now)
}

// CanAccessApp reports whether tracking features are unlocked at now.
func (a *Account) CanAccessApp(now time.Time) bool {
	return billingDomain.CanAccessApp(a.quizCompleted, a.subscription, now)
}

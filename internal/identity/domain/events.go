package domain

import (
	"time"

	billingDomain "github.com/felixgeelhaar/fitsmart/internal/billing/domain"
	sharedDomain "github.com/felixgeelhaar/fitsmart/internal/shared/domain"
	"github.com/google/uuid"
)

const (
	AggregateType = "Account"

	RoutingKeyAccountRegistered = "identity.account.registered"
	RoutingKeyQuizCompleted     = "identity.account.quiz_completed"
)

// AccountRegistered is emitted when a new account is created.
type AccountRegistered struct {
	sharedDomain.BaseEvent
	AccountID   uuid.UUID `json:"account_id"`
	Email       string    `json:"email"`
	TrialEndsAt time.Time `json:"trial_ends_at"`
}

func NewAccountRegistered(id uuid.UUID, email Email, sub billingDomain.Subscription, now time.Time) AccountRegistered {
	return AccountRegistered{
		BaseEvent:   sharedDomain.NewBaseEvent(id, AggregateType, RoutingKeyAccountRegistered, now),
		AccountID:   id,
		Email:       email.String(),
		TrialEndsAt: sub.ExpiryDate,
	}
}

// QuizCompleted is emitted the first time onboarding finishes.
type QuizCompleted struct {
	sharedDomain.BaseEvent
	AccountID uuid.UUID `json:"account_id"`
}

func NewQuizCompleted(id uuid.UUID, now time.Time) QuizCompleted {
	return QuizCompleted{
		BaseEvent: sharedDomain.NewBaseEvent(id, AggregateType, RoutingKeyQuizCompleted, now),
		AccountID: id,
	}
}

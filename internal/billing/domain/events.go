package domain

import (
	"time"

	sharedDomain "github.com/felixgeelhaar/fitsmart/internal/shared/domain"
	"github.com/google/uuid"
)

const (
	// AggregateType is the aggregate that owns the subscription.
	AggregateType = "Account"

	RoutingKeySubscriptionActivated = "billing.subscription.activated"
)

// SubscriptionActivated is emitted when a paid plan replaces the trial.
type SubscriptionActivated struct {
	sharedDomain.BaseEvent
	AccountID  uuid.UUID `json:"account_id"`
	Plan       Plan      `json:"plan"`
	StartDate  time.Time `json:"start_date"`
	ExpiryDate time.Time `json:"expiry_date"`
}

// NewSubscriptionActivated creates the event for accountID.
func NewSubscriptionActivated(accountID uuid.UUID, sub Subscription, now time.Time) SubscriptionActivated {
	return SubscriptionActivated{
		BaseEvent:  sharedDomain.NewBaseEvent(accountID, AggregateType, RoutingKeySubscriptionActivated, now),
		AccountID:  accountID,
		Plan:       sub.Plan,
		StartDate:  sub.StartDate,
		ExpiryDate: sub.ExpiryDate,
	}
}

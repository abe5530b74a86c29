package queries

import (
	"context"
	"fmt"
	"time"

	"github.com/felixgeelhaar/fitsmart/internal/billing/domain"
	identityDomain "github.com/felixgeelhaar/fitsmart/internal/identity/domain"
	sharedDomain "github.com/felixgeelhaar/fitsmart/internal/shared/domain"
	"github.com/google/uuid"
)

// SubscriptionStatusDTO is the evaluated subscription state of an account.
type SubscriptionStatusDTO struct {
	Plan          domain.Plan
	Status        domain.Status
	StartDate     time.Time
	ExpiryDate    time.Time
	TrialEndsAt   *time.Time
	TrialExpired  bool
	DaysRemaining int
	QuizCompleted bool
	CanAccessApp  bool
}

// GetSubscriptionStatusHandler evaluates an account's subscription at the
// current time.
type GetSubscriptionStatusHandler struct {
	accounts identityDomain.AccountRepository
	clock    sharedDomain.Clock
}

// NewGetSubscriptionStatusHandler creates a new GetSubscriptionStatusHandler.
func NewGetSubscriptionStatusHandler(accounts identityDomain.AccountRepository, clock sharedDomain.Clock) *GetSubscriptionStatusHandler {
	return &GetSubscriptionStatusHandler{accounts: accounts, clock: clock}
}

func (h *GetSubscriptionStatusHandler) Handle(ctx context.Context, accountID uuid.UUID) (*SubscriptionStatusDTO, error) {
	account, err := h.accounts.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, fmt.Errorf("%w: %s", identityDomain.ErrAccountNotFound, accountID)
	}
	return StatusOf(account, h.clock.Now()), nil
}

// StatusOf evaluates an already loaded account.
func StatusOf(account *identityDomain.Account, now time.Time) *SubscriptionStatusDTO {
	sub := account.Subscription()
	return &SubscriptionStatusDTO{
		Plan:          sub.Plan,
		Status:        sub.Status,
		StartDate:     sub.StartDate,
		ExpiryDate:    sub.ExpiryDate,
		TrialEndsAt:   sub.TrialEndsAt,
		TrialExpired:  account.IsTrialExpired(now),
		DaysRemaining: account.TrialDaysRemaining(now),
		QuizCompleted: account.HasCompletedQuiz(),
		CanAccessApp:  account.CanAccessApp(now),
	}
}

// ListOffersHandler returns the purchasable plans.
type ListOffersHandler struct{}

// NewListOffersHandler creates a new ListOffersHandler.
func NewListOffersHandler() *ListOffersHandler { return &ListOffersHandler{} }

func (h *ListOffersHandler) Handle(context.Context) []domain.Offer {
	return domain.Offers()
}

package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/felixgeelhaar/fitsmart/internal/billing/domain"
	identityDomain "github.com/felixgeelhaar/fitsmart/internal/identity/domain"
	sharedApplication "github.com/felixgeelhaar/fitsmart/internal/shared/application"
	sharedDomain "github.com/felixgeelhaar/fitsmart/internal/shared/domain"
	"github.com/felixgeelhaar/fitsmart/internal/shared/infrastructure/eventbus"
	"github.com/google/uuid"
)

// ActivateSubscriptionCommand contains the plan choice and the mock card details.
type ActivateSubscriptionCommand struct {
	AccountID uuid.UUID
	Plan      string
	Payment   domain.PaymentInfo
}

// ActivateSubscriptionResult describes the new subscription.
type ActivateSubscriptionResult struct {
	Subscription domain.Subscription
	Offer        domain.Offer
	MaskedCard   string
}

// ActivateSubscriptionHandler handles the ActivateSubscriptionCommand.
type ActivateSubscriptionHandler struct {
	accounts  identityDomain.AccountRepository
	payments  domain.PaymentRepository
	uow       sharedApplication.UnitOfWork
	publisher eventbus.Publisher
	clock     sharedDomain.Clock
	logger    *slog.Logger
}

// NewActivateSubscriptionHandler creates a new ActivateSubscriptionHandler.
func NewActivateSubscriptionHandler(
	accounts identityDomain.AccountRepository,
	payments domain.PaymentRepository,
	uow sharedApplication.UnitOfWork,
	publisher eventbus.Publisher,
	clock sharedDomain.Clock,
	logger *slog.Logger,
) *ActivateSubscriptionHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ActivateSubscriptionHandler{
		accounts:  accounts,
		payments:  payments,
		uow:       uow,
		publisher: publisher,
		clock:     clock,
		logger:    logger,
	}
}

// Handle validates the card details, activates the plan and records the
// payment in the same unit of work. No gateway is contacted.
func (h *ActivateSubscriptionHandler) Handle(ctx context.Context, cmd ActivateSubscriptionCommand) (*ActivateSubscriptionResult, error) {
	plan, err := domain.ParsePlan(cmd.Plan)
	if err != nil {
		return nil, err
	}
	offer, ok := domain.OfferFor(plan)
	if !ok {
		return nil, fmt.Errorf("%w: %q cannot be purchased", domain.ErrInvalidPlan, plan)
	}

	info := cmd.Payment.Normalize()
	if err := info.Validate(); err != nil {
		return nil, err
	}

	now := h.clock.Now()
	var account *identityDomain.Account
	err = sharedApplication.WithUnitOfWork(ctx, h.uow, func(txCtx context.Context) error {
		account, err = h.accounts.FindByID(txCtx, cmd.AccountID)
		if err != nil {
			return err
		}
		if account == nil {
			return fmt.Errorf("%w: %s", identityDomain.ErrAccountNotFound, cmd.AccountID)
		}

		if err := account.ActivateSubscription(plan, now); err != nil {
			return err
		}
		if err := h.accounts.Save(txCtx, account); err != nil {
			return err
		}
		return h.payments.Save(txCtx, domain.PaymentRecord{
			AccountID:  account.ID(),
			Plan:       plan,
			Info:       info,
			RecordedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "subscription activated",
		"account_id", account.ID(),
		"plan", plan,
		"expires_at", account.Subscription().ExpiryDate,
	)
	_ = eventbus.PublishEvents(ctx, h.publisher, h.logger, account.DomainEvents())
	account.ClearDomainEvents()

	return &ActivateSubscriptionResult{
		Subscription: account.Subscription(),
		Offer:        offer,
		MaskedCard:   info.MaskedCard(),
	}, nil
}

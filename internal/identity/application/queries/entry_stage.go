package queries

import (
	"context"
	"errors"

	"github.com/felixgeelhaar/fitsmart/internal/identity/domain"
	sharedDomain "github.com/felixgeelhaar/fitsmart/internal/shared/domain"
)

// EntryResult tells the caller where the signed-in account belongs.
type EntryResult struct {
	Stage   domain.Stage
	Account *domain.Account
}

// EntryStageHandler resolves the session and routes it to a stage.
type EntryStageHandler struct {
	current *CurrentAccountHandler
	clock   sharedDomain.Clock
}

// NewEntryStageHandler creates a new EntryStageHandler.
func NewEntryStageHandler(current *CurrentAccountHandler, clock sharedDomain.Clock) *EntryStageHandler {
	return &EntryStageHandler{current: current, clock: clock}
}

// Handle returns StageLogin with a nil account when there is no session or
// the session points at a missing account.
func (h *EntryStageHandler) Handle(ctx context.Context) (*EntryResult, error) {
	account, err := h.current.Handle(ctx)
	if errors.Is(err, domain.ErrNoSession) || errors.Is(err, domain.ErrAccountNotFound) {
		return &EntryResult{Stage: domain.StageLogin}, nil
	}
	if err != nil {
		return nil, err
	}
	return &EntryResult{
		Stage:   domain.StageFor(account, h.clock.Now()),
		Account: account,
	}, nil
}

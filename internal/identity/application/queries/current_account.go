package queries

import (
	"context"
	"fmt"

	"github.com/felixgeelhaar/fitsmart/internal/identity/domain"
)

// CurrentAccountHandler resolves the session pointer to an account.
type CurrentAccountHandler struct {
	accounts domain.AccountRepository
	sessions domain.SessionStore
}

// NewCurrentAccountHandler creates a new CurrentAccountHandler.
func NewCurrentAccountHandler(accounts domain.AccountRepository, sessions domain.SessionStore) *CurrentAccountHandler {
	return &CurrentAccountHandler{accounts: accounts, sessions: sessions}
}

// Handle returns domain.ErrNoSession when nobody is signed in and
// domain.ErrAccountNotFound when the session points at a missing account.
func (h *CurrentAccountHandler) Handle(ctx context.Context) (*domain.Account, error) {
	id, ok, err := h.sessions.Current(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNoSession
	}

	account, err := h.accounts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrAccountNotFound, id)
	}
	return account, nil
}

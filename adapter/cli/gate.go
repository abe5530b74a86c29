package cli

import (
	"context"
	"errors"
	"fmt"

	identityDomain "github.com/felixgeelhaar/fitsmart/internal/identity/domain"
	"github.com/felixgeelhaar/fitsmart/pkg/observability"
	"github.com/google/uuid"
)

// ErrNotInitialized is returned when a command runs without a wired app.
var ErrNotInitialized = errors.New("fitsmart is not initialized; check FITSMART_STORE and the logs above")

// StageError reports that the signed-in account cannot use the app yet.
type StageError struct {
	Stage identityDomain.Stage
}

func (e *StageError) Error() string {
	switch e.Stage {
	case identityDomain.StageLogin:
		return "not signed in: run `fitsmart account login`"
	case identityDomain.StageQuiz:
		return "finish onboarding first: run `fitsmart quiz`"
	case identityDomain.StageSubscription:
		return "your free trial has ended: run `fitsmart billing subscribe`"
	default:
		return fmt.Sprintf("app unavailable (stage %s)", e.Stage)
	}
}

// EnterApp routes the current session like opening the app does. Only an
// account at the app stage gets through; its daily record is rolled over to
// today and the returned context carries the account id.
func (a *App) EnterApp(ctx context.Context) (context.Context, uuid.UUID, error) {
	if a == nil || a.EntryStageHandler == nil || a.OpenDayHandler == nil {
		return ctx, uuid.Nil, ErrNotInitialized
	}

	entry, err := a.EntryStageHandler.Handle(ctx)
	if err != nil {
		return ctx, uuid.Nil, err
	}
	if entry.Stage != identityDomain.StageApp {
		return ctx, uuid.Nil, &StageError{Stage: entry.Stage}
	}

	accountID := entry.Account.ID()
	ctx = observability.WithAccountID(ctx, accountID)
	if _, err := a.OpenDayHandler.Handle(ctx, accountID); err != nil {
		return ctx, uuid.Nil, fmt.Errorf("failed to open today's record: %w", err)
	}
	return ctx, accountID, nil
}

// RequireSession resolves the signed-in account without the onboarding and
// subscription checks.
func (a *App) RequireSession(ctx context.Context) (context.Context, *identityDomain.Account, error) {
	if a == nil || a.CurrentAccountHandler == nil {
		return ctx, nil, ErrNotInitialized
	}
	account, err := a.CurrentAccountHandler.Handle(ctx)
	if errors.Is(err, identityDomain.ErrNoSession) || errors.Is(err, identityDomain.ErrAccountNotFound) {
		return ctx, nil, &StageError{Stage: identityDomain.StageLogin}
	}
	if err != nil {
		return ctx, nil, err
	}
	return observability.WithAccountID(ctx, account.ID()), account, nil
}

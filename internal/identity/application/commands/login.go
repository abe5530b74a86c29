package commands

import (
	"context"
	"log/slog"

	"github.com/felixgeelhaar/fitsmart/internal/identity/domain"
)

// LoginCommand contains the credentials to sign in with.
type LoginCommand struct {
	Email    string
	Password string
}

// LoginHandler handles the LoginCommand.
type LoginHandler struct {
	accounts    domain.AccountRepository
	credentials domain.CredentialRepository
	sessions    domain.SessionStore
	hasher      domain.PasswordHasher
	logger      *slog.Logger
}

// NewLoginHandler creates a new LoginHandler.
func NewLoginHandler(
	accounts domain.AccountRepository,
	credentials domain.CredentialRepository,
	sessions domain.SessionStore,
	hasher domain.PasswordHasher,
	logger *slog.Logger,
) *LoginHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoginHandler{
		accounts:    accounts,
		credentials: credentials,
		sessions:    sessions,
		hasher:      hasher,
		logger:      logger,
	}
}

// Handle verifies the credentials and starts a session. An unknown email and
// a wrong password both yield domain.ErrInvalidCredentials.
func (h *LoginHandler) Handle(ctx context.Context, cmd LoginCommand) (*domain.Account, error) {
	email, err := domain.NewEmail(cmd.Email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	account, err := h.accounts.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := h.credentials.Find(ctx, account.ID())
	if err != nil {
		return nil, err
	}
	if hash == "" || !h.hasher.Check(cmd.Password, hash) {
		h.logger.InfoContext(ctx, "login rejected", "account_id", account.ID())
		return nil, domain.ErrInvalidCredentials
	}

	if err := h.sessions.Start(ctx, account.ID()); err != nil {
		return nil, err
	}
	h.logger.InfoContext(ctx, "session started", "account_id", account.ID())
	return account, nil
}

package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/felixgeelhaar/fitsmart/internal/identity/domain"
	sharedApplication "github.com/felixgeelhaar/fitsmart/internal/shared/application"
	sharedDomain "github.com/felixgeelhaar/fitsmart/internal/shared/domain"
	"github.com/felixgeelhaar/fitsmart/internal/shared/infrastructure/eventbus"
)

// RegisterCommand contains the data needed to create an account.
type RegisterCommand struct {
	Email    string
	Password string
	Name     string
}

// RegisterHandler handles the RegisterCommand.
type RegisterHandler struct {
	accounts    domain.AccountRepository
	credentials domain.CredentialRepository
	hasher      domain.PasswordHasher
	uow         sharedApplication.UnitOfWork
	publisher   eventbus.Publisher
	clock       sharedDomain.Clock
	logger      *slog.Logger
}

// NewRegisterHandler creates a new RegisterHandler.
func NewRegisterHandler(
	accounts domain.AccountRepository,
	credentials domain.CredentialRepository,
	hasher domain.PasswordHasher,
	uow sharedApplication.UnitOfWork,
	publisher eventbus.Publisher,
	clock sharedDomain.Clock,
	logger *slog.Logger,
) *RegisterHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &RegisterHandler{
		accounts:    accounts,
		credentials: credentials,
		hasher:      hasher,
		uow:         uow,
		publisher:   publisher,
		clock:       clock,
		logger:      logger,
	}
}

// Handle creates the account, its credential and its index entry in one unit
// of work. It does not sign the account in.
func (h *RegisterHandler) Handle(ctx context.Context, cmd RegisterCommand) (*domain.Account, error) {
	email, err := domain.NewEmail(cmd.Email)
	if err != nil {
		return nil, err
	}
	name, err := domain.NewName(cmd.Name)
	if err != nil {
		return nil, err
	}
	if err := domain.CheckPassword(cmd.Password); err != nil {
		return nil, err
	}
	hash, err := h.hasher.Hash(cmd.Password)
	if err != nil {
		return nil, err
	}

	var account *domain.Account
	err = sharedApplication.WithUnitOfWork(ctx, h.uow, func(txCtx context.Context) error {
		existing, err := h.accounts.FindByEmail(txCtx, email)
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateEmail, email)
		}

		account = domain.NewAccount(email, name, h.clock.Now())
		if err := h.credentials.Save(txCtx, account.ID(), hash); err != nil {
			return err
		}
		return h.accounts.Save(txCtx, account)
	})
	if err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "account registered", "account_id", account.ID())
	_ = eventbus.PublishEvents(ctx, h.publisher, h.logger, account.DomainEvents())
	account.ClearDomainEvents()
	return account, nil
}

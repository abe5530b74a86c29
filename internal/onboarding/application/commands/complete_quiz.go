package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	identityDomain "github.com/felixgeelhaar/fitsmart/internal/identity/domain"
	"github.com/felixgeelhaar/fitsmart/internal/onboarding/domain"
	sharedApplication "github.com/felixgeelhaar/fitsmart/internal/shared/application"
	sharedDomain "github.com/felixgeelhaar/fitsmart/internal/shared/domain"
	"github.com/felixgeelhaar/fitsmart/internal/shared/infrastructure/eventbus"
	trackingDomain "github.com/felixgeelhaar/fitsmart/internal/tracking/domain"
	"github.com/google/uuid"
)

// ErrQuizAlreadyCompleted is returned when an account retakes the quiz.
var ErrQuizAlreadyCompleted = errors.New("quiz already completed")

// CompleteQuizCommand carries the raw quiz answers for an account.
type CompleteQuizCommand struct {
	AccountID uuid.UUID
	Answers   domain.QuizAnswers
}

// CompleteQuizResult is the outcome of a completed quiz.
type CompleteQuizResult struct {
	Profile domain.Profile
	Record  *trackingDomain.DailyRecord
}

// CompleteQuizHandler handles the CompleteQuizCommand.
type CompleteQuizHandler struct {
	accounts  identityDomain.AccountRepository
	records   trackingDomain.Repository
	uow       sharedApplication.UnitOfWork
	publisher eventbus.Publisher
	clock     sharedDomain.Clock
	logger    *slog.Logger
}

// NewCompleteQuizHandler creates a new CompleteQuizHandler.
func NewCompleteQuizHandler(
	accounts identityDomain.AccountRepository,
	records trackingDomain.Repository,
	uow sharedApplication.UnitOfWork,
	publisher eventbus.Publisher,
	clock sharedDomain.Clock,
	logger *slog.Logger,
) *CompleteQuizHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CompleteQuizHandler{
		accounts:  accounts,
		records:   records,
		uow:       uow,
		publisher: publisher,
		clock:     clock,
		logger:    logger,
	}
}

// Handle builds the profile, marks the quiz complete and initializes the
// account's daily record in one unit of work.
func (h *CompleteQuizHandler) Handle(ctx context.Context, cmd CompleteQuizCommand) (*CompleteQuizResult, error) {
	profile, err := domain.ParseQuizAnswers(cmd.Answers)
	if err != nil {
		return nil, err
	}
	now := h.clock.Now()

	var (
		account *identityDomain.Account
		record  *trackingDomain.DailyRecord
	)
	err = sharedApplication.WithUnitOfWork(ctx, h.uow, func(txCtx context.Context) error {
		var err error
		account, err = h.accounts.FindByID(txCtx, cmd.AccountID)
		if err != nil {
			return err
		}
		if account == nil {
			return fmt.Errorf("%w: %s", identityDomain.ErrAccountNotFound, cmd.AccountID)
		}
		if account.HasCompletedQuiz() {
			return ErrQuizAlreadyCompleted
		}
		if profile.Name == "" {
			profile.Name = account.Name().FirstName()
		}

		account.MarkQuizComplete(now)
		if err := h.accounts.Save(txCtx, account); err != nil {
			return err
		}

		// A record left over from an earlier attempt is replaced.
		existing, err := h.records.Load(txCtx, cmd.AccountID)
		if err != nil {
			return err
		}
		record = trackingDomain.NewDailyRecord(cmd.AccountID, &profile, now)
		if existing != nil {
			record.Version = existing.Version
		}
		return h.records.Save(txCtx, record)
	})
	if err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "quiz completed",
		"account_id", cmd.AccountID,
		"daily_calories", profile.DailyCalories,
	)
	_ = eventbus.PublishEvents(ctx, h.publisher, h.logger, account.DomainEvents())
	account.ClearDomainEvents()
	return &CompleteQuizResult{Profile: profile, Record: record}, nil
}

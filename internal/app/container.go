package app

import (
	"context"
	"fmt"
	"log/slog"

	billingCommands "github.com/felixgeelhaar/fitsmart/internal/billing/application/commands"
	billingQueries "github.com/felixgeelhaar/fitsmart/internal/billing/application/queries"
	billingPersistence "github.com/felixgeelhaar/fitsmart/internal/billing/infrastructure/persistence"
	identityCommands "github.com/felixgeelhaar/fitsmart/internal/identity/application/commands"
	identityQueries "github.com/felixgeelhaar/fitsmart/internal/identity/application/queries"
	identityDomain "github.com/felixgeelhaar/fitsmart/internal/identity/domain"
	"github.com/felixgeelhaar/fitsmart/internal/identity/infrastructure/auth"
	identityPersistence "github.com/felixgeelhaar/fitsmart/internal/identity/infrastructure/persistence"
	mealCommands "github.com/felixgeelhaar/fitsmart/internal/meals/application/commands"
	mealQueries "github.com/felixgeelhaar/fitsmart/internal/meals/application/queries"
	onboardingCommands "github.com/felixgeelhaar/fitsmart/internal/onboarding/application/commands"
	sharedApplication "github.com/felixgeelhaar/fitsmart/internal/shared/application"
	sharedDomain "github.com/felixgeelhaar/fitsmart/internal/shared/domain"
	"github.com/felixgeelhaar/fitsmart/internal/shared/infrastructure/crypto"
	"github.com/felixgeelhaar/fitsmart/internal/shared/infrastructure/eventbus"
	"github.com/felixgeelhaar/fitsmart/internal/shared/infrastructure/kvstore"
	trackingCommands "github.com/felixgeelhaar/fitsmart/internal/tracking/application/commands"
	trackingQueries "github.com/felixgeelhaar/fitsmart/internal/tracking/application/queries"
	trackingDomain "github.com/felixgeelhaar/fitsmart/internal/tracking/domain"
	trackingPersistence "github.com/felixgeelhaar/fitsmart/internal/tracking/infrastructure/persistence"
	"github.com/felixgeelhaar/fitsmart/pkg/config"
	"github.com/felixgeelhaar/fitsmart/pkg/observability"
	"golang.org/x/crypto/bcrypt"
)

// Container holds all application dependencies.
type Container struct {
	Config *config.Config
	Logger *slog.Logger
	Clock  sharedDomain.Clock

	// Storage
	Store      kvstore.Store
	StoreName  string
	UnitOfWork sharedApplication.UnitOfWork

	// Repositories
	AccountRepo    identityDomain.AccountRepository
	CredentialRepo identityDomain.CredentialRepository
	Sessions       identityDomain.SessionStore
	RecordRepo     trackingDomain.Repository
	PaymentRepo    *billingPersistence.KVPaymentRepository

	// Publishers
	EventPublisher    eventbus.Publisher
	InProcessEventBus *eventbus.InProcessBus

	// Health
	Health *observability.HealthRegistry

	// Identity
	RegisterHandler       *identityCommands.RegisterHandler
	LoginHandler          *identityCommands.LoginHandler
	LogoutHandler         *identityCommands.LogoutHandler
	CurrentAccountHandler *identityQueries.CurrentAccountHandler
	EntryStageHandler     *identityQueries.EntryStageHandler

	// Onboarding
	CompleteQuizHandler *onboardingCommands.CompleteQuizHandler

	// Billing
	ActivateSubscriptionHandler  *billingCommands.ActivateSubscriptionHandler
	GetSubscriptionStatusHandler *billingQueries.GetSubscriptionStatusHandler
	ListOffersHandler            *billingQueries.ListOffersHandler

	// Tracking
	OpenDayHandler         *trackingCommands.OpenDayHandler
	AddWaterHandler        *trackingCommands.AddWaterHandler
	RemoveWaterHandler     *trackingCommands.RemoveWaterHandler
	ToggleRemindersHandler *trackingCommands.ToggleRemindersHandler
	AddMealHandler         *trackingCommands.AddMealHandler
	DeleteMealHandler      *trackingCommands.DeleteMealHandler
	CompleteWorkoutHandler *trackingCommands.CompleteWorkoutHandler
	GetDashboardHandler    *trackingQueries.GetDashboardHandler
	GetHydrationHandler    *trackingQueries.GetHydrationHandler
	ListWorkoutsHandler    *trackingQueries.ListWorkoutsHandler
	TodayMealsHandler      *trackingQueries.TodayMealsHandler

	// Meals
	GetDailySuggestionsHandler *mealQueries.GetDailySuggestionsHandler
	CatalogHandler             *mealQueries.CatalogHandler
	LogSuggestionHandler       *mealCommands.LogSuggestionHandler

	backend *storeBackend
}

// Option customizes a Container.
type Option func(*Container)

// WithClock replaces the system clock.
func WithClock(clock sharedDomain.Clock) Option {
	return func(c *Container) { c.Clock = clock }
}

// NewContainer creates and wires all dependencies.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger, opts ...Option) (*Container, error) {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Container{
		Config: cfg,
		Logger: logger,
		Clock:  sharedDomain.SystemClock,
		Health: observability.NewHealthRegistry(),
	}
	for _, opt := range opts {
		opt(c)
	}

	backend, err := openStore(ctx, cfg, c.Clock, logger)
	if err != nil {
		return nil, err
	}
	c.backend = backend
	c.Store = backend.Store
	c.StoreName = backend.name
	c.UnitOfWork = backend.UoW
	c.Health.Register("store", observability.StoreHealthChecker(backend.Ping))
	logger.Debug("store ready", "store", backend.name)

	// Payment blobs are sealed only when a key is configured.
	var encrypter crypto.Encrypter
	if cfg.EncryptionKey != "" {
		aes, err := crypto.NewAESGCMFromBase64Key(cfg.EncryptionKey)
		if err != nil {
			_ = backend.Close()
			return nil, fmt.Errorf("invalid FITSMART_ENCRYPTION_KEY: %w", err)
		}
		encrypter = aes
	}

	c.initPublisher(cfg, logger)

	// Repositories
	c.AccountRepo = identityPersistence.NewKVAccountRepository(c.Store, logger)
	c.CredentialRepo = identityPersistence.NewKVCredentialRepository(c.Store)
	c.Sessions = identityPersistence.NewKVSessionStore(c.Store, logger)
	c.RecordRepo = trackingPersistence.NewKVDailyRecordRepository(c.Store, c.Clock, logger)
	c.PaymentRepo = billingPersistence.NewKVPaymentRepository(c.Store, encrypter, logger)

	// Identity
	hasher := auth.NewBcryptHasher(bcrypt.DefaultCost)
	c.RegisterHandler = identityCommands.NewRegisterHandler(c.AccountRepo, c.CredentialRepo, hasher, c.UnitOfWork, c.EventPublisher, c.Clock, logger)
	c.LoginHandler = identityCommands.NewLoginHandler(c.AccountRepo, c.CredentialRepo, c.Sessions, hasher, logger)
	c.LogoutHandler = identityCommands.NewLogoutHandler(c.Sessions)
	c.CurrentAccountHandler = identityQueries.NewCurrentAccountHandler(c.AccountRepo, c.Sessions)
	c.EntryStageHandler = identityQueries.NewEntryStageHandler(c.CurrentAccountHandler, c.Clock)

	// Onboarding
	c.CompleteQuizHandler = onboardingCommands.NewCompleteQuizHandler(c.AccountRepo, c.RecordRepo, c.UnitOfWork, c.EventPublisher, c.Clock, logger)

	// Billing
	c.ActivateSubscriptionHandler = billingCommands.NewActivateSubscriptionHandler(c.AccountRepo, c.PaymentRepo, c.UnitOfWork, c.EventPublisher, c.Clock, logger)
	c.GetSubscriptionStatusHandler = billingQueries.NewGetSubscriptionStatusHandler(c.AccountRepo, c.Clock)
	c.ListOffersHandler = billingQueries.NewListOffersHandler()

	// Tracking
	deps := trackingCommands.Deps{
		Records:   c.RecordRepo,
		UoW:       c.UnitOfWork,
		Publisher: c.EventPublisher,
		Clock:     c.Clock,
		Logger:    logger,
	}
	c.OpenDayHandler = trackingCommands.NewOpenDayHandler(deps)
	c.AddWaterHandler = trackingCommands.NewAddWaterHandler(deps)
	c.RemoveWaterHandler = trackingCommands.NewRemoveWaterHandler(deps)
	c.ToggleRemindersHandler = trackingCommands.NewToggleRemindersHandler(deps)
	c.AddMealHandler = trackingCommands.NewAddMealHandler(deps)
	c.DeleteMealHandler = trackingCommands.NewDeleteMealHandler(deps)
	c.CompleteWorkoutHandler = trackingCommands.NewCompleteWorkoutHandler(deps)
	c.GetDashboardHandler = trackingQueries.NewGetDashboardHandler(c.RecordRepo, c.Clock)
	c.GetHydrationHandler = trackingQueries.NewGetHydrationHandler(c.RecordRepo, c.Clock)
	c.ListWorkoutsHandler = trackingQueries.NewListWorkoutsHandler(c.RecordRepo, c.Clock)
	c.TodayMealsHandler = trackingQueries.NewTodayMealsHandler(c.RecordRepo, c.Clock)

	// Meals
	c.GetDailySuggestionsHandler = mealQueries.NewGetDailySuggestionsHandler(c.RecordRepo, c.Clock)
	c.CatalogHandler = mealQueries.NewCatalogHandler()
	c.LogSuggestionHandler = mealCommands.NewLogSuggestionHandler(c.AddMealHandler)

	logger.Debug("container initialized", "store", c.StoreName, "broker", cfg.PublishesToBroker())
	return c, nil
}

// initPublisher connects to RabbitMQ when configured. Without a broker, or
// when it cannot be reached, events go to the in-process bus.
func (c *Container) initPublisher(cfg *config.Config, logger *slog.Logger) {
	if cfg.PublishesToBroker() {
		publisher, err := eventbus.NewRabbitMQPublisher(cfg.RabbitMQURL, cfg.EventExchange, logger)
		if err == nil {
			c.EventPublisher = publisher
			c.Health.Register("broker", observability.BrokerHealthChecker(publisher.Ping))
			return
		}
		if cfg.IsProduction() {
			logger.Error("RabbitMQ not available, events will only be delivered in-process", "error", err)
		} else {
			logger.Warn("RabbitMQ not available, using in-process bus", "error", err)
		}
	}

	bus := eventbus.NewInProcessBus(logger)
	bus.Subscribe(eventbus.MatchAll, func(ctx context.Context, env eventbus.Envelope) error {
		logger.DebugContext(ctx, "domain event", "routing_key", env.RoutingKey, "aggregate_id", env.AggregateID)
		return nil
	})
	c.InProcessEventBus = bus
	c.EventPublisher = bus
}

// Close cleans up all resources.
func (c *Container) Close() {
	if c.EventPublisher != nil {
		if err := c.EventPublisher.Close(); err != nil {
			c.Logger.Warn("error closing event publisher", "error", err)
		}
	}

	if c.backend != nil {
		if err := c.backend.Close(); err != nil {
			c.Logger.Warn("error closing store", "store", c.StoreName, "error", err)
		} else {
			c.Logger.Debug("store closed", "store", c.StoreName)
		}
	}
}

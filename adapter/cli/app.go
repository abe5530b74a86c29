package cli

import (
	internalApp "github.com/felixgeelhaar/fitsmart/internal/app"
	billingCommands "github.com/felixgeelhaar/fitsmart/internal/billing/application/commands"
	billingQueries "github.com/felixgeelhaar/fitsmart/internal/billing/application/queries"
	identityCommands "github.com/felixgeelhaar/fitsmart/internal/identity/application/commands"
	identityQueries "github.com/felixgeelhaar/fitsmart/internal/identity/application/queries"
	mealCommands "github.com/felixgeelhaar/fitsmart/internal/meals/application/commands"
	mealQueries "github.com/felixgeelhaar/fitsmart/internal/meals/application/queries"
	onboardingCommands "github.com/felixgeelhaar/fitsmart/internal/onboarding/application/commands"
	sharedDomain "github.com/felixgeelhaar/fitsmart/internal/shared/domain"
	trackingCommands "github.com/felixgeelhaar/fitsmart/internal/tracking/application/commands"
	trackingQueries "github.com/felixgeelhaar/fitsmart/internal/tracking/application/queries"
	"github.com/felixgeelhaar/fitsmart/pkg/observability"
)

// App holds the CLI application dependencies.
type App struct {
	Clock  sharedDomain.Clock
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
}

// NewApp creates a new CLI application from a wired container.
func NewApp(c *internalApp.Container) *App {
	return &App{
		Clock:  c.Clock,
		Health: c.Health,

		RegisterHandler:       c.RegisterHandler,
		LoginHandler:          c.LoginHandler,
		LogoutHandler:         c.LogoutHandler,
		CurrentAccountHandler: c.CurrentAccountHandler,
		EntryStageHandler:     c.EntryStageHandler,

		CompleteQuizHandler: c.CompleteQuizHandler,

		ActivateSubscriptionHandler:  c.ActivateSubscriptionHandler,
		GetSubscriptionStatusHandler: c.GetSubscriptionStatusHandler,
		ListOffersHandler:            c.ListOffersHandler,

		OpenDayHandler:         c.OpenDayHandler,
		AddWaterHandler:        c.AddWaterHandler,
		RemoveWaterHandler:     c.RemoveWaterHandler,
		ToggleRemindersHandler: c.ToggleRemindersHandler,
		AddMealHandler:         c.AddMealHandler,
		DeleteMealHandler:      c.DeleteMealHandler,
		CompleteWorkoutHandler: c.CompleteWorkoutHandler,
		GetDashboardHandler:    c.GetDashboardHandler,
		GetHydrationHandler:    c.GetHydrationHandler,
		ListWorkoutsHandler:    c.ListWorkoutsHandler,
		TodayMealsHandler:      c.TodayMealsHandler,

		GetDailySuggestionsHandler: c.GetDailySuggestionsHandler,
		CatalogHandler:             c.CatalogHandler,
		LogSuggestionHandler:       c.LogSuggestionHandler,
	}
}

// Global app instance for CLI commands
var app *App

// SetApp sets the global app instance.
func SetApp(a *App) {
	app = a
}

// GetApp returns the global app instance.
func GetApp() *App {
	return app
}

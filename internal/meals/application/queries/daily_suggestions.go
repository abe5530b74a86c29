package queries

import (
	"context"

	"github.com/felixgeelhaar/fitsmart/internal/meals/domain"
	sharedDomain "github.com/felixgeelhaar/fitsmart/internal/shared/domain"
	trackingDomain "github.com/felixgeelhaar/fitsmart/internal/tracking/domain"
	"github.com/google/uuid"
)

// DailySuggestionsDTO is the day's rotation for an account.
type DailySuggestionsDTO struct {
	Date        string
	Suggestions []domain.Suggestion
}

// GetDailySuggestionsHandler picks today's meals using the account's profile.
type GetDailySuggestionsHandler struct {
	records trackingDomain.Repository
	clock   sharedDomain.Clock
}

// NewGetDailySuggestionsHandler creates a new GetDailySuggestionsHandler.
func NewGetDailySuggestionsHandler(records trackingDomain.Repository, clock sharedDomain.Clock) *GetDailySuggestionsHandler {
	return &GetDailySuggestionsHandler{records: records, clock: clock}
}

// Handle filters by the stored profile. An account without a record or
// profile gets the unfiltered rotation.
func (h *GetDailySuggestionsHandler) Handle(ctx context.Context, accountID uuid.UUID) (*DailySuggestionsDTO, error) {
	record, err := h.records.Load(ctx, accountID)
	if err != nil {
		return nil, err
	}

	now := h.clock.Now()
	var suggestions []domain.Suggestion
	if record != nil && record.Profile != nil {
		suggestions = domain.DailySuggestions(record.Profile.DietaryRestrictions, record.Profile.Allergies, now)
	} else {
		suggestions = domain.DailySuggestions(nil, nil, now)
	}
	return &DailySuggestionsDTO{
		Date:        trackingDomain.CalendarDate(now),
		Suggestions: suggestions,
	}, nil
}

// CatalogHandler answers catalog lookups.
type CatalogHandler struct{}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler() *CatalogHandler { return &CatalogHandler{} }

// ByID returns domain.ErrSuggestionNotFound for unknown ids.
func (h *CatalogHandler) ByID(_ context.Context, id string) (*domain.Suggestion, error) {
	s, ok := domain.SuggestionByID(id)
	if !ok {
		return nil, domain.NotFound(id)
	}
	return &s, nil
}

// BySlot lists one slot of the catalog.
func (h *CatalogHandler) BySlot(_ context.Context, slot domain.Slot) ([]domain.Suggestion, error) {
	if !slot.IsValid() {
		return nil, domain.ErrInvalidSlot
	}
	return domain.MealsBySlot(slot), nil
}

package commands

import (
	"context"

	"github.com/felixgeelhaar/fitsmart/internal/identity/domain"
)

// LogoutHandler clears the current session.
type LogoutHandler struct {
	sessions domain.SessionStore
}

// NewLogoutHandler creates a new LogoutHandler.
func NewLogoutHandler(sessions domain.SessionStore) *LogoutHandler {
	return &LogoutHandler{sessions: sessions}
}

// Handle ends the session. Logging out without a session is not an error.
func (h *LogoutHandler) Handle(ctx context.Context) error {
	return h.sessions.End(ctx)
}

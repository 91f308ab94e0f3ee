package session

import (
	"context"

	"skycast/internal/domain/entity"
	"skycast/internal/domain/model"
)

type UseCase interface {
	// Search resolves a free-text city query and replaces the session with a
	// fresh fetch for the matched place.
	Search(ctx context.Context, query string) (*model.DashboardView, error)

	// Locate replaces the session with a fetch for device-provided
	// coordinates, skipping geocoding. label overrides the display name.
	Locate(ctx context.Context, coords entity.Coordinates, label string) (*model.DashboardView, error)

	// SetUnit switches the display unit and re-renders the cached session.
	// Never fetches.
	SetUnit(unit entity.UnitPreference) *model.DashboardView

	// View renders the current session state.
	View() *model.DashboardView

	// Refresh re-fetches the active session's location in the background.
	// A no-op when no session exists.
	Refresh(ctx context.Context, requestID string) error
}

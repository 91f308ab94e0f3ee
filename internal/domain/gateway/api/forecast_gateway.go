package api

import (
	"context"

	"skycast/internal/domain/entity"
	"skycast/internal/domain/model"
	"skycast/internal/domain/model/external"
)

// ForecastGateway defines the interface for the weather forecast upstream.
type ForecastGateway interface {
	// GetForecast fetches current conditions plus a days-long daily window
	// for the given coordinates. Exactly one attempt: a user action never
	// retries on its own.
	GetForecast(ctx context.Context, coords entity.Coordinates, days int) (*external.ForecastResponse, error)

	// RefreshForecast is the background-refresh variant of GetForecast and
	// may retry transient failures with a bounded backoff.
	RefreshForecast(ctx context.Context, coords entity.Coordinates, days int) (*external.ForecastResponse, error)

	// Health reports the reachability of the forecast upstream based on the
	// most recent call outcome.
	Health() model.ComponentHealthStatus
}

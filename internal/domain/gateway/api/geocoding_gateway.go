package api

import (
	"context"

	"skycast/internal/domain/model"
	"skycast/internal/domain/model/external"
)

// GeocodingGateway defines the interface for the geocoding upstream.
type GeocodingGateway interface {
	// SearchCity searches for a place by free-text name. The upstream ranks
	// results best match first; an unmatched query yields an empty slice,
	// not an error.
	SearchCity(ctx context.Context, name string) ([]external.GeocodingResult, error)

	// Health reports the reachability of the geocoding upstream based on the
	// most recent call outcome.
	Health() model.ComponentHealthStatus
}

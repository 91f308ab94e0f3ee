package locate

import (
	"context"
	"fmt"
	"strings"

	"skycast/internal/domain/entity"
	"skycast/internal/domain/gateway/api"
	"skycast/internal/domain/model"
)

// DefaultDeviceLabel names a location resolved from device coordinates, where
// geocoding is skipped and no place name exists.
const DefaultDeviceLabel = "Your Location"

// Resolver turns user input into a resolved location.
type Resolver interface {
	// ResolveByName geocodes a free-text city query. Fails with
	// model.ErrEmptyQuery before any network call for blank input, with
	// model.ErrNotFound when geocoding yields no match, and with
	// model.ErrTransport when the geocoding call itself fails.
	ResolveByName(ctx context.Context, query string) (*entity.ResolvedLocation, error)

	// ResolveByCoordinates accepts device-provided coordinates directly,
	// labeled with the caller-supplied display name.
	ResolveByCoordinates(ctx context.Context, coords entity.Coordinates, label string) (*entity.ResolvedLocation, error)
}

type resolver struct {
	geocoding api.GeocodingGateway
}

// NewResolver creates a Resolver backed by the geocoding gateway.
func NewResolver(geocoding api.GeocodingGateway) Resolver {
	return &resolver{geocoding: geocoding}
}

// ResolveByName geocodes a trimmed query and picks the first-ranked match.
func (r *resolver) ResolveByName(ctx context.Context, query string) (*entity.ResolvedLocation, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return nil, model.ErrEmptyQuery
	}

	results, err := r.geocoding.SearchCity(ctx, trimmed)
	if err != nil {
		return nil, fmt.Errorf("%w: geocoding %q: %s", model.ErrTransport, trimmed, err)
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("%w: %q", model.ErrNotFound, trimmed)
	}

	// The upstream ranks results best match first.
	best := results[0]
	return &entity.ResolvedLocation{
		Coordinates: entity.Coordinates{Latitude: best.Latitude, Longitude: best.Longitude},
		DisplayName: best.Name,
		Country:     best.Country,
	}, nil
}

// ResolveByCoordinates passes device coordinates through without geocoding.
func (r *resolver) ResolveByCoordinates(_ context.Context, coords entity.Coordinates, label string) (*entity.ResolvedLocation, error) {
	if !coords.Valid() {
		return nil, fmt.Errorf("%w: %.4f, %.4f", model.ErrInvalidCoordinates, coords.Latitude, coords.Longitude)
	}
	if label == "" {
		label = DefaultDeviceLabel
	}
	return &entity.ResolvedLocation{Coordinates: coords, DisplayName: label}, nil
}

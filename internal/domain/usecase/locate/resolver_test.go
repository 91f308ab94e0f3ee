package locate

import (
	"context"
	"errors"
	"testing"

	"skycast/internal/domain/entity"
	"skycast/internal/domain/model"
	"skycast/internal/domain/model/external"
)

type stubGeocodingGateway struct {
	results []external.GeocodingResult
	err     error
	calls   int
}

func (s *stubGeocodingGateway) SearchCity(_ context.Context, _ string) ([]external.GeocodingResult, error) {
	s.calls++
	return s.results, s.err
}

func (s *stubGeocodingGateway) Health() model.ComponentHealthStatus {
	return model.ComponentHealthStatus{Status: model.StatusUp}
}

func TestResolveByNameEmptyQuery(t *testing.T) {
	for _, query := range []string{"", "   ", "\t\n"} {
		gateway := &stubGeocodingGateway{}
		_, err := NewResolver(gateway).ResolveByName(context.Background(), query)
		if !errors.Is(err, model.ErrEmptyQuery) {
			t.Errorf("ResolveByName(%q) error = %v, want ErrEmptyQuery", query, err)
		}
		if gateway.calls != 0 {
			t.Errorf("ResolveByName(%q) hit the network %d times, want 0", query, gateway.calls)
		}
	}
}

func TestResolveByNameNotFound(t *testing.T) {
	gateway := &stubGeocodingGateway{}
	_, err := NewResolver(gateway).ResolveByName(context.Background(), "Nonexistent City Name")
	if !errors.Is(err, model.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestResolveByNameTransportError(t *testing.T) {
	gateway := &stubGeocodingGateway{err: errors.New("connection refused")}
	_, err := NewResolver(gateway).ResolveByName(context.Background(), "Lisbon")
	if !errors.Is(err, model.ErrTransport) {
		t.Errorf("error = %v, want ErrTransport", err)
	}
}

func TestResolveByNamePicksFirstRankedMatch(t *testing.T) {
	gateway := &stubGeocodingGateway{results: []external.GeocodingResult{
		{Latitude: 38.72, Longitude: -9.14, Name: "Lisbon", Country: "Portugal"},
		{Latitude: 38.5, Longitude: -9.0, Name: "Lisboa Region", Country: "Portugal"},
	}}

	loc, err := NewResolver(gateway).ResolveByName(context.Background(), "  Lisbon  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loc.DisplayName != "Lisbon" || loc.Country != "Portugal" {
		t.Errorf("resolved %+v, want first-ranked Lisbon, Portugal", loc)
	}
	if loc.Coordinates.Latitude != 38.72 || loc.Coordinates.Longitude != -9.14 {
		t.Errorf("coordinates = %+v, want 38.72, -9.14", loc.Coordinates)
	}
}

func TestResolveByCoordinates(t *testing.T) {
	resolver := NewResolver(&stubGeocodingGateway{})

	loc, err := resolver.ResolveByCoordinates(context.Background(), entity.Coordinates{Latitude: 47.5, Longitude: 19.04}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loc.DisplayName != DefaultDeviceLabel {
		t.Errorf("display name = %q, want %q", loc.DisplayName, DefaultDeviceLabel)
	}

	for _, coords := range []entity.Coordinates{
		{Latitude: 91, Longitude: 0},
		{Latitude: -91, Longitude: 0},
		{Latitude: 0, Longitude: 181},
		{Latitude: 0, Longitude: -181},
	} {
		_, err := resolver.ResolveByCoordinates(context.Background(), coords, "")
		if !errors.Is(err, model.ErrInvalidCoordinates) {
			t.Errorf("ResolveByCoordinates(%+v) error = %v, want ErrInvalidCoordinates", coords, err)
		}
	}
}

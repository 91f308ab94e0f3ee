package api

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"skycast/internal/domain/entity"
	"skycast/internal/domain/model"
	"skycast/internal/domain/model/external"
)

// RateLimitedGeocodingGateway wraps a GeocodingGateway with client-side rate
// limiting toward the upstream.
type RateLimitedGeocodingGateway struct {
	gateway GeocodingGateway
	limiter *rate.Limiter
}

// NewRateLimitedGeocodingGateway creates a rate limited geocoding gateway.
// rps may be fractional for less than one request per second.
func NewRateLimitedGeocodingGateway(gateway GeocodingGateway, rps float64, burst int) *RateLimitedGeocodingGateway {
	return &RateLimitedGeocodingGateway{
		gateway: gateway,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// SearchCity waits for rate limiter permission, then forwards to the gateway.
func (r *RateLimitedGeocodingGateway) SearchCity(ctx context.Context, name string) ([]external.GeocodingResult, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.gateway.SearchCity(ctx, name)
}

// Health forwards to the wrapped gateway.
func (r *RateLimitedGeocodingGateway) Health() model.ComponentHealthStatus {
	return r.gateway.Health()
}

// RateLimitedForecastGateway wraps a ForecastGateway with client-side rate
// limiting toward the upstream.
type RateLimitedForecastGateway struct {
	gateway ForecastGateway
	limiter *rate.Limiter
}

// NewRateLimitedForecastGateway creates a rate limited forecast gateway.
func NewRateLimitedForecastGateway(gateway ForecastGateway, rps float64, burst int) *RateLimitedForecastGateway {
	return &RateLimitedForecastGateway{
		gateway: gateway,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// GetForecast waits for rate limiter permission, then forwards to the gateway.
func (r *RateLimitedForecastGateway) GetForecast(ctx context.Context, coords entity.Coordinates, days int) (*external.ForecastResponse, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.gateway.GetForecast(ctx, coords, days)
}

// RefreshForecast waits for rate limiter permission, then forwards to the gateway.
func (r *RateLimitedForecastGateway) RefreshForecast(ctx context.Context, coords entity.Coordinates, days int) (*external.ForecastResponse, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.gateway.RefreshForecast(ctx, coords, days)
}

// Health forwards to the wrapped gateway.
func (r *RateLimitedForecastGateway) Health() model.ComponentHealthStatus {
	return r.gateway.Health()
}

var (
	_ GeocodingGateway = (*RateLimitedGeocodingGateway)(nil)
	_ ForecastGateway  = (*RateLimitedForecastGateway)(nil)
)

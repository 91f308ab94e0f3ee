package api

import (
	"context"
	"fmt"
	"strconv"

	"skycast/internal/domain/entity"
	"skycast/internal/domain/model"
	"skycast/internal/domain/model/external"
	"skycast/pkg/http"
)

// currentFields and dailyFields enumerate the upstream fields the dashboard
// consumes. The daily window is keyed by the time array.
const (
	currentFields = "temperature_2m,relative_humidity_2m,apparent_temperature,weathercode,surface_pressure,windspeed_10m,visibility"
	dailyFields   = "weathercode,temperature_2m_max,temperature_2m_min,sunrise,sunset"
)

// forecastGatewayImpl implements the ForecastGateway interface
type forecastGatewayImpl struct {
	httpClient     *http.Client
	refreshBackoff *http.BackoffConfig
	health         *upstreamHealth
}

// NewForecastGateway creates a new instance of ForecastGateway with HTTP
// client. refreshBackoff only applies to background refreshes; user-triggered
// fetches always run a single attempt.
func NewForecastGateway(baseUrl string, clientOptions http.ClientOptions, refreshBackoff *http.BackoffConfig) ForecastGateway {
	return &forecastGatewayImpl{
		httpClient:     http.NewHttpClient(baseUrl, clientOptions),
		refreshBackoff: refreshBackoff,
		health:         newUpstreamHealth(baseUrl),
	}
}

// GetForecast fetches current conditions and the daily window in one attempt.
func (f *forecastGatewayImpl) GetForecast(ctx context.Context, coords entity.Coordinates, days int) (*external.ForecastResponse, error) {
	return f.fetch(ctx, coords, days, nil)
}

// RefreshForecast fetches with the configured bounded backoff.
func (f *forecastGatewayImpl) RefreshForecast(ctx context.Context, coords entity.Coordinates, days int) (*external.ForecastResponse, error) {
	return f.fetch(ctx, coords, days, f.refreshBackoff)
}

func (f *forecastGatewayImpl) fetch(ctx context.Context, coords entity.Coordinates, days int, backoff *http.BackoffConfig) (*external.ForecastResponse, error) {
	successResp, errResp, _, err := f.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath("/v1/forecast").
		WithQueryParams(map[string]string{
			"latitude":      strconv.FormatFloat(coords.Latitude, 'f', -1, 64),
			"longitude":     strconv.FormatFloat(coords.Longitude, 'f', -1, 64),
			"current":       currentFields,
			"daily":         dailyFields,
			"timezone":      "auto",
			"forecast_days": strconv.Itoa(days),
		}).
		WithSuccessResp(&external.ForecastResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		WithBackoff(backoff).
		Execute()

	if err == nil {
		f.health.recordSuccess()
		return successResp.(*external.ForecastResponse), nil
	}

	if errResp != nil {
		errorResponse := errResp.(*external.APIErrorResponse)
		err = fmt.Errorf("forecast upstream rejected the request: %s", errorResponse.Reason)
	}
	f.health.recordFailure(err)
	return nil, err
}

// Health reports the reachability of the forecast upstream.
func (f *forecastGatewayImpl) Health() model.ComponentHealthStatus {
	return f.health.status()
}

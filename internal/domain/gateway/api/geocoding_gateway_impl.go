package api

import (
	"context"
	"fmt"

	"skycast/internal/domain/model"
	"skycast/internal/domain/model/external"
	"skycast/pkg/http"
)

// geocodingGatewayImpl implements the GeocodingGateway interface
type geocodingGatewayImpl struct {
	httpClient *http.Client
	health     *upstreamHealth
}

// NewGeocodingGateway creates a new instance of GeocodingGateway with HTTP client
func NewGeocodingGateway(baseUrl string, clientOptions http.ClientOptions) GeocodingGateway {
	return &geocodingGatewayImpl{
		httpClient: http.NewHttpClient(baseUrl, clientOptions),
		health:     newUpstreamHealth(baseUrl),
	}
}

// SearchCity searches for a place by free-text name, best match first.
func (g *geocodingGatewayImpl) SearchCity(ctx context.Context, name string) ([]external.GeocodingResult, error) {
	successResp, errResp, _, err := g.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath("/v1/search").
		WithQueryParams(map[string]string{
			"name":     name,
			"count":    "1",
			"language": "en",
			"format":   "json",
		}).
		WithSuccessResp(&external.GeocodingSearchResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err == nil {
		g.health.recordSuccess()
		response := successResp.(*external.GeocodingSearchResponse)
		return response.Results, nil
	}

	if errResp != nil {
		errorResponse := errResp.(*external.APIErrorResponse)
		err = fmt.Errorf("geocoding upstream rejected the request: %s", errorResponse.Reason)
	}
	g.health.recordFailure(err)
	return nil, err
}

// Health reports the reachability of the geocoding upstream.
func (g *geocodingGatewayImpl) Health() model.ComponentHealthStatus {
	return g.health.status()
}

package health

import (
	"skycast/internal/domain/gateway/api"
	"skycast/internal/domain/model"
)

type healthUseCase struct {
	geocodingGateway api.GeocodingGateway
	forecastGateway  api.ForecastGateway
}

func NewHealthUseCase(geocodingGateway api.GeocodingGateway, forecastGateway api.ForecastGateway) UseCase {
	return &healthUseCase{
		geocodingGateway: geocodingGateway,
		forecastGateway:  forecastGateway,
	}
}

func (useCase *healthUseCase) CheckHealth() model.HealthResponse {
	geocodingHealth := useCase.geocodingGateway.Health()
	forecastHealth := useCase.forecastGateway.Health()

	overallStatus := model.StatusUp
	if geocodingHealth.Status == model.StatusDown || forecastHealth.Status == model.StatusDown {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:    overallStatus,
		Geocoding: geocodingHealth,
		Forecast:  forecastHealth,
	}
}

package health

import "skycast/internal/domain/model"

type UseCase interface {
	CheckHealth() model.HealthResponse
}

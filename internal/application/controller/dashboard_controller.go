package controller

import (
	"errors"
	"net/http"

	"skycast/internal/application/animation"
	"skycast/internal/domain/entity"
	"skycast/internal/domain/model"
	"skycast/internal/domain/usecase/session"
	"skycast/pkg/util/numberutils"

	"github.com/labstack/echo/v4"
)

const (
	defaultParticleLimit = 200
	maxParticleLimit     = 1000
)

type DashboardController struct {
	api      *echo.Group
	useCase  session.UseCase
	director *animation.Director
}

func NewDashboardController(api *echo.Group, useCase session.UseCase, director *animation.Director) *DashboardController {
	return &DashboardController{api: api, useCase: useCase, director: director}
}

// InitDashboardRoutes initializes dashboard routes
func (controller *DashboardController) InitDashboardRoutes() {
	controller.api.GET("/dashboard", controller.GetDashboard)
	controller.api.POST("/dashboard/search", controller.Search)
	controller.api.POST("/dashboard/locate", controller.Locate)
	controller.api.PUT("/dashboard/units", controller.SetUnit)
	controller.api.GET("/dashboard/animation", controller.GetAnimation)
}

// GetDashboard godoc
// @Summary Get the current dashboard view
// @Description Render the active session with the current unit preference and theme
// @Tags dashboard
// @Accept json
// @Produce json
// @Success 200 {object} model.DashboardView "Current dashboard view"
// @Router /dashboard [get]
func (controller *DashboardController) GetDashboard(c echo.Context) error {
	return c.JSON(http.StatusOK, controller.useCase.View())
}

// Search godoc
// @Summary Search for a city and load its weather
// @Description Geocode a free-text city query, fetch current conditions plus the daily forecast window and replace the active session
// @Tags dashboard
// @Accept json
// @Produce json
// @Param search body model.SearchRequestDTO true "City query"
// @Success 200 {object} model.DashboardView "Dashboard view for the matched city"
// @Failure 400 {object} model.DashboardView "Empty query"
// @Failure 404 {object} model.DashboardView "No matching city"
// @Failure 502 {object} model.DashboardView "Upstream failure or malformed payload"
// @Router /dashboard/search [post]
func (controller *DashboardController) Search(c echo.Context) error {
	var dto model.SearchRequestDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	view, err := controller.useCase.Search(c.Request().Context(), dto.Query)
	return c.JSON(statusFor(err), view)
}

// Locate godoc
// @Summary Load weather for device coordinates
// @Description Skip geocoding and fetch weather for caller-provided coordinates
// @Tags dashboard
// @Accept json
// @Produce json
// @Param locate body model.LocateRequestDTO true "Device coordinates"
// @Success 200 {object} model.DashboardView "Dashboard view for the coordinates"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 502 {object} model.DashboardView "Upstream failure or malformed payload"
// @Router /dashboard/locate [post]
func (controller *DashboardController) Locate(c echo.Context) error {
	var dto model.LocateRequestDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	coords := entity.Coordinates{Latitude: dto.Latitude, Longitude: dto.Longitude}
	view, err := controller.useCase.Locate(c.Request().Context(), coords, dto.Label)
	return c.JSON(statusFor(err), view)
}

// SetUnit godoc
// @Summary Set the temperature display unit
// @Description Switch between celsius and fahrenheit and re-render the cached session without any upstream call
// @Tags dashboard
// @Accept json
// @Produce json
// @Param unit body model.UnitRequestDTO true "Unit preference"
// @Success 200 {object} model.DashboardView "Dashboard view in the new unit"
// @Failure 400 {object} map[string]string "Unknown unit"
// @Router /dashboard/units [put]
func (controller *DashboardController) SetUnit(c echo.Context) error {
	var dto model.UnitRequestDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	unit, ok := entity.ParseUnitPreference(dto.Unit)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "unit must be celsius or fahrenheit"})
	}
	return c.JSON(http.StatusOK, controller.useCase.SetUnit(unit))
}

// GetAnimation godoc
// @Summary Get the animation state
// @Description Snapshot the animation director: active category, live particles, starfield and timer inventory
// @Tags dashboard
// @Accept json
// @Produce json
// @Param limit query int false "Maximum particles returned" default(200)
// @Success 200 {object} animation.Snapshot "Animation snapshot"
// @Router /dashboard/animation [get]
func (controller *DashboardController) GetAnimation(c echo.Context) error {
	var limit int = numberutils.ToIntWithDefault(c.QueryParam("limit"), defaultParticleLimit)
	limit = numberutils.ClampInt(limit, 1, maxParticleLimit)

	return c.JSON(http.StatusOK, controller.director.Snapshot(limit))
}

// statusFor maps a session action outcome to an HTTP status. The view body is
// returned either way so the caller always gets the rendered error region.
func statusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, model.ErrEmptyQuery), errors.Is(err, model.ErrInvalidCoordinates):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}

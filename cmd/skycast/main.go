package main

import (
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	_ "skycast/configs"
	_ "skycast/docs"
	"skycast/internal/application/animation"
	"skycast/internal/application/controller"
	"skycast/internal/application/middleware"
	"skycast/internal/application/schedule"
	"skycast/internal/domain/gateway/api"
	"skycast/internal/domain/usecase/health"
	"skycast/internal/domain/usecase/locate"
	"skycast/internal/domain/usecase/session"
	pkghttp "skycast/pkg/http"
	"skycast/pkg/log"
	"skycast/pkg/msg"
	"skycast/pkg/resource"
	"skycast/pkg/sched"
)

// @title Skycast API
// @version 1.0
// @description Weather dashboard service: city search, current conditions, daily forecast and animation state.
// @BasePath /skycast
func main() {
	log.Info(msg.GetMessage("app.start"))

	// Init infra
	e := echo.New()
	e.HideBanner = true
	middleware.SetupRequestLogger(e)
	apiGroup := e.Group(resource.GetString("app.server.context-path"))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	runner, err := sched.NewRunner()
	if err != nil {
		log.Fatalf("Failed to start task runner: %v", err)
	}

	// Init Gateways
	clientOptions := pkghttp.ClientOptions{
		ConnectionTimeout: resource.GetDuration("app.upstream.connection-timeout"),
		ReadTimeout:       resource.GetDuration("app.upstream.read-timeout"),
	}
	refreshBackoff := &pkghttp.BackoffConfig{
		MaxRetries: resource.GetInt("app.upstream.forecast.refresh-backoff.max-retries"),
		Interval:   resource.GetDuration("app.upstream.forecast.refresh-backoff.interval"),
	}
	geocodingGateway := api.NewRateLimitedGeocodingGateway(
		api.NewGeocodingGateway(resource.GetString("app.upstream.geocoding.base-url"), clientOptions),
		resource.GetFloat64("app.upstream.geocoding.rps"),
		resource.GetInt("app.upstream.geocoding.burst"),
	)
	forecastGateway := api.NewRateLimitedForecastGateway(
		api.NewForecastGateway(resource.GetString("app.upstream.forecast.base-url"), clientOptions, refreshBackoff),
		resource.GetFloat64("app.upstream.forecast.rps"),
		resource.GetInt("app.upstream.forecast.burst"),
	)

	// Init UseCase
	director := animation.NewDirector(runner)
	resolver := locate.NewResolver(geocodingGateway)
	sessionUseCase := session.NewSessionUseCase(resolver, forecastGateway, director, runner)
	healthUseCase := health.NewHealthUseCase(geocodingGateway, forecastGateway)

	// Init Controller
	healthController := controller.NewHealthController(apiGroup, healthUseCase)
	dashboardController := controller.NewDashboardController(apiGroup, sessionUseCase, director)

	// Init Routes
	healthController.InitHealthRoutes()
	dashboardController.InitDashboardRoutes()

	// Init Schedule
	refreshScheduler := schedule.NewSessionRefreshScheduler(sessionUseCase)
	refreshScheduler.InitSessionRefreshTasks()

	// Start Routes
	log.Info(msg.GetMessage("app.started"))
	e.Logger.Fatal(e.Start(":" + resource.GetString("app.server.port")))
}

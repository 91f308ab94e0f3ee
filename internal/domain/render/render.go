package render

import (
	"skycast/internal/domain/condition"
	"skycast/internal/domain/entity"
	"skycast/internal/domain/model"
	"skycast/internal/domain/theme"
	"skycast/pkg/util/temputils"
)

// forecastCards is the number of cards on the forecast strip. Today (daily
// index 0) feeds the current panel and is excluded from the strip.
const forecastCards = 5

// Compose renders a session into a dashboard view for the given unit
// preference and theme. Pure: same inputs always yield the same view, and no
// fetching happens here.
func Compose(state model.SessionState, session *entity.WeatherSession, unit entity.UnitPreference, mode theme.Mode, transient *model.TransientError) *model.DashboardView {
	view := &model.DashboardView{
		State: state,
		Theme: mode,
		Unit:  unit,
		Error: transient,
	}

	if state != model.StateDisplaying || session == nil {
		return view
	}

	location := session.Location
	view.Location = &location
	view.Current = currentPanel(session.Current, unit)
	view.Forecast = forecastStrip(session.Daily, unit)
	return view
}

func currentPanel(current entity.CurrentObservation, unit entity.UnitPreference) *model.CurrentPanel {
	info := condition.Lookup(condition.Code(current.ConditionCode))

	return &model.CurrentPanel{
		Temperature:         displayTemp(current.TemperatureC, unit),
		ApparentTemperature: displayTemp(current.ApparentTemperatureC, unit),
		UnitSymbol:          unitSymbol(unit),
		Description:         info.Description,
		Icon:                info.Icon,
		HumidityPct:         current.HumidityPct,
		PressureHPa:         temputils.DisplayRound(current.PressureHPa),
		WindSpeedKmh:        temputils.DisplayRound(current.WindSpeedKmh),
		VisibilityKm:        current.VisibilityM / 1000,
	}
}

// forecastStrip renders daily indices 1..5: five cards, today excluded.
func forecastStrip(daily []entity.DailyForecast, unit entity.UnitPreference) []model.ForecastCard {
	cards := make([]model.ForecastCard, 0, forecastCards)
	for i := 1; i < len(daily) && len(cards) < forecastCards; i++ {
		day := daily[i]
		info := condition.Lookup(condition.Code(day.ConditionCode))
		cards = append(cards, model.ForecastCard{
			Date:        day.Date,
			Description: info.Description,
			Icon:        info.Icon,
			TempMax:     displayTemp(day.TempMaxC, unit),
			TempMin:     displayTemp(day.TempMinC, unit),
		})
	}
	return cards
}

func displayTemp(celsius float64, unit entity.UnitPreference) int {
	if unit == entity.UnitFahrenheit {
		return temputils.DisplayRound(temputils.ToFahrenheit(celsius))
	}
	return temputils.DisplayRound(celsius)
}

func unitSymbol(unit entity.UnitPreference) string {
	if unit == entity.UnitFahrenheit {
		return "°F"
	}
	return "°C"
}

package render

import (
	"testing"
	"time"

	"skycast/internal/domain/entity"
	"skycast/internal/domain/model"
	"skycast/internal/domain/theme"
)

func sampleSession() *entity.WeatherSession {
	daily := make([]entity.DailyForecast, 6)
	for i := range daily {
		daily[i] = entity.DailyForecast{
			Date:          time.Date(2026, 3, 14+i, 0, 0, 0, 0, time.UTC).Format("2006-01-02"),
			ConditionCode: 61,
			TempMaxC:      10 + float64(i),
			TempMinC:      float64(i),
		}
	}
	return &entity.WeatherSession{
		Current: entity.CurrentObservation{
			TemperatureC:         21.6,
			ApparentTemperatureC: 20.4,
			HumidityPct:          65,
			ConditionCode:        63,
			PressureHPa:          1013.2,
			WindSpeedKmh:         14.7,
			VisibilityM:          24140,
		},
		Daily:    daily,
		Location: entity.ResolvedLocation{DisplayName: "Lisbon", Country: "Portugal"},
	}
}

func TestComposeForecastStrip(t *testing.T) {
	view := Compose(model.StateDisplaying, sampleSession(), entity.UnitCelsius, theme.ModeDay, nil)

	if len(view.Forecast) != 5 {
		t.Fatalf("forecast strip has %d cards, want 5", len(view.Forecast))
	}
	// Today (index 0, 2026-03-14) must be excluded.
	if view.Forecast[0].Date != "2026-03-15" {
		t.Errorf("first card date = %s, want 2026-03-15", view.Forecast[0].Date)
	}
	if view.Forecast[4].Date != "2026-03-19" {
		t.Errorf("last card date = %s, want 2026-03-19", view.Forecast[4].Date)
	}
}

func TestComposeCelsius(t *testing.T) {
	view := Compose(model.StateDisplaying, sampleSession(), entity.UnitCelsius, theme.ModeDay, nil)

	if view.Current == nil {
		t.Fatal("current panel is nil")
	}
	if view.Current.Temperature != 22 {
		t.Errorf("temperature = %d, want 22 (21.6 rounded)", view.Current.Temperature)
	}
	if view.Current.UnitSymbol != "°C" {
		t.Errorf("unit symbol = %q, want °C", view.Current.UnitSymbol)
	}
	if view.Current.Description != "Moderate rain" {
		t.Errorf("description = %q, want Moderate rain", view.Current.Description)
	}
}

func TestComposeFahrenheitConvertsAtDisplayTime(t *testing.T) {
	view := Compose(model.StateDisplaying, sampleSession(), entity.UnitFahrenheit, theme.ModeDay, nil)

	// 21.6C = 70.88F -> 71
	if view.Current.Temperature != 71 {
		t.Errorf("temperature = %d, want 71", view.Current.Temperature)
	}
	if view.Current.UnitSymbol != "°F" {
		t.Errorf("unit symbol = %q, want °F", view.Current.UnitSymbol)
	}
	// Daily max 11C = 51.8F -> 52 on the first card.
	if view.Forecast[0].TempMax != 52 {
		t.Errorf("first card max = %d, want 52", view.Forecast[0].TempMax)
	}
}

func TestComposeNonDisplayingStates(t *testing.T) {
	transient := &model.TransientError{Kind: "not-found", Message: "City not found."}
	view := Compose(model.StateError, sampleSession(), entity.UnitCelsius, theme.ModeNight, transient)

	if view.Current != nil || view.Forecast != nil || view.Location != nil {
		t.Error("error state must not render content panels")
	}
	if view.Error == nil || view.Error.Kind != "not-found" {
		t.Errorf("transient error = %+v, want not-found", view.Error)
	}
	if view.Theme != theme.ModeNight {
		t.Errorf("theme = %s, want night", view.Theme)
	}
}

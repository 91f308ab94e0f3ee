package model

import (
	"skycast/internal/domain/condition"
	"skycast/internal/domain/entity"
	"skycast/internal/domain/theme"
)

// SessionState is the lifecycle state of the dashboard session.
type SessionState string

const (
	StateIdle       SessionState = "idle"
	StateLoading    SessionState = "loading"
	StateDisplaying SessionState = "displaying"
	StateError      SessionState = "error"
)

// CurrentPanel is the rendered current-conditions panel. Temperatures are
// rounded to whole degrees in the selected unit.
type CurrentPanel struct {
	Temperature         int                    `json:"temperature"`
	ApparentTemperature int                    `json:"apparentTemperature"`
	UnitSymbol          string                 `json:"unitSymbol"`
	Description         string                 `json:"description"`
	Icon                condition.IconCategory `json:"icon"`
	HumidityPct         int                    `json:"humidityPct"`
	PressureHPa         int                    `json:"pressureHPa"`
	WindSpeedKmh        int                    `json:"windSpeedKmh"`
	VisibilityKm        float64                `json:"visibilityKm"`
}

// ForecastCard is one card of the forecast strip.
type ForecastCard struct {
	Date        string                 `json:"date"`
	Description string                 `json:"description"`
	Icon        condition.IconCategory `json:"icon"`
	TempMax     int                    `json:"tempMax"`
	TempMin     int                    `json:"tempMin"`
}

// TransientError is the user-facing error region content. It clears itself
// after a few seconds or on the next successful action.
type TransientError struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// DashboardView is the full rendered output of a session for one unit
// preference and theme. Current and Forecast are nil outside the displaying
// state; Forecast holds exactly five cards when present.
type DashboardView struct {
	State    SessionState             `json:"state"`
	Theme    theme.Mode               `json:"theme"`
	Unit     entity.UnitPreference    `json:"unit"`
	Location *entity.ResolvedLocation `json:"location,omitempty"`
	Current  *CurrentPanel            `json:"current,omitempty"`
	Forecast []ForecastCard           `json:"forecast,omitempty"`
	Error    *TransientError          `json:"error,omitempty"`
}

package entity

import "time"

// Coordinates is a WGS84 latitude/longitude pair.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid reports whether both components are inside their allowed ranges.
func (c Coordinates) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 && c.Longitude >= -180 && c.Longitude <= 180
}

// ResolvedLocation is the outcome of geocoding a query or accepting device
// coordinates. Immutable once produced.
type ResolvedLocation struct {
	Coordinates Coordinates `json:"coordinates"`
	DisplayName string      `json:"displayName"`
	Country     string      `json:"country,omitempty"`
}

// CurrentObservation holds the current conditions of a session. All values are
// stored in canonical units (Celsius, hPa, km/h, meters).
type CurrentObservation struct {
	TemperatureC         float64 `json:"temperatureC"`
	ApparentTemperatureC float64 `json:"apparentTemperatureC"`
	HumidityPct          int     `json:"humidityPct"`
	ConditionCode        int     `json:"conditionCode"`
	PressureHPa          float64 `json:"pressureHPa"`
	WindSpeedKmh         float64 `json:"windSpeedKmh"`
	VisibilityM          float64 `json:"visibilityM"`
}

// DailyForecast is one day of the forecast window, index 0 being today.
type DailyForecast struct {
	Date          string    `json:"date"`
	ConditionCode int       `json:"conditionCode"`
	TempMaxC      float64   `json:"tempMaxC"`
	TempMinC      float64   `json:"tempMinC"`
	Sunrise       time.Time `json:"sunrise"`
	Sunset        time.Time `json:"sunset"`
}

// WeatherSession is the latest successfully fetched result set. It is replaced
// wholesale on every successful fetch and never partially mutated.
type WeatherSession struct {
	Current   CurrentObservation `json:"current"`
	Daily     []DailyForecast    `json:"daily"`
	Location  ResolvedLocation   `json:"location"`
	FetchedAt time.Time          `json:"fetchedAt"`
}

package external

// GeocodingSearchResponse represents the geocoding search API response. An
// unmatched query comes back with an empty or absent results array.
type GeocodingSearchResponse struct {
	Results []GeocodingResult `json:"results"`
}

// GeocodingResult represents a single geocoding match, best match first.
type GeocodingResult struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Name      string  `json:"name"`
	Country   string  `json:"country"`
}

// ForecastResponse represents the forecast API response. Current is a pointer
// so a payload without a current section can be told apart from zero values.
type ForecastResponse struct {
	Current *CurrentConditionsDTO `json:"current"`
	Daily   DailyForecastDTO      `json:"daily"`
}

// CurrentConditionsDTO represents the current conditions block.
type CurrentConditionsDTO struct {
	Temperature2m       float64 `json:"temperature_2m"`
	RelativeHumidity2m  int     `json:"relative_humidity_2m"`
	ApparentTemperature float64 `json:"apparent_temperature"`
	Weathercode         int     `json:"weathercode"`
	SurfacePressure     float64 `json:"surface_pressure"`
	Windspeed10m        float64 `json:"windspeed_10m"`
	Visibility          float64 `json:"visibility"`
}

// DailyForecastDTO represents the daily block as parallel arrays keyed by the
// time array.
type DailyForecastDTO struct {
	Time             []string  `json:"time"`
	Weathercode      []int     `json:"weathercode"`
	Temperature2mMax []float64 `json:"temperature_2m_max"`
	Temperature2mMin []float64 `json:"temperature_2m_min"`
	Sunrise          []string  `json:"sunrise"`
	Sunset           []string  `json:"sunset"`
}

// APIErrorResponse represents error responses from the weather service.
type APIErrorResponse struct {
	Error  bool   `json:"error"`
	Reason string `json:"reason"`
}

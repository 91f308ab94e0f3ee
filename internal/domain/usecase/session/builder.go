package session

import (
	"fmt"
	"time"

	"skycast/internal/domain/entity"
	"skycast/internal/domain/model"
	"skycast/internal/domain/model/external"
)

// buildSession converts a forecast payload into a session. A payload without
// a current section is invalid; daily arrays are zipped up to the shortest
// present length so a ragged payload degrades instead of panicking.
func buildSession(resp *external.ForecastResponse, loc entity.ResolvedLocation, fetchedAt time.Time) (*entity.WeatherSession, error) {
	if resp == nil || resp.Current == nil {
		return nil, fmt.Errorf("%w: missing current section", model.ErrInvalidPayload)
	}

	current := entity.CurrentObservation{
		TemperatureC:         resp.Current.Temperature2m,
		ApparentTemperatureC: resp.Current.ApparentTemperature,
		HumidityPct:          resp.Current.RelativeHumidity2m,
		ConditionCode:        resp.Current.Weathercode,
		PressureHPa:          resp.Current.SurfacePressure,
		WindSpeedKmh:         resp.Current.Windspeed10m,
		VisibilityM:          resp.Current.Visibility,
	}

	daily := make([]entity.DailyForecast, 0, len(resp.Daily.Time))
	for i, date := range resp.Daily.Time {
		entry := entity.DailyForecast{Date: date}
		if i < len(resp.Daily.Weathercode) {
			entry.ConditionCode = resp.Daily.Weathercode[i]
		}
		if i < len(resp.Daily.Temperature2mMax) {
			entry.TempMaxC = resp.Daily.Temperature2mMax[i]
		}
		if i < len(resp.Daily.Temperature2mMin) {
			entry.TempMinC = resp.Daily.Temperature2mMin[i]
		}
		if i < len(resp.Daily.Sunrise) {
			entry.Sunrise = parseLocalTime(resp.Daily.Sunrise[i])
		}
		if i < len(resp.Daily.Sunset) {
			entry.Sunset = parseLocalTime(resp.Daily.Sunset[i])
		}
		daily = append(daily, entry)
	}

	return &entity.WeatherSession{
		Current:   current,
		Daily:     daily,
		Location:  loc,
		FetchedAt: fetchedAt,
	}, nil
}

// parseLocalTime handles the upstream's zone-less ISO8601 minutes format with
// an RFC3339 fallback. Zone-less values parse as UTC, so theme evaluation
// against the server clock is skewed by the location's UTC offset. Unparseable
// values become the zero time, which the theme evaluation treats as missing.
func parseLocalTime(value string) time.Time {
	for _, layout := range []string{"2006-01-02T15:04", time.RFC3339} {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts
		}
	}
	return time.Time{}
}

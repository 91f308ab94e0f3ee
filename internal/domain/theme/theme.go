package theme

import "time"

// Mode is the day/night visual treatment applied to the whole view.
type Mode string

const (
	ModeDay   Mode = "day"
	ModeNight Mode = "night"
)

// IsDaytime reports whether now falls inside the daylight window. The sunset
// bound is exclusive: now == sunset counts as night.
func IsDaytime(now, sunrise, sunset time.Time) bool {
	return !now.Before(sunrise) && now.Before(sunset)
}

// FallbackIsDaytime approximates daylight from the local wall-clock hour when
// no sunrise/sunset data exists yet (before the first successful fetch).
func FallbackIsDaytime(now time.Time) bool {
	hour := now.Hour()
	return hour >= 6 && hour < 18
}

// Evaluate picks the mode for the given instant and daylight window.
func Evaluate(now, sunrise, sunset time.Time) Mode {
	if IsDaytime(now, sunrise, sunset) {
		return ModeDay
	}
	return ModeNight
}

// EvaluateFallback picks the mode from the wall clock alone.
func EvaluateFallback(now time.Time) Mode {
	if FallbackIsDaytime(now) {
		return ModeDay
	}
	return ModeNight
}

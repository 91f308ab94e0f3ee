package entity

// UnitPreference selects the temperature unit used for display. It never
// affects fetching or storage, which stay in Celsius.
type UnitPreference string

const (
	UnitCelsius    UnitPreference = "celsius"
	UnitFahrenheit UnitPreference = "fahrenheit"
)

// ParseUnitPreference validates a raw unit string.
func ParseUnitPreference(raw string) (UnitPreference, bool) {
	switch UnitPreference(raw) {
	case UnitCelsius:
		return UnitCelsius, true
	case UnitFahrenheit:
		return UnitFahrenheit, true
	}
	return "", false
}

package temputils

import "math"

// ToFahrenheit converts a Celsius temperature to Fahrenheit.
func ToFahrenheit(celsius float64) float64 {
	return celsius*9/5 + 32
}

// DisplayRound rounds a temperature to the nearest whole degree for display.
func DisplayRound(value float64) int {
	return int(math.Round(value))
}

package condition

// Code is the WMO weathercode reported by the forecast service.
type Code int

// IconCategory is the icon bucket a weathercode renders with.
type IconCategory string

const (
	IconSun       IconCategory = "sun"
	IconCloudSun  IconCategory = "cloud-sun"
	IconCloud     IconCategory = "cloud"
	IconFog       IconCategory = "fog"
	IconRain      IconCategory = "rain"
	IconHeavyRain IconCategory = "heavy-rain"
	IconSnow      IconCategory = "snow"
	IconThunder   IconCategory = "thunder"
	IconUnknown   IconCategory = "unknown"
)

// AnimationCategory is the decorative visual treatment bucket a weathercode
// maps to.
type AnimationCategory string

const (
	AnimationClear   AnimationCategory = "clear"
	AnimationCloudy  AnimationCategory = "cloudy"
	AnimationRain    AnimationCategory = "rain"
	AnimationSnow    AnimationCategory = "snow"
	AnimationThunder AnimationCategory = "thunder"
	AnimationFog     AnimationCategory = "fog"
)

// Info is the presentation triple derived from a weathercode.
type Info struct {
	Description string            `json:"description"`
	Icon        IconCategory      `json:"icon"`
	Animation   AnimationCategory `json:"animation"`
}

// Lookup maps a weathercode to its presentation info. Total over all integers:
// codes outside the documented WMO enumeration fall back to an unknown entry
// with the clear animation.
func Lookup(code Code) Info {
	switch code {
	case 0:
		return Info{Description: "Clear sky", Icon: IconSun, Animation: AnimationClear}
	case 1:
		return Info{Description: "Mainly clear", Icon: IconSun, Animation: AnimationClear}
	case 2:
		return Info{Description: "Partly cloudy", Icon: IconCloudSun, Animation: AnimationCloudy}
	case 3:
		return Info{Description: "Overcast", Icon: IconCloud, Animation: AnimationCloudy}
	case 45:
		return Info{Description: "Fog", Icon: IconFog, Animation: AnimationFog}
	case 48:
		return Info{Description: "Depositing rime fog", Icon: IconFog, Animation: AnimationFog}
	case 51:
		return Info{Description: "Light drizzle", Icon: IconRain, Animation: AnimationRain}
	case 53:
		return Info{Description: "Moderate drizzle", Icon: IconRain, Animation: AnimationRain}
	case 55:
		return Info{Description: "Dense drizzle", Icon: IconRain, Animation: AnimationRain}
	case 56:
		return Info{Description: "Light freezing drizzle", Icon: IconRain, Animation: AnimationRain}
	case 57:
		return Info{Description: "Dense freezing drizzle", Icon: IconRain, Animation: AnimationRain}
	case 61:
		return Info{Description: "Slight rain", Icon: IconRain, Animation: AnimationRain}
	case 63:
		return Info{Description: "Moderate rain", Icon: IconRain, Animation: AnimationRain}
	case 65:
		return Info{Description: "Heavy rain", Icon: IconHeavyRain, Animation: AnimationRain}
	case 66:
		return Info{Description: "Light freezing rain", Icon: IconRain, Animation: AnimationRain}
	case 67:
		return Info{Description: "Heavy freezing rain", Icon: IconHeavyRain, Animation: AnimationRain}
	case 71:
		return Info{Description: "Slight snowfall", Icon: IconSnow, Animation: AnimationSnow}
	case 73:
		return Info{Description: "Moderate snowfall", Icon: IconSnow, Animation: AnimationSnow}
	case 75:
		return Info{Description: "Heavy snowfall", Icon: IconSnow, Animation: AnimationSnow}
	case 77:
		return Info{Description: "Snow grains", Icon: IconSnow, Animation: AnimationSnow}
	case 80:
		return Info{Description: "Slight rain showers", Icon: IconRain, Animation: AnimationRain}
	case 81:
		return Info{Description: "Moderate rain showers", Icon: IconRain, Animation: AnimationRain}
	case 82:
		return Info{Description: "Violent rain showers", Icon: IconHeavyRain, Animation: AnimationRain}
	case 85:
		return Info{Description: "Slight snow showers", Icon: IconSnow, Animation: AnimationSnow}
	case 86:
		return Info{Description: "Heavy snow showers", Icon: IconSnow, Animation: AnimationSnow}
	case 95:
		return Info{Description: "Thunderstorm", Icon: IconThunder, Animation: AnimationThunder}
	case 96:
		return Info{Description: "Thunderstorm with slight hail", Icon: IconThunder, Animation: AnimationThunder}
	case 99:
		return Info{Description: "Thunderstorm with heavy hail", Icon: IconThunder, Animation: AnimationThunder}
	default:
		return Info{Description: "Unknown", Icon: IconUnknown, Animation: AnimationClear}
	}
}

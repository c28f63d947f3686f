package weather

// Info is the display pair for a WMO weather condition code.
type Info struct {
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// weatherCodes maps WMO condition codes to display info. The table is fixed;
// unknown codes fall back to unknownInfo.
var weatherCodes = map[int]Info{
	0:  {Icon: "☀️", Description: "Clear sky"},
	1:  {Icon: "🌤️", Description: "Mainly clear"},
	2:  {Icon: "⛅", Description: "Partly cloudy"},
	3:  {Icon: "☁️", Description: "Overcast"},
	45: {Icon: "🌫️", Description: "Foggy"},
	48: {Icon: "🌫️", Description: "Depositing rime fog"},
	51: {Icon: "🌧️", Description: "Light drizzle"},
	53: {Icon: "🌧️", Description: "Moderate drizzle"},
	55: {Icon: "🌧️", Description: "Dense drizzle"},
	61: {Icon: "🌧️", Description: "Slight rain"},
	63: {Icon: "🌧️", Description: "Moderate rain"},
	65: {Icon: "🌧️", Description: "Heavy rain"},
	71: {Icon: "🌨️", Description: "Slight snow"},
	73: {Icon: "🌨️", Description: "Moderate snow"},
	75: {Icon: "❄️", Description: "Heavy snow"},
	77: {Icon: "🌨️", Description: "Snow grains"},
	80: {Icon: "🌦️", Description: "Slight showers"},
	81: {Icon: "🌦️", Description: "Moderate showers"},
	82: {Icon: "⛈️", Description: "Violent showers"},
	85: {Icon: "🌨️", Description: "Slight snow showers"},
	86: {Icon: "🌨️", Description: "Heavy snow showers"},
	95: {Icon: "⛈️", Description: "Thunderstorm"},
	96: {Icon: "⛈️", Description: "Thunderstorm with hail"},
	99: {Icon: "⛈️", Description: "Thunderstorm with heavy hail"},
}

var unknownInfo = Info{Icon: "🌡️", Description: "Unknown"}

// GetWeatherInfo returns the display pair for a condition code, with a
// defined fallback for unrecognised codes.
func GetWeatherInfo(code int) Info {
	if info, ok := weatherCodes[code]; ok {
		return info
	}
	return unknownInfo
}

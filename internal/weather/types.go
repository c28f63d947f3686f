package weather

import "time"

// Units for temperature values.
const (
	UnitsCelsius    = "celsius"
	UnitsFahrenheit = "fahrenheit"
)

// ValidUnits reports whether the given unit preference is supported.
func ValidUnits(units string) bool {
	return units == UnitsCelsius || units == UnitsFahrenheit
}

// Current holds the current conditions block of a forecast response.
type Current struct {
	Time                string  `json:"time"`
	Temperature         float64 `json:"temperature_2m"`
	Humidity            float64 `json:"relative_humidity_2m"`
	ApparentTemperature float64 `json:"apparent_temperature"`
	WeatherCode         int     `json:"weather_code"`
	CloudCover          float64 `json:"cloud_cover"`
	WindSpeed           float64 `json:"wind_speed_10m"`
	UVIndex             float64 `json:"uv_index"`
	Visibility          float64 `json:"visibility"`
}

// Hourly holds the hourly series of a forecast response, keyed by ISO-8601
// timestamps.
type Hourly struct {
	Time        []string  `json:"time"`
	Temperature []float64 `json:"temperature_2m"`
}

// Daily holds the daily series of a forecast response.
type Daily struct {
	Time           []string  `json:"time"`
	WeatherCode    []int     `json:"weather_code"`
	TemperatureMax []float64 `json:"temperature_2m_max"`
	TemperatureMin []float64 `json:"temperature_2m_min"`
}

// Forecast is the decoded forecast provider response.
type Forecast struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"`
	Current   Current `json:"current"`
	Hourly    Hourly  `json:"hourly"`
	Daily     Daily   `json:"daily"`
}

// AirQuality is the decoded air-quality provider response: the US AQI
// scalar plus particulate values.
type AirQuality struct {
	USAQI float64 `json:"us_aqi"`
	PM25  float64 `json:"pm2_5"`
	PM10  float64 `json:"pm10"`
}

// Location is a geocoding result: the best match for a free-text query.
type Location struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Country   string  `json:"country"`
}

// Dashboard is the assembled weather view served to clients. AirQuality is
// nil when the secondary provider failed; the view still renders.
type Dashboard struct {
	Location   string      `json:"location"`
	Latitude   float64     `json:"latitude"`
	Longitude  float64     `json:"longitude"`
	Units      string      `json:"units"`
	Condition  Info        `json:"condition"`
	Forecast   *Forecast   `json:"forecast"`
	AirQuality *AirQuality `json:"airQuality,omitempty"`
	FetchedAt  time.Time   `json:"fetchedAt"`
}

package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jayramanidev/portfolio/internal/config"
	"github.com/jayramanidev/portfolio/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(forecastURL, airQualityURL, geocodeURL string) *Client {
	return NewClient(config.WeatherConfig{
		ForecastURL:    forecastURL,
		AirQualityURL:  airQualityURL,
		GeocodeURL:     geocodeURL,
		TimeoutSeconds: 5,
	}, zerolog.Nop())
}

func TestClient_Forecast(t *testing.T) {
	t.Run("requests the expected fields", func(t *testing.T) {
		var gotQuery map[string]string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			gotQuery = map[string]string{
				"latitude":         q.Get("latitude"),
				"longitude":        q.Get("longitude"),
				"current":          q.Get("current"),
				"hourly":           q.Get("hourly"),
				"daily":            q.Get("daily"),
				"timezone":         q.Get("timezone"),
				"temperature_unit": q.Get("temperature_unit"),
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"latitude": 40.71,
				"longitude": -74.01,
				"timezone": "America/New_York",
				"current": {
					"time": "2025-06-01T12:00",
					"temperature_2m": 21.5,
					"relative_humidity_2m": 60,
					"apparent_temperature": 22.1,
					"weather_code": 2,
					"cloud_cover": 40,
					"wind_speed_10m": 12.3,
					"uv_index": 5.2,
					"visibility": 24140
				},
				"hourly": {"time": ["2025-06-01T12:00"], "temperature_2m": [21.5]},
				"daily": {
					"time": ["2025-06-01"],
					"weather_code": [2],
					"temperature_2m_max": [24.0],
					"temperature_2m_min": [15.0]
				}
			}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL, server.URL, server.URL)
		forecast, err := client.Forecast(context.Background(), 40.7128, -74.0060, UnitsCelsius)
		require.NoError(t, err)

		assert.Equal(t, "40.7128", gotQuery["latitude"])
		assert.Equal(t, "-74.0060", gotQuery["longitude"])
		assert.Contains(t, gotQuery["current"], "weather_code")
		assert.Contains(t, gotQuery["current"], "uv_index")
		assert.Contains(t, gotQuery["current"], "visibility")
		assert.Equal(t, "temperature_2m", gotQuery["hourly"])
		assert.Contains(t, gotQuery["daily"], "temperature_2m_max")
		assert.Equal(t, "auto", gotQuery["timezone"])
		assert.Empty(t, gotQuery["temperature_unit"], "celsius is the provider default")

		assert.Equal(t, 21.5, forecast.Current.Temperature)
		assert.Equal(t, 2, forecast.Current.WeatherCode)
		assert.Equal(t, "America/New_York", forecast.Timezone)
		assert.Equal(t, []float64{24.0}, forecast.Daily.TemperatureMax)
	})

	t.Run("fahrenheit sets the unit", func(t *testing.T) {
		var gotUnit string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUnit = r.URL.Query().Get("temperature_unit")
			w.Write([]byte(`{"current": {"temperature_2m": 70.7, "weather_code": 0}}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL, server.URL, server.URL)
		_, err := client.Forecast(context.Background(), 40.71, -74.01, UnitsFahrenheit)
		require.NoError(t, err)
		assert.Equal(t, "fahrenheit", gotUnit)
	})

	t.Run("non-200 status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		client := newTestClient(server.URL, server.URL, server.URL)
		_, err := client.Forecast(context.Background(), 40.71, -74.01, UnitsCelsius)
		assert.ErrorContains(t, err, "weather data unavailable")
	})

	t.Run("malformed body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not json`))
		}))
		defer server.Close()

		client := newTestClient(server.URL, server.URL, server.URL)
		_, err := client.Forecast(context.Background(), 40.71, -74.01, UnitsCelsius)
		assert.Error(t, err)
	})
}

func TestClient_AirQuality(t *testing.T) {
	t.Run("decodes nested current block", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "us_aqi,pm2_5,pm10", r.URL.Query().Get("current"))
			w.Write([]byte(`{"current": {"us_aqi": 42, "pm2_5": 9.1, "pm10": 17.4}}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL, server.URL, server.URL)
		aqi, err := client.AirQuality(context.Background(), 40.71, -74.01)
		require.NoError(t, err)

		assert.Equal(t, 42.0, aqi.USAQI)
		assert.Equal(t, 9.1, aqi.PM25)
		assert.Equal(t, 17.4, aqi.PM10)
	})

	t.Run("upstream failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := newTestClient(server.URL, server.URL, server.URL)
		_, err := client.AirQuality(context.Background(), 40.71, -74.01)
		assert.ErrorContains(t, err, "air quality unavailable")
	})
}

func TestClient_Geocode(t *testing.T) {
	t.Run("best match", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Tokyo", r.URL.Query().Get("name"))
			assert.Equal(t, "1", r.URL.Query().Get("count"))
			w.Write([]byte(`{"results": [{"name": "Tokyo", "latitude": 35.68, "longitude": 139.69, "country": "Japan"}]}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL, server.URL, server.URL)
		loc, err := client.Geocode(context.Background(), "Tokyo")
		require.NoError(t, err)

		assert.Equal(t, "Tokyo", loc.Name)
		assert.Equal(t, 35.68, loc.Latitude)
		assert.Equal(t, "Japan", loc.Country)
	})

	t.Run("no results", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL, server.URL, server.URL)
		_, err := client.Geocode(context.Background(), "Atlantis")
		assert.ErrorIs(t, err, model.ErrCityNotFound)
	})
}

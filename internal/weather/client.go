package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/jayramanidev/portfolio/internal/config"
	"github.com/jayramanidev/portfolio/internal/model"

	"github.com/rs/zerolog"
)

// Provider fetches weather data from the upstream services. Every call is a
// single attempt with no retry; recovery is the caller's concern.
type Provider interface {
	Forecast(ctx context.Context, lat, lon float64, units string) (*Forecast, error)
	AirQuality(ctx context.Context, lat, lon float64) (*AirQuality, error)
	Geocode(ctx context.Context, query string) (*Location, error)
}

// Client is the HTTP implementation of Provider against the Open-Meteo
// family of endpoints.
type Client struct {
	httpClient    *http.Client
	forecastURL   string
	airQualityURL string
	geocodeURL    string
	logger        zerolog.Logger
}

// NewClient creates a weather provider client.
func NewClient(cfg config.WeatherConfig, logger zerolog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
		forecastURL:   cfg.ForecastURL,
		airQualityURL: cfg.AirQualityURL,
		geocodeURL:    cfg.GeocodeURL,
		logger:        logger.With().Str("component", "weather-client").Logger(),
	}
}

// Forecast fetches current plus hourly and daily conditions for a
// coordinate pair.
func (c *Client) Forecast(ctx context.Context, lat, lon float64, units string) (*Forecast, error) {
	params := url.Values{}
	params.Set("latitude", formatCoord(lat))
	params.Set("longitude", formatCoord(lon))
	params.Set("current", "temperature_2m,relative_humidity_2m,apparent_temperature,weather_code,cloud_cover,wind_speed_10m,uv_index,visibility")
	params.Set("hourly", "temperature_2m")
	params.Set("daily", "weather_code,temperature_2m_max,temperature_2m_min")
	params.Set("timezone", "auto")
	if units == UnitsFahrenheit {
		params.Set("temperature_unit", "fahrenheit")
	}

	var forecast Forecast
	if err := c.getJSON(ctx, c.forecastURL, params, &forecast); err != nil {
		c.logger.Error().Err(err).
			Float64("lat", lat).
			Float64("lon", lon).
			Msg("forecast request failed")
		return nil, fmt.Errorf("weather data unavailable: %w", err)
	}

	return &forecast, nil
}

// AirQuality fetches the current US AQI and particulate values for a
// coordinate pair.
func (c *Client) AirQuality(ctx context.Context, lat, lon float64) (*AirQuality, error) {
	params := url.Values{}
	params.Set("latitude", formatCoord(lat))
	params.Set("longitude", formatCoord(lon))
	params.Set("current", "us_aqi,pm2_5,pm10")

	// The provider nests the values under "current".
	var payload struct {
		Current AirQuality `json:"current"`
	}
	if err := c.getJSON(ctx, c.airQualityURL, params, &payload); err != nil {
		c.logger.Warn().Err(err).
			Float64("lat", lat).
			Float64("lon", lon).
			Msg("air quality request failed")
		return nil, fmt.Errorf("air quality unavailable: %w", err)
	}

	return &payload.Current, nil
}

// Geocode resolves a free-text place name to its best-match location.
func (c *Client) Geocode(ctx context.Context, query string) (*Location, error) {
	params := url.Values{}
	params.Set("name", query)
	params.Set("count", "1")

	var payload struct {
		Results []Location `json:"results"`
	}
	if err := c.getJSON(ctx, c.geocodeURL, params, &payload); err != nil {
		c.logger.Error().Err(err).Str("query", query).Msg("geocoding request failed")
		return nil, fmt.Errorf("geocoding unavailable: %w", err)
	}

	if len(payload.Results) == 0 {
		return nil, model.ErrCityNotFound
	}

	return &payload.Results[0], nil
}

// getJSON performs one GET round trip and decodes the JSON body into out.
func (c *Client) getJSON(ctx context.Context, base string, params url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, base)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

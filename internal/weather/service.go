package weather

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Service assembles weather dashboards: forecast and air quality are
// fetched concurrently, air-quality failure degrades gracefully, and
// results are cached for the configured freshness window.
type Service struct {
	provider Provider
	cache    *Cache
	logger   zerolog.Logger
}

// NewService creates a weather dashboard service.
func NewService(provider Provider, cache *Cache, logger zerolog.Logger) *Service {
	return &Service{
		provider: provider,
		cache:    cache,
		logger:   logger.With().Str("service", "weather").Logger(),
	}
}

// ByCity resolves the city name and returns its dashboard. An unknown city
// surfaces as a domain error.
func (s *Service) ByCity(ctx context.Context, city, units string) (*Dashboard, error) {
	loc, err := s.provider.Geocode(ctx, city)
	if err != nil {
		return nil, err
	}

	return s.ByCoordinates(ctx, loc.Latitude, loc.Longitude, units, loc.Name)
}

// ByCoordinates returns the dashboard for a coordinate pair. locationName
// may be empty, in which case the coordinates are displayed.
func (s *Service) ByCoordinates(ctx context.Context, lat, lon float64, units, locationName string) (*Dashboard, error) {
	key := Key(lat, lon, units)
	if cached, ok := s.cache.Get(key); ok {
		s.logger.Debug().Str("key", key).Msg("dashboard served from cache")
		return cached, nil
	}

	// Forecast and air quality are independent round trips; issue both at
	// once. The forecast is required, the AQI is optional.
	var (
		wg          sync.WaitGroup
		forecast    *Forecast
		forecastErr error
		airQuality  *AirQuality
		airErr      error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		forecast, forecastErr = s.provider.Forecast(ctx, lat, lon, units)
	}()
	go func() {
		defer wg.Done()
		airQuality, airErr = s.provider.AirQuality(ctx, lat, lon)
	}()
	wg.Wait()

	if forecastErr != nil {
		return nil, forecastErr
	}
	if airErr != nil {
		// Degrade: the dashboard renders without AQI.
		s.logger.Warn().Err(airErr).Msg("air quality unavailable, serving dashboard without AQI")
		airQuality = nil
	}

	if locationName == "" {
		locationName = fmt.Sprintf("%.2f°, %.2f°", lat, lon)
	}

	dashboard := &Dashboard{
		Location:   locationName,
		Latitude:   lat,
		Longitude:  lon,
		Units:      units,
		Condition:  GetWeatherInfo(forecast.Current.WeatherCode),
		Forecast:   forecast,
		AirQuality: airQuality,
		FetchedAt:  time.Now(),
	}

	s.cache.Put(key, dashboard)

	s.logger.Info().
		Str("location", locationName).
		Str("units", units).
		Bool("aqi_available", airQuality != nil).
		Msg("dashboard assembled")

	return dashboard, nil
}

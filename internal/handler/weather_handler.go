package handler

import (
	"net/http"
	"strconv"

	"github.com/jayramanidev/portfolio/internal/weather"

	"github.com/rs/zerolog"
)

// WeatherHandler handles the weather dashboard endpoint.
type WeatherHandler struct {
	weather *weather.Service
	logger  zerolog.Logger
}

// NewWeatherHandler creates a new weather handler.
func NewWeatherHandler(svc *weather.Service, logger zerolog.Logger) *WeatherHandler {
	return &WeatherHandler{
		weather: svc,
		logger:  logger.With().Str("handler", "weather").Logger(),
	}
}

// Get handles GET /api/weather. Either city or lat+lon must be supplied;
// units defaults to celsius.
func (h *WeatherHandler) Get(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	units := query.Get("units")
	if units == "" {
		units = weather.UnitsCelsius
	}
	if !weather.ValidUnits(units) {
		writeError(w, http.StatusBadRequest, "units must be celsius or fahrenheit", h.logger)
		return
	}

	if city := query.Get("city"); city != "" {
		dashboard, err := h.weather.ByCity(r.Context(), city, units)
		if err != nil {
			h.respondError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, dashboard)
		return
	}

	latStr, lonStr := query.Get("lat"), query.Get("lon")
	if latStr == "" || lonStr == "" {
		writeError(w, http.StatusBadRequest, "city or lat/lon is required", h.logger)
		return
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid lat parameter", h.logger)
		return
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid lon parameter", h.logger)
		return
	}

	dashboard, err := h.weather.ByCoordinates(r.Context(), lat, lon, units, "")
	if err != nil {
		h.respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dashboard)
}

func (h *WeatherHandler) respondError(w http.ResponseWriter, err error) {
	if domainErr := asDomainError(err); domainErr != nil {
		writeError(w, statusForDomainError(domainErr), domainErr.Message, h.logger)
		return
	}
	writeError(w, http.StatusBadGateway, "weather data unavailable", h.logger)
}

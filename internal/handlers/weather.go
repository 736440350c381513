package handlers

import (
	"strconv"

	"github.com/dimitrije/kisan-api/internal/services"
	"github.com/dimitrije/kisan-api/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
	"go.uber.org/zap"
)

type WeatherHandler struct {
	weatherService WeatherServiceInterface
	logger         *zap.Logger
}

func NewWeatherHandler(weatherService WeatherServiceInterface, logger *zap.Logger) *WeatherHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WeatherHandler{weatherService: weatherService, logger: logger}
}

func (h *WeatherHandler) Current(c *drift.Context) {
	resp, err := h.weatherService.Current(c.Request.Context(), c.QueryParam("location"))
	if err != nil {
		h.logger.Error("weather lookup failed", zap.Error(err))
		c.InternalServerError("failed to get weather")
		return
	}

	_ = c.JSON(200, resp)
}

func (h *WeatherHandler) Forecast(c *drift.Context) {
	days := services.DefaultForecastDays
	if raw := c.QueryParam("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.BadRequest("days must be an integer")
			return
		}
		days = parsed
	}

	_ = c.JSON(200, h.weatherService.Forecast(c.QueryParam("location"), days))
}

func (h *WeatherHandler) Locations(c *drift.Context) {
	_ = c.JSON(200, dto.LocationsResponse{Locations: h.weatherService.Locations()})
}

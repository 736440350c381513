package dto

import "github.com/dimitrije/kisan-api/internal/models"

type MessageResponse struct {
	Message string `json:"message"`
}

type WeatherResponse struct {
	Location string                `json:"location"`
	Current  models.CurrentWeather `json:"current"`
	Forecast []models.ForecastDay  `json:"forecast"`
}

type ForecastResponse struct {
	Location string               `json:"location"`
	Forecast []models.ForecastDay `json:"forecast"`
	Days     int                  `json:"days"`
}

type LocationsResponse struct {
	Locations []string `json:"locations"`
}

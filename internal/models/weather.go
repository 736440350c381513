package models

import "time"

type CurrentWeather struct {
	Temperature    int    `json:"temperature"`
	Humidity       int    `json:"humidity"`
	WindSpeed      int    `json:"windSpeed"`
	Condition      string `json:"condition"`
	ConditionHindi string `json:"conditionHindi"`
}

type ForecastDay struct {
	Day            string `json:"day"`
	DayHindi       string `json:"dayHindi"`
	High           int    `json:"high"`
	Low            int    `json:"low"`
	Condition      string `json:"condition"`
	ConditionHindi string `json:"conditionHindi"`
}

type WeatherData struct {
	Current  CurrentWeather `json:"current"`
	Forecast []ForecastDay  `json:"forecast"`
}

// WeatherSnapshot is what gets written to the weather cache collection.
type WeatherSnapshot struct {
	CacheKey  string      `json:"cache_key"`
	Location  string      `json:"location"`
	Data      WeatherData `json:"data"`
	UpdatedAt time.Time   `json:"updated_at"`
	ExpiresAt time.Time   `json:"expires_at"`
}

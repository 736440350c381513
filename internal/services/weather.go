package services

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/dimitrije/kisan-api/internal/models"
	"github.com/dimitrije/kisan-api/internal/store"
	"github.com/dimitrije/kisan-api/pkg/dto"
)

const (
	DefaultWeatherLocation = "Delhi"
	DefaultForecastDays    = 7

	weatherCacheTTL = time.Hour
)

var mockLocations = []string{"Delhi", "Mumbai"}

var mockWeather = map[string]models.WeatherData{
	"Delhi": {
		Current: models.CurrentWeather{Temperature: 28, Humidity: 65, WindSpeed: 12, Condition: "Partly Cloudy", ConditionHindi: "आंशिक बादल"},
		Forecast: []models.ForecastDay{
			{Day: "Today", DayHindi: "आज", High: 30, Low: 22, Condition: "Sunny", ConditionHindi: "धूप"},
			{Day: "Tomorrow", DayHindi: "कल", High: 28, Low: 20, Condition: "Cloudy", ConditionHindi: "बादल"},
			{Day: "Day 3", DayHindi: "तीसरा दिन", High: 25, Low: 18, Condition: "Rain", ConditionHindi: "बारिश"},
			{Day: "Day 4", DayHindi: "चौथा दिन", High: 27, Low: 19, Condition: "Partly Cloudy", ConditionHindi: "आंशिक बादल"},
			{Day: "Day 5", DayHindi: "पांचवा दिन", High: 29, Low: 21, Condition: "Sunny", ConditionHindi: "धूप"},
			{Day: "Day 6", DayHindi: "छठा दिन", High: 31, Low: 23, Condition: "Hot", ConditionHindi: "गर्म"},
			{Day: "Day 7", DayHindi: "सातवां दिन", High: 26, Low: 20, Condition: "Rain", ConditionHindi: "बारिश"},
		},
	},
	"Mumbai": {
		Current: models.CurrentWeather{Temperature: 32, Humidity: 75, WindSpeed: 15, Condition: "Hot", ConditionHindi: "गर्म"},
		Forecast: []models.ForecastDay{
			{Day: "Today", DayHindi: "आज", High: 33, Low: 26, Condition: "Hot", ConditionHindi: "गर्म"},
			{Day: "Tomorrow", DayHindi: "कल", High: 31, Low: 25, Condition: "Partly Cloudy", ConditionHindi: "आंशिक बादल"},
			{Day: "Day 3", DayHindi: "तीसरा दिन", High: 29, Low: 24, Condition: "Rain", ConditionHindi: "बारिश"},
			{Day: "Day 4", DayHindi: "चौथा दिन", High: 30, Low: 25, Condition: "Cloudy", ConditionHindi: "बादल"},
			{Day: "Day 5", DayHindi: "पांचवा दिन", High: 32, Low: 26, Condition: "Sunny", ConditionHindi: "धूप"},
			{Day: "Day 6", DayHindi: "छठा दिन", High: 34, Low: 27, Condition: "Hot", ConditionHindi: "गर्म"},
			{Day: "Day 7", DayHindi: "सातवां दिन", High: 28, Low: 23, Condition: "Rain", ConditionHindi: "बारिश"},
		},
	},
}

// WeatherService serves static weather data. Reads of the current weather
// are recorded in the weather cache collection.
type WeatherService struct {
	store           store.Store
	defaultLocation string
	now             func() time.Time
}

func NewWeatherService(st store.Store, defaultLocation string) *WeatherService {
	if _, ok := mockWeather[defaultLocation]; !ok {
		defaultLocation = DefaultWeatherLocation
	}
	return &WeatherService{
		store:           st,
		defaultLocation: defaultLocation,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

func (s *WeatherService) DefaultLocation() string {
	return s.defaultLocation
}

// data returns the dataset and label for location. Unknown locations get the
// default location's data under their own name.
func (s *WeatherService) data(location string) (string, models.WeatherData) {
	if location == "" {
		location = s.defaultLocation
	}
	data, ok := mockWeather[location]
	if !ok {
		data = mockWeather[s.defaultLocation]
	}
	return location, data
}

func (s *WeatherService) Current(ctx context.Context, location string) (*dto.WeatherResponse, error) {
	location, data := s.data(location)

	now := s.now()
	snapshot := models.WeatherSnapshot{
		CacheKey:  CacheKey(location, now),
		Location:  location,
		Data:      data,
		UpdatedAt: now,
		ExpiresAt: now.Add(weatherCacheTTL),
	}
	body, err := json.Marshal(snapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to encode weather snapshot: %w", err)
	}
	if err := s.store.Upsert(ctx, store.WeatherCache, store.Document{ID: snapshot.CacheKey, Body: body}); err != nil {
		return nil, fmt.Errorf("%w: cache weather: %w", ErrStorage, err)
	}

	return &dto.WeatherResponse{
		Location: location,
		Current:  data.Current,
		Forecast: slices.Clone(data.Forecast),
	}, nil
}

// Forecast returns the first days entries of the forecast, clamped to what
// is available.
func (s *WeatherService) Forecast(location string, days int) *dto.ForecastResponse {
	location, data := s.data(location)

	days = min(max(days, 0), len(data.Forecast))
	forecast := slices.Clone(data.Forecast[:days])

	return &dto.ForecastResponse{
		Location: location,
		Forecast: forecast,
		Days:     len(forecast),
	}
}

func (s *WeatherService) Locations() []string {
	return slices.Clone(mockLocations)
}

func CacheKey(location string, at time.Time) string {
	return fmt.Sprintf("weather_%s_%s", location, at.Format("20060102"))
}

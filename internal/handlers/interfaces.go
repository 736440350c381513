package handlers

import (
	"context"

	"github.com/dimitrije/kisan-api/pkg/dto"
)

// RecordService defines the methods used by RecordHandler. It is satisfied by
// services.Repository for every record kind.
type RecordService[E any, C any, U any] interface {
	Kind() string
	Title() string
	Params() []string
	List(ctx context.Context, params map[string]string) ([]E, error)
	Get(ctx context.Context, id string) (E, error)
	Create(ctx context.Context, req C) (E, error)
	Update(ctx context.Context, id string, req U) (E, error)
	Delete(ctx context.Context, id string) error
}

// ChatServiceInterface defines the methods used by handlers from ChatService
type ChatServiceInterface interface {
	Ask(ctx context.Context, question, language string) (*dto.ChatResponse, error)
}

// WeatherServiceInterface defines the methods used by handlers from WeatherService
type WeatherServiceInterface interface {
	Current(ctx context.Context, location string) (*dto.WeatherResponse, error)
	Forecast(location string, days int) *dto.ForecastResponse
	Locations() []string
}

// Pinger is implemented by the document store.
type Pinger interface {
	Ping(ctx context.Context) error
}

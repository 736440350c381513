package testutil

import (
	"context"

	"github.com/dimitrije/kisan-api/pkg/dto"
	"github.com/stretchr/testify/mock"
)

// MockRecordService mocks services.Repository for any record kind
type MockRecordService[E any, C any, U any] struct {
	mock.Mock
	KindName   string
	TitleName  string
	ParamNames []string
}

func (m *MockRecordService[E, C, U]) Kind() string {
	return m.KindName
}

func (m *MockRecordService[E, C, U]) Title() string {
	return m.TitleName
}

func (m *MockRecordService[E, C, U]) Params() []string {
	return m.ParamNames
}

func (m *MockRecordService[E, C, U]) List(ctx context.Context, params map[string]string) ([]E, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]E), args.Error(1)
}

func (m *MockRecordService[E, C, U]) Get(ctx context.Context, id string) (E, error) {
	args := m.Called(ctx, id)
	return record[E](args.Get(0)), args.Error(1)
}

func (m *MockRecordService[E, C, U]) Create(ctx context.Context, req C) (E, error) {
	args := m.Called(ctx, req)
	return record[E](args.Get(0)), args.Error(1)
}

func (m *MockRecordService[E, C, U]) Update(ctx context.Context, id string, req U) (E, error) {
	args := m.Called(ctx, id, req)
	return record[E](args.Get(0)), args.Error(1)
}

func (m *MockRecordService[E, C, U]) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func record[E any](v any) E {
	e, _ := v.(E)
	return e
}

// MockChatService mocks the ChatService
type MockChatService struct {
	mock.Mock
}

func (m *MockChatService) Ask(ctx context.Context, question, language string) (*dto.ChatResponse, error) {
	args := m.Called(ctx, question, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ChatResponse), args.Error(1)
}

// MockWeatherService mocks the WeatherService
type MockWeatherService struct {
	mock.Mock
}

func (m *MockWeatherService) Current(ctx context.Context, location string) (*dto.WeatherResponse, error) {
	args := m.Called(ctx, location)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.WeatherResponse), args.Error(1)
}

func (m *MockWeatherService) Forecast(location string, days int) *dto.ForecastResponse {
	args := m.Called(location, days)
	return args.Get(0).(*dto.ForecastResponse)
}

func (m *MockWeatherService) Locations() []string {
	args := m.Called()
	return args.Get(0).([]string)
}

// MockPinger mocks the store health check
type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

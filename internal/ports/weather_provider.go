package ports

import (
	"context"
	"time"
)

// WeatherQuery identifies the point a provider request is made for
type WeatherQuery struct {
	Latitude  float64
	Longitude float64
	APIKey    string
}

// CurrentConditionsData represents current conditions as returned by a provider
type CurrentConditionsData struct {
	LocationName string
	Temperature  float64
	Description  string
	Icon         string
}

// ForecastSampleData represents one timestamped reading of a forecast feed
type ForecastSampleData struct {
	Timestamp   time.Time
	Temperature float64
	Description string
}

// WeatherProvider defines the contract for weather data providers
type WeatherProvider interface {
	GetCurrentConditions(ctx context.Context, query WeatherQuery) (*CurrentConditionsData, error)
	// GetForecast returns the provider feed in chronological order
	GetForecast(ctx context.Context, query WeatherQuery) ([]ForecastSampleData, error)
	GetIcon(ctx context.Context, icon string) ([]byte, error)
	GetProviderName() string
}

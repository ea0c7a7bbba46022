package ports

import (
	"context"
	"time"
)

// WeatherConfig represents weather provider configuration
type WeatherConfig struct {
	BaseURL     string
	GeoBaseURL  string
	IconBaseURL string
	HTTPTimeout time.Duration
	Location    *time.Location
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Port    int
	GinMode string
}

// FavouritesConfig represents favourites storage configuration
type FavouritesConfig struct {
	Backend  string
	FilePath string
	RedisKey string
}

// ConfigProvider defines the contract for configuration management
type ConfigProvider interface {
	GetWeatherConfig() WeatherConfig
	GetServerConfig() ServerConfig
	GetFavouritesConfig() FavouritesConfig
}

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// MetricsCollector defines the contract for metrics collection
type MetricsCollector interface {
	RecordProviderRequest(ctx context.Context, operation string, success bool, duration time.Duration)
	RecordFavouriteSaved(ctx context.Context)
}

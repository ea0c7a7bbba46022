package external

import (
	"context"
	"time"

	"weatherdesk.app/internal/ports"
)

// Operation labels recorded for provider requests
const (
	OperationCurrent  = "current"
	OperationForecast = "forecast"
	OperationIcon     = "icon"
	OperationGeocode  = "geocode"
)

// WeatherProviderMetricsDecorator records the outcome and latency of every provider call
type WeatherProviderMetricsDecorator struct {
	provider ports.WeatherProvider
	metrics  ports.MetricsCollector
}

// NewWeatherProviderMetricsDecorator creates a new metrics decorator for weather providers
func NewWeatherProviderMetricsDecorator(provider ports.WeatherProvider, metrics ports.MetricsCollector) ports.WeatherProvider {
	return &WeatherProviderMetricsDecorator{provider: provider, metrics: metrics}
}

func (d *WeatherProviderMetricsDecorator) GetCurrentConditions(ctx context.Context, query ports.WeatherQuery) (*ports.CurrentConditionsData, error) {
	start := time.Now()
	data, err := d.provider.GetCurrentConditions(ctx, query)
	d.metrics.RecordProviderRequest(ctx, OperationCurrent, err == nil, time.Since(start))
	return data, err
}

func (d *WeatherProviderMetricsDecorator) GetForecast(ctx context.Context, query ports.WeatherQuery) ([]ports.ForecastSampleData, error) {
	start := time.Now()
	samples, err := d.provider.GetForecast(ctx, query)
	d.metrics.RecordProviderRequest(ctx, OperationForecast, err == nil, time.Since(start))
	return samples, err
}

func (d *WeatherProviderMetricsDecorator) GetIcon(ctx context.Context, icon string) ([]byte, error) {
	start := time.Now()
	data, err := d.provider.GetIcon(ctx, icon)
	d.metrics.RecordProviderRequest(ctx, OperationIcon, err == nil, time.Since(start))
	return data, err
}

func (d *WeatherProviderMetricsDecorator) GetProviderName() string {
	return d.provider.GetProviderName()
}

// GeocodingProviderMetricsDecorator records the outcome and latency of geocoding calls
type GeocodingProviderMetricsDecorator struct {
	provider ports.GeocodingProvider
	metrics  ports.MetricsCollector
}

// NewGeocodingProviderMetricsDecorator creates a new metrics decorator for geocoding providers
func NewGeocodingProviderMetricsDecorator(provider ports.GeocodingProvider, metrics ports.MetricsCollector) ports.GeocodingProvider {
	return &GeocodingProviderMetricsDecorator{provider: provider, metrics: metrics}
}

func (d *GeocodingProviderMetricsDecorator) Direct(ctx context.Context, query ports.GeoQuery) ([]ports.GeoMatch, error) {
	start := time.Now()
	matches, err := d.provider.Direct(ctx, query)
	d.metrics.RecordProviderRequest(ctx, OperationGeocode, err == nil, time.Since(start))
	return matches, err
}

func (d *GeocodingProviderMetricsDecorator) GetProviderName() string {
	return d.provider.GetProviderName()
}

package external

import (
	"context"
	"time"

	"weatherdesk.app/internal/ports"
)

// WeatherProviderLoggingDecorator decorates weather providers with structured logging
type WeatherProviderLoggingDecorator struct {
	provider ports.WeatherProvider
	logger   ports.Logger
}

// NewWeatherProviderLoggingDecorator creates a new logging decorator for weather providers
func NewWeatherProviderLoggingDecorator(provider ports.WeatherProvider, logger ports.Logger) ports.WeatherProvider {
	return &WeatherProviderLoggingDecorator{
		provider: provider,
		logger:   logger,
	}
}

// GetCurrentConditions wraps the provider call with structured logging
func (d *WeatherProviderLoggingDecorator) GetCurrentConditions(ctx context.Context, query ports.WeatherQuery) (*ports.CurrentConditionsData, error) {
	providerName := d.provider.GetProviderName()
	d.logRequest(providerName, "current", query)

	startTime := time.Now()
	data, err := d.provider.GetCurrentConditions(ctx, query)
	duration := time.Since(startTime)

	if err != nil {
		d.logFailure(providerName, "current", duration, err)
		return nil, err
	}

	d.logger.Info("Weather API request completed",
		ports.F("provider", providerName),
		ports.F("operation", "current"),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("location", data.LocationName),
		ports.F("temperature", data.Temperature),
		ports.F("description", data.Description))

	return data, nil
}

// GetForecast wraps the provider call with structured logging
func (d *WeatherProviderLoggingDecorator) GetForecast(ctx context.Context, query ports.WeatherQuery) ([]ports.ForecastSampleData, error) {
	providerName := d.provider.GetProviderName()
	d.logRequest(providerName, "forecast", query)

	startTime := time.Now()
	samples, err := d.provider.GetForecast(ctx, query)
	duration := time.Since(startTime)

	if err != nil {
		d.logFailure(providerName, "forecast", duration, err)
		return nil, err
	}

	d.logger.Info("Weather API request completed",
		ports.F("provider", providerName),
		ports.F("operation", "forecast"),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("samples", len(samples)))

	return samples, nil
}

// GetIcon wraps the icon download with structured logging
func (d *WeatherProviderLoggingDecorator) GetIcon(ctx context.Context, icon string) ([]byte, error) {
	providerName := d.provider.GetProviderName()

	startTime := time.Now()
	data, err := d.provider.GetIcon(ctx, icon)
	duration := time.Since(startTime)

	if err != nil {
		d.logFailure(providerName, "icon", duration, err)
		return nil, err
	}

	d.logger.Debug("Weather icon downloaded",
		ports.F("provider", providerName),
		ports.F("icon", icon),
		ports.F("bytes", len(data)),
		ports.F("duration_ms", duration.Milliseconds()))

	return data, nil
}

// GetProviderName returns the name of the wrapped provider with logging indication
func (d *WeatherProviderLoggingDecorator) GetProviderName() string {
	return "logged(" + d.provider.GetProviderName() + ")"
}

// the API key is never logged
func (d *WeatherProviderLoggingDecorator) logRequest(providerName, operation string, query ports.WeatherQuery) {
	d.logger.Info("Weather API request started",
		ports.F("provider", providerName),
		ports.F("operation", operation),
		ports.F("latitude", query.Latitude),
		ports.F("longitude", query.Longitude),
		ports.F("event", "request"))
}

func (d *WeatherProviderLoggingDecorator) logFailure(providerName, operation string, duration time.Duration, err error) {
	d.logger.Error("Weather API request failed",
		ports.F("provider", providerName),
		ports.F("operation", operation),
		ports.F("event", "error"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("error", err.Error()))
}

// GeocodingProviderLoggingDecorator decorates geocoding providers with structured logging
type GeocodingProviderLoggingDecorator struct {
	provider ports.GeocodingProvider
	logger   ports.Logger
}

// NewGeocodingProviderLoggingDecorator creates a new logging decorator for geocoding providers
func NewGeocodingProviderLoggingDecorator(provider ports.GeocodingProvider, logger ports.Logger) ports.GeocodingProvider {
	return &GeocodingProviderLoggingDecorator{
		provider: provider,
		logger:   logger,
	}
}

// Direct wraps the provider call with structured logging
func (d *GeocodingProviderLoggingDecorator) Direct(ctx context.Context, query ports.GeoQuery) ([]ports.GeoMatch, error) {
	providerName := d.provider.GetProviderName()

	d.logger.Info("Geocoding request started",
		ports.F("provider", providerName),
		ports.F("city", query.City),
		ports.F("event", "request"))

	startTime := time.Now()
	matches, err := d.provider.Direct(ctx, query)
	duration := time.Since(startTime)

	if err != nil {
		d.logger.Error("Geocoding request failed",
			ports.F("provider", providerName),
			ports.F("city", query.City),
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return nil, err
	}

	d.logger.Info("Geocoding request completed",
		ports.F("provider", providerName),
		ports.F("city", query.City),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("matches", len(matches)))

	return matches, nil
}

// GetProviderName returns the name of the wrapped provider with logging indication
func (d *GeocodingProviderLoggingDecorator) GetProviderName() string {
	return "logged(" + d.provider.GetProviderName() + ")"
}

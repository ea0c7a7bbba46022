package lookup

import (
	"context"

	"weatherdesk.app/internal/core/weather"
	"weatherdesk.app/internal/ports"
	"weatherdesk.app/pkg/errors"
)

// WeatherService fetches weather for a resolved coordinate
type WeatherService interface {
	FetchCurrent(ctx context.Context, coord weather.Coordinate) (*weather.CurrentConditions, error)
	FetchForecast(ctx context.Context, coord weather.Coordinate) (*weather.ForecastSet, error)
}

// CityResolver turns a city name into a coordinate
type CityResolver interface {
	ResolveCity(ctx context.Context, name string) (weather.Coordinate, error)
}

type UseCase struct {
	weather  WeatherService
	resolver CityResolver
	logger   ports.Logger
}

type UseCaseDependencies struct {
	Weather  WeatherService
	Resolver CityResolver
	Logger   ports.Logger
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Weather == nil {
		return nil, errors.NewValidationError("weather service is required")
	}
	if deps.Resolver == nil {
		return nil, errors.NewValidationError("city resolver is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	return &UseCase{
		weather:  deps.Weather,
		resolver: deps.Resolver,
		logger:   deps.Logger,
	}, nil
}

// Show resolves the requested location and returns its current conditions and forecast.
// A valid city name takes precedence over coordinates. The same coordinate is used for
// both weather calls. A forecast failure is reported in the result instead of failing it.
func (uc *UseCase) Show(ctx context.Context, request ShowRequest) (*Report, error) {
	request.Normalize()

	coord, err := uc.resolve(ctx, request)
	if err != nil {
		return nil, err
	}

	current, err := uc.weather.FetchCurrent(ctx, coord)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Coordinate: coord,
		Current:    current,
		Summary:    current.Summary(),
	}

	forecast, err := uc.weather.FetchForecast(ctx, coord)
	if err != nil {
		uc.logger.Warn("Forecast unavailable for lookup",
			ports.F("latitude", coord.Latitude),
			ports.F("longitude", coord.Longitude),
			ports.F("error", err))
		report.ForecastUnavailable = true
		report.ForecastMessage = msgForecastFailed
		return report, nil
	}

	report.Forecast = forecast
	return report, nil
}

func (uc *UseCase) resolve(ctx context.Context, request ShowRequest) (weather.Coordinate, error) {
	if request.HasCity() {
		return uc.resolver.ResolveCity(ctx, request.City)
	}
	return request.Coordinate()
}

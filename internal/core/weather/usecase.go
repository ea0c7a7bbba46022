package weather

import (
	"context"
	"strings"
	"time"

	"weatherdesk.app/internal/ports"
	"weatherdesk.app/pkg/errors"
)

type UseCase struct {
	weatherProvider ports.WeatherProvider
	credentials     ports.CredentialProvider
	config          ports.ConfigProvider
	logger          ports.Logger
	now             func() time.Time
}

type UseCaseDependencies struct {
	WeatherProvider ports.WeatherProvider
	Credentials     ports.CredentialProvider
	Config          ports.ConfigProvider
	Logger          ports.Logger
	// Clock defaults to time.Now
	Clock func() time.Time
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.WeatherProvider == nil {
		return nil, errors.NewValidationError("weather provider is required")
	}
	if deps.Credentials == nil {
		return nil, errors.NewValidationError("credential provider is required")
	}
	if deps.Config == nil {
		return nil, errors.NewValidationError("config is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}

	return &UseCase{
		weatherProvider: deps.WeatherProvider,
		credentials:     deps.Credentials,
		config:          deps.Config,
		logger:          deps.Logger,
		now:             clock,
	}, nil
}

// FetchCurrent returns the current conditions at coord together with the condition icon.
// Either both provider calls succeed or the whole operation fails.
func (uc *UseCase) FetchCurrent(ctx context.Context, coord Coordinate) (*CurrentConditions, error) {
	query, err := uc.buildQuery(coord)
	if err != nil {
		return nil, err
	}

	uc.logger.Debug("Fetching current conditions",
		ports.F("latitude", coord.Latitude),
		ports.F("longitude", coord.Longitude))

	data, err := uc.weatherProvider.GetCurrentConditions(ctx, query)
	if err != nil {
		return nil, uc.failure("could not retrieve current weather", coord, err)
	}

	icon, err := uc.weatherProvider.GetIcon(ctx, data.Icon)
	if err != nil {
		return nil, uc.failure("could not retrieve weather icon", coord, err)
	}

	name := data.LocationName
	if strings.TrimSpace(name) == "" {
		name = DefaultLocationName
	}

	return &CurrentConditions{
		LocationName: name,
		Temperature:  data.Temperature,
		Description:  data.Description,
		IconID:       data.Icon,
		Icon:         icon,
	}, nil
}

// FetchForecast returns one entry per future calendar date at coord
func (uc *UseCase) FetchForecast(ctx context.Context, coord Coordinate) (*ForecastSet, error) {
	query, err := uc.buildQuery(coord)
	if err != nil {
		return nil, err
	}

	uc.logger.Debug("Fetching forecast",
		ports.F("latitude", coord.Latitude),
		ports.F("longitude", coord.Longitude))

	feed, err := uc.weatherProvider.GetForecast(ctx, query)
	if err != nil {
		return nil, uc.failure("could not retrieve forecast", coord, err)
	}

	loc := uc.location()
	set := ReduceForecast(convertFromPortsSamples(feed), DateOf(uc.now(), loc), loc)

	uc.logger.Debug("Forecast reduced",
		ports.F("samples", len(feed)),
		ports.F("days", set.Len()))
	return set, nil
}

// buildQuery passes coord through unchanged; user input is range-checked where it is parsed
func (uc *UseCase) buildQuery(coord Coordinate) (ports.WeatherQuery, error) {
	apiKey, err := uc.credentials.APIKey()
	if err != nil {
		return ports.WeatherQuery{}, err
	}

	return ports.WeatherQuery{
		Latitude:  coord.Latitude,
		Longitude: coord.Longitude,
		APIKey:    apiKey,
	}, nil
}

func (uc *UseCase) location() *time.Location {
	if loc := uc.config.GetWeatherConfig().Location; loc != nil {
		return loc
	}
	return time.Local
}

// failure logs the underlying cause and returns an error of the same kind.
// Causes without a kind are reported as network errors.
func (uc *UseCase) failure(message string, coord Coordinate, cause error) error {
	uc.logger.Error("Weather provider request failed",
		ports.F("operation", message),
		ports.F("latitude", coord.Latitude),
		ports.F("longitude", coord.Longitude),
		ports.F("error", cause))

	kind := errors.TypeOf(cause)
	if kind == errors.ErrorTypeUnknown {
		kind = errors.NetworkError
	}
	return errors.Wrap(kind, message, cause)
}

func convertFromPortsSamples(feed []ports.ForecastSampleData) []ForecastSample {
	samples := make([]ForecastSample, 0, len(feed))
	for _, s := range feed {
		samples = append(samples, ForecastSample{
			Timestamp:   s.Timestamp,
			Temperature: s.Temperature,
			Description: s.Description,
		})
	}
	return samples
}

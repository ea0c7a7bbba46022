package geocoding

import (
	"context"
	"strings"

	"weatherdesk.app/internal/core/weather"
	"weatherdesk.app/internal/ports"
	"weatherdesk.app/pkg/errors"
)

// matchLimit is the number of candidates requested from the provider; only the first is used
const matchLimit = 1

type UseCase struct {
	provider    ports.GeocodingProvider
	credentials ports.CredentialProvider
	logger      ports.Logger
}

type UseCaseDependencies struct {
	Provider    ports.GeocodingProvider
	Credentials ports.CredentialProvider
	Logger      ports.Logger
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Provider == nil {
		return nil, errors.NewValidationError("geocoding provider is required")
	}
	if deps.Credentials == nil {
		return nil, errors.NewValidationError("credential provider is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	return &UseCase{
		provider:    deps.Provider,
		credentials: deps.Credentials,
		logger:      deps.Logger,
	}, nil
}

// ResolveCity returns the coordinate of the first provider match for name.
// No match is reported as a not found error, distinct from provider failures.
// The match is used as returned, without range checks or disambiguation.
func (uc *UseCase) ResolveCity(ctx context.Context, name string) (weather.Coordinate, error) {
	city := strings.TrimSpace(name)
	if city == "" {
		return weather.Coordinate{}, errors.NewValidationError("city name cannot be empty")
	}

	apiKey, err := uc.credentials.APIKey()
	if err != nil {
		return weather.Coordinate{}, err
	}

	matches, err := uc.provider.Direct(ctx, ports.GeoQuery{City: city, Limit: matchLimit, APIKey: apiKey})
	if err != nil {
		uc.logger.Error("Geocoding request failed",
			ports.F("city", city),
			ports.F("error", err))

		kind := errors.TypeOf(err)
		if kind == errors.ErrorTypeUnknown {
			kind = errors.NetworkError
		}
		return weather.Coordinate{}, errors.Wrap(kind, "could not resolve city", err)
	}

	if len(matches) == 0 {
		uc.logger.Info("No coordinates found for city", ports.F("city", city))
		return weather.Coordinate{}, errors.NewNotFoundError("no coordinates found for " + city)
	}

	first := matches[0]
	uc.logger.Debug("City resolved",
		ports.F("city", city),
		ports.F("latitude", first.Latitude),
		ports.F("longitude", first.Longitude))

	return weather.Coordinate{Latitude: first.Latitude, Longitude: first.Longitude}, nil
}

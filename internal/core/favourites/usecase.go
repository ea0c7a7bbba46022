package favourites

import (
	"context"

	"weatherdesk.app/internal/assets"
	"weatherdesk.app/internal/ports"
	"weatherdesk.app/pkg/errors"
)

type UseCase struct {
	repository ports.FavouritesRepository
	defaults   []string
	logger     ports.Logger
	metrics    ports.MetricsCollector
}

type UseCaseDependencies struct {
	Repository ports.FavouritesRepository
	// Defaults seed a store that was never initialized; the bundled list is used when nil
	Defaults []string
	Logger   ports.Logger
	Metrics  ports.MetricsCollector
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Repository == nil {
		return nil, errors.NewValidationError("favourites repository is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics collector is required")
	}

	defaults := deps.Defaults
	if defaults == nil {
		defaults = assets.DefaultFavourites()
	}

	return &UseCase{
		repository: deps.Repository,
		defaults:   defaults,
		logger:     deps.Logger,
		metrics:    deps.Metrics,
	}, nil
}

// Initialize seeds the store with the default list on first use.
// It is a no-op for a store that already exists, even an empty one.
func (uc *UseCase) Initialize(ctx context.Context) error {
	seeded, err := uc.repository.Seed(ctx, uc.defaults)
	if err != nil {
		uc.logger.Error("Failed to initialize favourites", ports.F("error", err))
		return errors.Wrap(errors.StorageError, "could not initialize favourites", err)
	}

	if seeded {
		uc.logger.Info("Favourites initialized from defaults", ports.F("count", len(uc.defaults)))
	}
	return nil
}

// Save appends a city to the end of the list and returns the stored name
func (uc *UseCase) Save(ctx context.Context, request SaveRequest) (string, error) {
	request.Normalize()
	if err := request.IsValid(); err != nil {
		return "", err
	}

	if err := uc.repository.Append(ctx, request.City); err != nil {
		uc.logger.Error("Failed to save favourite",
			ports.F("city", request.City),
			ports.F("error", err))
		return "", errors.Wrap(errors.StorageError, "error saving to favourites, please try again later", err)
	}

	uc.metrics.RecordFavouriteSaved(ctx)
	uc.logger.Info("Favourite saved", ports.F("city", request.City))
	return request.City, nil
}

// Load returns the stored cities in list order, skipping blank entries
func (uc *UseCase) Load(ctx context.Context) ([]string, error) {
	entries, err := uc.repository.List(ctx)
	if err != nil {
		uc.logger.Error("Failed to load favourites", ports.F("error", err))
		return nil, errors.Wrap(errors.StorageError, "unable to load favourite cities", err)
	}
	return cleanList(entries), nil
}

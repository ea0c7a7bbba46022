package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin"
	"weatherdesk.app/internal/adapters/api"
	"weatherdesk.app/internal/adapters/infrastructure"
	"weatherdesk.app/internal/config"
	"weatherdesk.app/internal/core/favourites"
	"weatherdesk.app/internal/core/geocoding"
	"weatherdesk.app/internal/core/lookup"
	"weatherdesk.app/internal/core/weather"
	"weatherdesk.app/internal/ports"
)

type Application struct {
	config *config.Config
	deps   *DependencyContainer

	// Use Cases
	weatherUseCase    *weather.UseCase
	geocodingUseCase  *geocoding.UseCase
	lookupUseCase     *lookup.UseCase
	favouritesUseCase *favourites.UseCase

	// Adapters
	httpAdapter *api.HTTPServerAdapter

	ports *ports.ApplicationPorts
}

// NewApplication loads configuration from the environment and wires the application
func NewApplication(ctx context.Context) (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return NewApplicationWithConfig(ctx, cfg)
}

// NewApplicationWithConfig wires the application from an already validated configuration
func NewApplicationWithConfig(ctx context.Context, cfg *config.Config) (*Application, error) {
	deps, err := NewDependencyContainer(cfg)
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	app := &Application{
		config: cfg,
		deps:   deps,
		ports:  deps.ApplicationPorts(),
	}

	if err := app.initializeUseCases(); err != nil {
		_ = deps.Cleanup()
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.favouritesUseCase.Initialize(ctx); err != nil {
		_ = deps.Cleanup()
		return nil, fmt.Errorf("initialize favourites: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		_ = deps.Cleanup()
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializeUseCases() error {
	slog.Info("Initializing use cases...")

	weatherUseCase, err := weather.NewUseCase(weather.UseCaseDependencies{
		WeatherProvider: a.ports.WeatherProvider,
		Credentials:     a.ports.Credentials,
		Config:          a.ports.ConfigProvider,
		Logger:          a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create weather use case: %w", err)
	}
	a.weatherUseCase = weatherUseCase

	geocodingUseCase, err := geocoding.NewUseCase(geocoding.UseCaseDependencies{
		Provider:    a.ports.GeocodingProvider,
		Credentials: a.ports.Credentials,
		Logger:      a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create geocoding use case: %w", err)
	}
	a.geocodingUseCase = geocodingUseCase

	lookupUseCase, err := lookup.NewUseCase(lookup.UseCaseDependencies{
		Weather:  weatherUseCase,
		Resolver: geocodingUseCase,
		Logger:   a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create lookup use case: %w", err)
	}
	a.lookupUseCase = lookupUseCase

	favouritesUseCase, err := favourites.NewUseCase(favourites.UseCaseDependencies{
		Repository: a.ports.FavouritesRepository,
		Logger:     a.ports.Logger,
		Metrics:    a.ports.Metrics,
	})
	if err != nil {
		return fmt.Errorf("create favourites use case: %w", err)
	}
	a.favouritesUseCase = favouritesUseCase

	slog.Info("Use cases initialized successfully")
	return nil
}

func (a *Application) initializeAdapters() error {
	slog.Info("Initializing adapters...")

	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Config:            a.ports.ConfigProvider.GetServerConfig(),
		LookupUseCase:     a.lookupUseCase,
		WeatherUseCase:    a.weatherUseCase,
		GeocodingUseCase:  a.geocodingUseCase,
		FavouritesUseCase: a.favouritesUseCase,
		HealthChecker:     infrastructure.NewSystemHealthChecker(a.deps.HealthCheckers()...),
		Metrics:           a.deps.Metrics(),
		MetricsHandler:    a.deps.Metrics().Handler(),
		Logger:            a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}
	a.httpAdapter = httpAdapter

	slog.Info("Adapters initialized successfully")
	return nil
}

// Start serves HTTP until ctx is cancelled
func (a *Application) Start(ctx context.Context) error {
	slog.Info("Starting application...")
	if err := a.httpAdapter.Start(ctx); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}
	return nil
}

// Shutdown releases storage connections and log files
func (a *Application) Shutdown() error {
	slog.Info("Shutting down application...")
	if err := a.deps.Cleanup(); err != nil {
		return fmt.Errorf("release resources: %w", err)
	}
	slog.Info("Application shutdown complete")
	return nil
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.httpAdapter.GetRouter()
}

// GetFavouritesUseCase returns the favourites use case for testing
func (a *Application) GetFavouritesUseCase() *favourites.UseCase {
	return a.favouritesUseCase
}

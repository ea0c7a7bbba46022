package app

import (
	"fmt"
	"log/slog"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
	"weatherdesk.app/internal/adapters/database"
	"weatherdesk.app/internal/adapters/external"
	"weatherdesk.app/internal/adapters/infrastructure"
	"weatherdesk.app/internal/config"
	"weatherdesk.app/internal/ports"
)

// DependencyContainer builds the adapters behind every port and owns their resources
type DependencyContainer struct {
	config     *config.Config
	ports      *ports.ApplicationPorts
	metrics    *infrastructure.PrometheusMetricsCollector
	health     []ports.HealthChecker
	db         *gorm.DB
	redis      *redis.Client
	fileLogger *infrastructure.FileLoggerAdapter
}

func NewDependencyContainer(cfg *config.Config) (*DependencyContainer, error) {
	c := &DependencyContainer{config: cfg}

	if err := c.initializePorts(); err != nil {
		_ = c.Cleanup()
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return c, nil
}

func (c *DependencyContainer) initializePorts() error {
	slog.Info("Initializing ports...")

	appLogger := infrastructure.NewSlogLoggerAdapter(nil)
	providerLogger := c.providerLogger(appLogger)

	credentials := infrastructure.NewCredentialProvider(c.config.Weather.APIKey, c.config.Weather.APIKeyFile)
	if source := credentials.Source(); source != "" {
		slog.Info("OpenWeatherMap API key loaded", "source", source)
	} else {
		slog.Warn("OpenWeatherMap API key is not configured; weather lookups will fail")
	}

	c.metrics = infrastructure.NewPrometheusMetricsCollector()
	client := external.NewHTTPClient(c.config.Weather.HTTPTimeout())

	var weatherProvider ports.WeatherProvider = external.NewOpenWeatherMapProviderAdapter(external.OpenWeatherMapProviderParams{
		BaseURL:     c.config.Weather.BaseURL,
		IconBaseURL: c.config.Weather.IconBaseURL,
		Client:      client,
		Logger:      appLogger,
	})
	weatherProvider = external.NewWeatherProviderMetricsDecorator(weatherProvider, c.metrics)

	var geocoder ports.GeocodingProvider = external.NewOpenWeatherMapGeocoderAdapter(external.OpenWeatherMapGeocoderParams{
		BaseURL: c.config.Weather.GeoBaseURL,
		Client:  client,
		Logger:  appLogger,
	})
	geocoder = external.NewGeocodingProviderMetricsDecorator(geocoder, c.metrics)

	if c.config.Weather.EnableLogging {
		weatherProvider = external.NewWeatherProviderLoggingDecorator(weatherProvider, providerLogger)
		geocoder = external.NewGeocodingProviderLoggingDecorator(geocoder, providerLogger)
		slog.Info("Weather provider logging enabled")
	}

	repository, err := c.favouritesRepository()
	if err != nil {
		return err
	}

	c.health = append(c.health,
		infrastructure.NewCredentialsHealthChecker(credentials),
		infrastructure.NewFavouritesStoreHealthChecker(repository, c.config.Favourites.Backend.String()),
		infrastructure.NewWeatherProviderHealthChecker(weatherProvider),
	)

	c.ports = &ports.ApplicationPorts{
		WeatherProvider:      weatherProvider,
		GeocodingProvider:    geocoder,
		Credentials:          credentials,
		FavouritesRepository: repository,
		ConfigProvider:       infrastructure.NewConfigProviderAdapter(c.config),
		Logger:               appLogger,
		Metrics:              c.metrics,
	}

	slog.Info("Ports initialized successfully")
	return nil
}

// providerLogger adds the JSON provider log file when enabled; failures fall back to slog
func (c *DependencyContainer) providerLogger(appLogger ports.Logger) ports.Logger {
	if !c.config.Weather.EnableLogging || c.config.Weather.LogFilePath == "" {
		return appLogger
	}

	fileLogger, err := infrastructure.NewFileLoggerAdapter(c.config.Weather.LogFilePath)
	if err != nil {
		slog.Warn("Failed to create file logger, falling back to slog", "error", err)
		return appLogger
	}

	c.fileLogger = fileLogger
	slog.Info("File logging enabled", "path", c.config.Weather.LogFilePath)
	return infrastructure.TeeLogger{appLogger, fileLogger}
}

func (c *DependencyContainer) favouritesRepository() (ports.FavouritesRepository, error) {
	backend := c.config.Favourites.Backend

	switch backend {
	case config.FavouritesBackendRedis:
		client, err := external.NewRedisClient(&c.config.Redis)
		if err != nil {
			return nil, fmt.Errorf("connect to redis: %w", err)
		}
		c.redis = client
		c.health = append(c.health, infrastructure.NewRedisHealthChecker(client))
		slog.Info("Favourites stored in redis", "addr", c.config.Redis.Addr, "key", c.config.Favourites.RedisKey)
		return external.NewRedisFavouritesRepository(client, c.config.Favourites.RedisKey)

	case config.FavouritesBackendDatabase:
		db, err := database.Open(c.config.Database)
		if err != nil {
			return nil, fmt.Errorf("connect to database: %w", err)
		}
		c.db = db
		if err := database.RunMigrations(db); err != nil {
			return nil, fmt.Errorf("run migrations: %w", err)
		}
		c.health = append(c.health, infrastructure.NewDatabaseHealthChecker(db))
		slog.Info("Favourites stored in database", "driver", c.config.Database.Driver)
		return database.NewFavouritesRepositoryAdapter(db), nil

	case config.FavouritesBackendFile:
		path, err := c.config.Favourites.ResolvedFilePath()
		if err != nil {
			return nil, err
		}
		slog.Info("Favourites stored in file", "path", path)
		return infrastructure.NewFileFavouritesRepository(path)

	default:
		return nil, fmt.Errorf("unsupported favourites backend: %s", backend)
	}
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

// Metrics returns the prometheus collector shared by the decorators and the HTTP layer
func (c *DependencyContainer) Metrics() *infrastructure.PrometheusMetricsCollector {
	return c.metrics
}

func (c *DependencyContainer) HealthCheckers() []ports.HealthChecker {
	return c.health
}

// Cleanup releases connections and files opened by the container
func (c *DependencyContainer) Cleanup() error {
	var firstErr error
	keep := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if c.redis != nil {
		keep(c.redis.Close())
		c.redis = nil
	}
	if c.db != nil {
		keep(database.Close(c.db))
		c.db = nil
	}
	if c.fileLogger != nil {
		keep(c.fileLogger.Close())
		c.fileLogger = nil
	}
	return firstErr
}

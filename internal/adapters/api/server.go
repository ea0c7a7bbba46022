// Package api provides HTTP adapters for the hexagonal architecture
// These adapters handle incoming HTTP requests and translate them to use cases
package api

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"weatherdesk.app/internal/assets"
	"weatherdesk.app/internal/core/favourites"
	"weatherdesk.app/internal/core/lookup"
	"weatherdesk.app/internal/core/weather"
	"weatherdesk.app/internal/ports"
	"weatherdesk.app/pkg/errors"
)

const shutdownTimeout = 10 * time.Second

// HTTPServerAdapter implements HTTP server using Gin framework
type HTTPServerAdapter struct {
	router            *gin.Engine
	server            *http.Server
	config            ports.ServerConfig
	lookupUseCase     LookupUseCase
	weatherUseCase    WeatherUseCase
	geocodingUseCase  GeocodingUseCase
	favouritesUseCase FavouritesUseCase
	healthChecker     ports.SystemHealthChecker
	metrics           HTTPMetrics
	metricsHandler    http.Handler
	logger            ports.Logger
}

// Use case interfaces that the HTTP adapter depends on
type LookupUseCase interface {
	Show(ctx context.Context, request lookup.ShowRequest) (*lookup.Report, error)
}

type WeatherUseCase interface {
	FetchCurrent(ctx context.Context, coord weather.Coordinate) (*weather.CurrentConditions, error)
	FetchForecast(ctx context.Context, coord weather.Coordinate) (*weather.ForecastSet, error)
}

type GeocodingUseCase interface {
	ResolveCity(ctx context.Context, name string) (weather.Coordinate, error)
}

type FavouritesUseCase interface {
	Save(ctx context.Context, request favourites.SaveRequest) (string, error)
	Load(ctx context.Context) ([]string, error)
}

// HTTPMetrics records served requests
type HTTPMetrics interface {
	RecordHTTPRequest(route, method string, status int)
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config            ports.ServerConfig
	LookupUseCase     LookupUseCase
	WeatherUseCase    WeatherUseCase
	GeocodingUseCase  GeocodingUseCase
	FavouritesUseCase FavouritesUseCase
	HealthChecker     ports.SystemHealthChecker
	Metrics           HTTPMetrics
	MetricsHandler    http.Handler
	Logger            ports.Logger
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.LookupUseCase == nil {
		return errors.NewValidationError("lookup use case is required")
	}
	if opts.WeatherUseCase == nil {
		return errors.NewValidationError("weather use case is required")
	}
	if opts.GeocodingUseCase == nil {
		return errors.NewValidationError("geocoding use case is required")
	}
	if opts.FavouritesUseCase == nil {
		return errors.NewValidationError("favourites use case is required")
	}
	if opts.HealthChecker == nil {
		return errors.NewValidationError("health checker is required")
	}
	if opts.Logger == nil {
		return errors.NewValidationError("logger is required")
	}
	return nil
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}

	if opts.Config.GinMode != "" {
		gin.SetMode(opts.Config.GinMode)
	}

	s := &HTTPServerAdapter{
		router:            gin.New(),
		config:            opts.Config,
		lookupUseCase:     opts.LookupUseCase,
		weatherUseCase:    opts.WeatherUseCase,
		geocodingUseCase:  opts.GeocodingUseCase,
		favouritesUseCase: opts.FavouritesUseCase,
		healthChecker:     opts.HealthChecker,
		metrics:           opts.Metrics,
		metricsHandler:    opts.MetricsHandler,
		logger:            opts.Logger,
	}

	s.router.Use(gin.Recovery(), requestIDMiddleware(), s.accessLogMiddleware())
	s.setupRoutes()
	return s, nil
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/weather", s.showWeather)
		api.GET("/weather/current", s.getCurrentWeather)
		api.GET("/weather/forecast", s.getForecast)
		api.GET("/geocode", s.geocode)
		api.GET("/favourites", s.listFavourites)
		api.POST("/favourites", s.saveFavourite)
		api.GET("/health", s.health)
	}

	if s.metricsHandler != nil {
		s.router.GET("/metrics", gin.WrapH(s.metricsHandler))
	}

	s.setupStaticFiles()
}

// setupStaticFiles serves the bundled single page front end
func (s *HTTPServerAdapter) setupStaticFiles() {
	s.router.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", assets.IndexHTML())
	})
}

// Start serves HTTP until ctx is cancelled, then shuts down gracefully
func (s *HTTPServerAdapter) Start(ctx context.Context) error {
	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.config.Port),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting HTTP server", ports.F("port", s.config.Port))
		if err := s.server.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server")
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return <-errCh
}

// GetRouter returns the router for testing purposes
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}

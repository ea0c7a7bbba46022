package infrastructure

import (
	"time"

	"weatherdesk.app/internal/config"
	"weatherdesk.app/internal/ports"
)

// ConfigProviderAdapter implements the ConfigProvider port
type ConfigProviderAdapter struct {
	config   *config.Config
	location *time.Location
}

// NewConfigProviderAdapter creates a new config provider adapter.
// The time zone is resolved once; an invalid zone is rejected by config validation.
func NewConfigProviderAdapter(cfg *config.Config) *ConfigProviderAdapter {
	loc, err := cfg.Weather.Location()
	if err != nil {
		loc = time.Local
	}
	return &ConfigProviderAdapter{
		config:   cfg,
		location: loc,
	}
}

// GetWeatherConfig returns weather provider configuration
func (c *ConfigProviderAdapter) GetWeatherConfig() ports.WeatherConfig {
	return ports.WeatherConfig{
		BaseURL:     c.config.Weather.BaseURL,
		GeoBaseURL:  c.config.Weather.GeoBaseURL,
		IconBaseURL: c.config.Weather.IconBaseURL,
		HTTPTimeout: c.config.Weather.HTTPTimeout(),
		Location:    c.location,
	}
}

// GetServerConfig returns server configuration
func (c *ConfigProviderAdapter) GetServerConfig() ports.ServerConfig {
	return ports.ServerConfig{
		Port:    c.config.Server.Port,
		GinMode: c.config.Server.GinMode,
	}
}

// GetFavouritesConfig returns favourites storage configuration
func (c *ConfigProviderAdapter) GetFavouritesConfig() ports.FavouritesConfig {
	path, err := c.config.Favourites.ResolvedFilePath()
	if err != nil {
		path = ""
	}
	return ports.FavouritesConfig{
		Backend:  c.config.Favourites.Backend.String(),
		FilePath: path,
		RedisKey: c.config.Favourites.RedisKey,
	}
}

package infrastructure

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherdesk.app/internal/config"
)

func TestConfigProviderAdapter(t *testing.T) {
	cfg := &config.Config{
		Server: config.ServerConfig{Port: 9090, GinMode: "test"},
		Weather: config.WeatherConfig{
			BaseURL:            "http://owm.local/data/2.5",
			GeoBaseURL:         "http://owm.local/geo/1.0",
			IconBaseURL:        "http://owm.local/img/wn",
			HTTPTimeoutSeconds: 7,
			Timezone:           "UTC",
		},
		Favourites: config.FavouritesConfig{
			Backend:  config.FavouritesBackendRedis,
			FilePath: "/tmp/favs.txt",
			RedisKey: "favs",
		},
	}

	provider := NewConfigProviderAdapter(cfg)

	weather := provider.GetWeatherConfig()
	assert.Equal(t, "http://owm.local/data/2.5", weather.BaseURL)
	assert.Equal(t, "http://owm.local/geo/1.0", weather.GeoBaseURL)
	assert.Equal(t, "http://owm.local/img/wn", weather.IconBaseURL)
	assert.Equal(t, 7*time.Second, weather.HTTPTimeout)
	require.NotNil(t, weather.Location)
	assert.Equal(t, "UTC", weather.Location.String())

	server := provider.GetServerConfig()
	assert.Equal(t, 9090, server.Port)
	assert.Equal(t, "test", server.GinMode)

	favourites := provider.GetFavouritesConfig()
	assert.Equal(t, "redis", favourites.Backend)
	assert.Equal(t, "/tmp/favs.txt", favourites.FilePath)
	assert.Equal(t, "favs", favourites.RedisKey)
}

func TestConfigProviderAdapter_LocalTimezone(t *testing.T) {
	provider := NewConfigProviderAdapter(&config.Config{Weather: config.WeatherConfig{Timezone: "Local"}})

	assert.Equal(t, time.Local, provider.GetWeatherConfig().Location)
}

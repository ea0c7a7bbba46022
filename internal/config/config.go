package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"weatherdesk.app/pkg/errors"
)

const (
	maxRedisDB          = 15
	maxPortNumber       = 65535
	maxHTTPTimeoutSecs  = 300
	appDataDirName      = "weatherdesk"
	favouritesFileName  = "favourites.txt"
	defaultTimezoneName = "Local"
)

// Config represents the application configuration structure
type Config struct {
	Server     ServerConfig     `split_words:"true"`
	Weather    WeatherConfig    `split_words:"true"`
	Favourites FavouritesConfig `split_words:"true"`
	Redis      RedisConfig      `split_words:"true"`
	Database   DatabaseConfig   `split_words:"true"`
	Log        LogConfig        `split_words:"true"`
}

type ServerConfig struct {
	Port    int    `envconfig:"SERVER_PORT" default:"8080"`
	GinMode string `envconfig:"GIN_MODE" default:"release"`
}

type WeatherConfig struct {
	APIKey             string `envconfig:"OPENWEATHERMAP_API_KEY"`
	APIKeyFile         string `envconfig:"OPENWEATHERMAP_API_KEY_FILE" default:"config.json"`
	BaseURL            string `envconfig:"OPENWEATHERMAP_API_BASE_URL" default:"https://api.openweathermap.org/data/2.5"`
	GeoBaseURL         string `envconfig:"OPENWEATHERMAP_GEO_BASE_URL" default:"http://api.openweathermap.org/geo/1.0"`
	IconBaseURL        string `envconfig:"OPENWEATHERMAP_ICON_BASE_URL" default:"http://openweathermap.org/img/wn"`
	HTTPTimeoutSeconds int    `envconfig:"WEATHER_HTTP_TIMEOUT_SECONDS" default:"0"`
	Timezone           string `envconfig:"WEATHER_TIMEZONE" default:"Local"`
	EnableLogging      bool   `envconfig:"WEATHER_ENABLE_LOGGING" default:"true"`
	LogFilePath        string `envconfig:"WEATHER_LOG_FILE_PATH" default:"logs/weather_providers.log"`
}

// HTTPTimeout returns the client timeout; zero means the transport default
func (w WeatherConfig) HTTPTimeout() time.Duration {
	return time.Duration(w.HTTPTimeoutSeconds) * time.Second
}

// Location resolves the configured time zone used to derive forecast calendar dates
func (w WeatherConfig) Location() (*time.Location, error) {
	if w.Timezone == "" || w.Timezone == defaultTimezoneName {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(w.Timezone)
	if err != nil {
		return nil, errors.NewConfigurationError(fmt.Sprintf("WEATHER_TIMEZONE %q is not a valid time zone", w.Timezone), err)
	}
	return loc, nil
}

// FavouritesBackend represents where the favourites list is stored
type FavouritesBackend int

const (
	FavouritesBackendUnknown FavouritesBackend = iota
	FavouritesBackendFile
	FavouritesBackendRedis
	FavouritesBackendDatabase
)

// String returns the string representation of the favourites backend
func (b FavouritesBackend) String() string {
	switch b {
	case FavouritesBackendFile:
		return "file"
	case FavouritesBackendRedis:
		return "redis"
	case FavouritesBackendDatabase:
		return "database"
	default:
		return "unknown"
	}
}

// IsValid checks if the backend is valid
func (b FavouritesBackend) IsValid() bool {
	return b == FavouritesBackendFile || b == FavouritesBackendRedis || b == FavouritesBackendDatabase
}

// FavouritesBackendFromString converts string to FavouritesBackend enum
func FavouritesBackendFromString(s string) FavouritesBackend {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "file":
		return FavouritesBackendFile
	case "redis":
		return FavouritesBackendRedis
	case "database", "db":
		return FavouritesBackendDatabase
	default:
		return FavouritesBackendUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (b *FavouritesBackend) UnmarshalText(text []byte) error {
	*b = FavouritesBackendFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (b FavouritesBackend) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

type FavouritesConfig struct {
	Backend  FavouritesBackend `envconfig:"FAVOURITES_BACKEND" default:"file"`
	FilePath string            `envconfig:"FAVOURITES_FILE_PATH"`
	RedisKey string            `envconfig:"FAVOURITES_REDIS_KEY" default:"weatherdesk:favourites"`
}

// ResolvedFilePath returns FilePath or, when unset, the per-user application data location
func (f FavouritesConfig) ResolvedFilePath() (string, error) {
	if f.FilePath != "" {
		return f.FilePath, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.NewConfigurationError("cannot determine application data directory", err)
	}
	return filepath.Join(dir, appDataDirName, favouritesFileName), nil
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
}

type DatabaseConfig struct {
	Driver     string `envconfig:"DB_DRIVER" default:"sqlite"`
	SQLitePath string `envconfig:"DB_SQLITE_PATH" default:"weatherdesk.db"`
	Host       string `envconfig:"DB_HOST" default:"localhost"`
	Port       int    `envconfig:"DB_PORT" default:"5432"`
	User       string `envconfig:"DB_USER" default:"postgres"`
	Password   string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name       string `envconfig:"DB_NAME" default:"weatherdesk"`
	SSLMode    string `envconfig:"DB_SSL_MODE" default:"disable"`
}

func (c DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"json"`
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Weather.Validate(); err != nil {
		return err
	}
	if err := c.Favourites.Validate(); err != nil {
		return err
	}
	switch c.Favourites.Backend {
	case FavouritesBackendRedis:
		if err := c.Redis.Validate(); err != nil {
			return err
		}
	case FavouritesBackendDatabase:
		if err := c.Database.Validate(); err != nil {
			return err
		}
	}
	return c.Log.Validate()
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	switch s.GinMode {
	case "debug", "release", "test":
		return nil
	default:
		return errors.NewConfigurationError("GIN_MODE must be one of: debug, release, test", nil)
	}
}

// Validate checks the provider endpoints. The API key itself is optional here:
// without it the application still serves favourites, and network operations
// report a configuration error.
func (w *WeatherConfig) Validate() error {
	urls := map[string]string{
		"OPENWEATHERMAP_API_BASE_URL":  w.BaseURL,
		"OPENWEATHERMAP_GEO_BASE_URL":  w.GeoBaseURL,
		"OPENWEATHERMAP_ICON_BASE_URL": w.IconBaseURL,
	}
	for name, value := range urls {
		if value == "" {
			return errors.NewConfigurationError(name+" cannot be empty", nil)
		}
		if !strings.HasPrefix(value, "http://") && !strings.HasPrefix(value, "https://") {
			return errors.NewConfigurationError(name+" must start with http:// or https://", nil)
		}
	}

	if w.HTTPTimeoutSeconds < 0 || w.HTTPTimeoutSeconds > maxHTTPTimeoutSecs {
		return errors.NewConfigurationError("WEATHER_HTTP_TIMEOUT_SECONDS must be between 0 and 300", nil)
	}

	if _, err := w.Location(); err != nil {
		return err
	}

	if w.EnableLogging && w.LogFilePath == "" {
		return errors.NewConfigurationError("WEATHER_LOG_FILE_PATH cannot be empty when WEATHER_ENABLE_LOGGING is true", nil)
	}

	return nil
}

func (f *FavouritesConfig) Validate() error {
	if !f.Backend.IsValid() {
		return errors.NewConfigurationError("FAVOURITES_BACKEND must be one of: file, redis, database", nil)
	}
	if f.Backend == FavouritesBackendRedis && f.RedisKey == "" {
		return errors.NewConfigurationError("FAVOURITES_REDIS_KEY cannot be empty when using redis", nil)
	}
	return nil
}

func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when using redis favourites", nil)
	}
	if r.DB < 0 || r.DB > maxRedisDB {
		return errors.NewConfigurationError("REDIS_DB must be between 0 and 15", nil)
	}
	if r.DialTimeout < 1 {
		return errors.NewConfigurationError("REDIS_DIAL_TIMEOUT must be at least 1 second", nil)
	}
	if r.ReadTimeout < 1 {
		return errors.NewConfigurationError("REDIS_READ_TIMEOUT must be at least 1 second", nil)
	}
	if r.WriteTimeout < 1 {
		return errors.NewConfigurationError("REDIS_WRITE_TIMEOUT must be at least 1 second", nil)
	}
	return nil
}

func (d *DatabaseConfig) Validate() error {
	switch d.Driver {
	case "sqlite":
		if d.SQLitePath == "" {
			return errors.NewConfigurationError("DB_SQLITE_PATH cannot be empty when DB_DRIVER is sqlite", nil)
		}
		return nil
	case "postgres":
	default:
		return errors.NewConfigurationError("DB_DRIVER must be one of: sqlite, postgres", nil)
	}

	if d.Host == "" {
		return errors.NewConfigurationError("DB_HOST cannot be empty", nil)
	}
	if d.Port < 1 || d.Port > maxPortNumber {
		return errors.NewConfigurationError("DB_PORT must be between 1 and 65535", nil)
	}
	if d.User == "" {
		return errors.NewConfigurationError("DB_USER cannot be empty", nil)
	}
	if d.Name == "" {
		return errors.NewConfigurationError("DB_NAME cannot be empty", nil)
	}
	return d.ValidateSSLMode()
}

func (d *DatabaseConfig) ValidateSSLMode() error {
	validSSLModes := []string{"disable", "require", "verify-ca", "verify-full"}
	for _, mode := range validSSLModes {
		if d.SSLMode == mode {
			return nil
		}
	}
	return errors.NewConfigurationError(
		fmt.Sprintf("DB_SSL_MODE must be one of: %s", strings.Join(validSSLModes, ", ")), nil)
}

func (l *LogConfig) Validate() error {
	switch strings.ToLower(l.Format) {
	case "json", "text":
		return nil
	default:
		return errors.NewConfigurationError("LOG_FORMAT must be one of: json, text", nil)
	}
}

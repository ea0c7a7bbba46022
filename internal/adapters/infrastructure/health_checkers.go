package infrastructure

import (
	"context"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
	"weatherdesk.app/internal/ports"
)

// CredentialsHealthChecker reports whether an API key is available. The key is never exposed.
type CredentialsHealthChecker struct {
	credentials ports.CredentialProvider
}

func NewCredentialsHealthChecker(credentials ports.CredentialProvider) *CredentialsHealthChecker {
	return &CredentialsHealthChecker{credentials: credentials}
}

func (c *CredentialsHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "credentials",
		Status:    statusHealthy,
		Details:   map[string]interface{}{"configured": true},
	}
	if _, err := c.credentials.APIKey(); err != nil {
		status.Status = statusUnhealthy
		status.Error = err.Error()
		status.Details["configured"] = false
	}
	return status
}

// FavouritesStoreHealthChecker verifies the favourites store can be read
type FavouritesStoreHealthChecker struct {
	repository ports.FavouritesRepository
	backend    string
}

func NewFavouritesStoreHealthChecker(repository ports.FavouritesRepository, backend string) *FavouritesStoreHealthChecker {
	return &FavouritesStoreHealthChecker{repository: repository, backend: backend}
}

func (f *FavouritesStoreHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "favourites",
		Status:    statusHealthy,
		Details:   map[string]interface{}{"backend": f.backend},
	}

	entries, err := f.repository.List(ctx)
	if err != nil {
		status.Status = statusUnhealthy
		status.Error = err.Error()
		return status
	}
	status.Details["entries"] = len(entries)
	return status
}

// WeatherProviderHealthChecker reports the configured provider without calling it,
// so health probes never spend API quota
type WeatherProviderHealthChecker struct {
	provider ports.WeatherProvider
}

func NewWeatherProviderHealthChecker(provider ports.WeatherProvider) *WeatherProviderHealthChecker {
	return &WeatherProviderHealthChecker{provider: provider}
}

func (w *WeatherProviderHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "weatherAPI",
		Status:    statusHealthy,
		Details:   map[string]interface{}{},
	}
	if w.provider == nil {
		status.Status = statusUnhealthy
		status.Error = "weather provider is not available"
		return status
	}
	status.Details["provider"] = w.provider.GetProviderName()
	return status
}

// RedisHealthChecker pings the redis server backing the favourites list
type RedisHealthChecker struct {
	client *redis.Client
}

func NewRedisHealthChecker(client *redis.Client) *RedisHealthChecker {
	return &RedisHealthChecker{client: client}
}

func (r *RedisHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "redis",
		Status:    statusHealthy,
		Details:   map[string]interface{}{},
	}
	if r.client == nil {
		status.Status = statusUnhealthy
		status.Error = "redis client is nil"
		return status
	}
	if err := r.client.Ping(ctx).Err(); err != nil {
		status.Status = statusUnhealthy
		status.Error = err.Error()
		return status
	}
	status.Details["addr"] = r.client.Options().Addr
	return status
}

// DatabaseHealthChecker implements database health checking
type DatabaseHealthChecker struct {
	db *gorm.DB
}

func NewDatabaseHealthChecker(db *gorm.DB) *DatabaseHealthChecker {
	return &DatabaseHealthChecker{db: db}
}

func (d *DatabaseHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "database",
		Status:    statusHealthy,
		Details:   make(map[string]interface{}),
	}

	if d.db == nil {
		status.Status = statusUnhealthy
		status.Error = "database instance is nil"
		return status
	}

	sqlDB, err := d.db.DB()
	if err != nil {
		status.Status = statusUnhealthy
		status.Error = "failed to get underlying database connection"
		return status
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		status.Status = statusUnhealthy
		status.Error = err.Error()
		return status
	}

	status.Details["dialect"] = d.db.Dialector.Name()
	return status
}

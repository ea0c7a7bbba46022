package external

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"weatherdesk.app/internal/config"
	"weatherdesk.app/internal/ports"
	"weatherdesk.app/pkg/errors"
)

const initializedSuffix = ":initialized"

// RedisFavouritesRepository implements FavouritesRepository port with a Redis list
type RedisFavouritesRepository struct {
	client    *redis.Client
	key       string
	markerKey string
}

// NewRedisClient creates a Redis client and verifies the connection
func NewRedisClient(cfg *config.RedisConfig) (*redis.Client, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("redis config cannot be nil", nil)
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  time.Duration(cfg.DialTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.NewStorageError("failed to connect to Redis", err)
	}

	return client, nil
}

// NewRedisFavouritesRepository creates a repository storing favourites under key
func NewRedisFavouritesRepository(client *redis.Client, key string) (ports.FavouritesRepository, error) {
	if client == nil {
		return nil, errors.NewConfigurationError("redis client cannot be nil", nil)
	}
	if key == "" {
		return nil, errors.NewConfigurationError("favourites redis key cannot be empty", nil)
	}

	return &RedisFavouritesRepository{
		client:    client,
		key:       key,
		markerKey: key + initializedSuffix,
	}, nil
}

// Append adds a city to the end of the list
func (r *RedisFavouritesRepository) Append(ctx context.Context, city string) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, r.key, city)
		pipe.Set(ctx, r.markerKey, "1", 0)
		return nil
	})
	if err != nil {
		return errors.NewStorageError("redis append operation failed", err)
	}
	return nil
}

// List returns every stored city in insertion order
func (r *RedisFavouritesRepository) List(ctx context.Context) ([]string, error) {
	cities, err := r.client.LRange(ctx, r.key, 0, -1).Result()
	if err != nil {
		return nil, errors.NewStorageError("redis list operation failed", err)
	}
	return cities, nil
}

// Seed stores defaults unless the list or its marker already exists.
// The defaults and the marker are written in one transaction, so a failed seed leaves
// the store unmarked. An emptied list keeps its marker and is not seeded again.
func (r *RedisFavouritesRepository) Seed(ctx context.Context, defaults []string) (bool, error) {
	seeded := false
	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		existing, err := tx.Exists(ctx, r.key, r.markerKey).Result()
		if err != nil {
			return err
		}
		if existing > 0 {
			return nil
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			if len(defaults) > 0 {
				values := make([]interface{}, len(defaults))
				for i, city := range defaults {
					values[i] = city
				}
				pipe.RPush(ctx, r.key, values...)
			}
			pipe.Set(ctx, r.markerKey, "1", 0)
			return nil
		})
		if err != nil {
			return err
		}
		seeded = true
		return nil
	}, r.key, r.markerKey)

	// another instance touched the keys first
	if err == redis.TxFailedErr {
		return false, nil
	}
	if err != nil {
		return false, errors.NewStorageError("redis seed operation failed", err)
	}
	return seeded, nil
}

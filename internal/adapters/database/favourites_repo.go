package database

import (
	"context"
	"time"

	"gorm.io/gorm"
	"weatherdesk.app/internal/ports"
	"weatherdesk.app/pkg/errors"
)

// FavouriteCityModel represents the database model for favourite cities.
// The auto-increment ID preserves insertion order.
type FavouriteCityModel struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	City      string `gorm:"not null"`
	CreatedAt time.Time
}

func (FavouriteCityModel) TableName() string {
	return "favourite_cities"
}

// FavouritesRepositoryAdapter implements the FavouritesRepository port using GORM
type FavouritesRepositoryAdapter struct {
	db *gorm.DB
}

// NewFavouritesRepositoryAdapter creates a new favourites repository adapter
func NewFavouritesRepositoryAdapter(db *gorm.DB) ports.FavouritesRepository {
	return &FavouritesRepositoryAdapter{db: db}
}

// Append inserts a city as the newest entry
func (r *FavouritesRepositoryAdapter) Append(ctx context.Context, city string) error {
	model := &FavouriteCityModel{City: city}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return errors.NewStorageError("failed to save favourite city", err)
	}
	return nil
}

// List returns every city ordered by insertion
func (r *FavouritesRepositoryAdapter) List(ctx context.Context) ([]string, error) {
	var cities []string
	result := r.db.WithContext(ctx).
		Model(&FavouriteCityModel{}).
		Order("id ASC").
		Pluck("city", &cities)
	if result.Error != nil {
		return nil, errors.NewStorageError("failed to list favourite cities", result.Error)
	}
	return cities, nil
}

// Seed inserts defaults when the table holds no entries
func (r *FavouritesRepositoryAdapter) Seed(ctx context.Context, defaults []string) (bool, error) {
	seeded := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&FavouriteCityModel{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		seeded = true
		if len(defaults) == 0 {
			return nil
		}

		models := make([]FavouriteCityModel, len(defaults))
		for i, city := range defaults {
			models[i] = FavouriteCityModel{City: city}
		}
		return tx.Create(&models).Error
	})
	if err != nil {
		return false, errors.NewStorageError("failed to seed favourite cities", err)
	}
	return seeded, nil
}

package favourites

import (
	"fmt"
	"strings"

	"weatherdesk.app/pkg/errors"
	"weatherdesk.app/pkg/validation"
)

// MaxCityNameLength bounds a saved name in characters; keep in sync with the max rule below
const MaxCityNameLength = 100

// SaveRequest represents a request to add a city to the favourites list
type SaveRequest struct {
	City string `json:"city" validate:"required,max=100,singleline"`
}

// Normalize trims surrounding whitespace from the city name
func (r *SaveRequest) Normalize() {
	r.City = strings.TrimSpace(r.City)
}

// IsValid checks the city can be stored as a single list entry
func (r *SaveRequest) IsValid() error {
	switch validation.FailedTag(validation.Validator().Struct(r)) {
	case "":
		return nil
	case "required":
		return errors.NewValidationError("no city to save, please enter a city name")
	case "max":
		return errors.NewValidationError(fmt.Sprintf("city name cannot be longer than %d characters", MaxCityNameLength))
	case "singleline":
		return errors.NewValidationError("city name cannot contain line breaks")
	default:
		return errors.NewValidationError("invalid city name")
	}
}

// cleanList trims entries and drops blank ones, keeping order and duplicates
func cleanList(entries []string) []string {
	cities := make([]string, 0, len(entries))
	for _, entry := range entries {
		if city := strings.TrimSpace(entry); city != "" {
			cities = append(cities, city)
		}
	}
	return cities
}

package lookup

import (
	"math"
	"strconv"
	"strings"

	"weatherdesk.app/internal/core/weather"
	"weatherdesk.app/pkg/errors"
	"weatherdesk.app/pkg/validation"
)

const (
	msgMissingInput       = "please enter a valid city name or both a latitude and longitude"
	msgInvalidCoordinates = "invalid latitude or longitude, please enter numeric values"
	msgForecastFailed     = "could not retrieve the forecast"
)

// ShowRequest is the raw user input of a weather lookup
type ShowRequest struct {
	City      string `form:"city" json:"city"`
	Latitude  string `form:"lat" json:"lat"`
	Longitude string `form:"lon" json:"lon"`
}

// Normalize trims surrounding whitespace from every field
func (r *ShowRequest) Normalize() {
	r.City = strings.TrimSpace(r.City)
	r.Latitude = strings.TrimSpace(r.Latitude)
	r.Longitude = strings.TrimSpace(r.Longitude)
}

// HasCity reports whether the request names a city that should be geocoded
func (r *ShowRequest) HasCity() bool {
	return validation.Var(r.City, "cityname") == nil
}

// Coordinate parses the latitude and longitude fields
func (r *ShowRequest) Coordinate() (weather.Coordinate, error) {
	if r.Latitude == "" || r.Longitude == "" {
		return weather.Coordinate{}, errors.NewValidationError(msgMissingInput)
	}

	lat, err := parseFinite(r.Latitude)
	if err != nil {
		return weather.Coordinate{}, errors.NewValidationError(msgInvalidCoordinates)
	}
	lon, err := parseFinite(r.Longitude)
	if err != nil {
		return weather.Coordinate{}, errors.NewValidationError(msgInvalidCoordinates)
	}

	return weather.NewCoordinate(lat, lon)
}

func parseFinite(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, strconv.ErrSyntax
	}
	return v, nil
}

// Report is the result of a weather lookup
type Report struct {
	Coordinate          weather.Coordinate         `json:"coordinate"`
	Current             *weather.CurrentConditions `json:"current"`
	Summary             string                     `json:"summary"`
	Forecast            *weather.ForecastSet       `json:"forecast,omitempty"`
	ForecastUnavailable bool                       `json:"forecast_unavailable"`
	ForecastMessage     string                     `json:"forecast_message,omitempty"`
}

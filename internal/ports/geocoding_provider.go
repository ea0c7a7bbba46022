package ports

import "context"

// GeoQuery represents a direct geocoding request
type GeoQuery struct {
	City   string
	Limit  int
	APIKey string
}

// GeoMatch represents one location returned by a geocoding provider
type GeoMatch struct {
	Name      string
	Country   string
	Latitude  float64
	Longitude float64
}

// GeocodingProvider defines the contract for resolving place names to coordinates
type GeocodingProvider interface {
	Direct(ctx context.Context, query GeoQuery) ([]GeoMatch, error)
	GetProviderName() string
}

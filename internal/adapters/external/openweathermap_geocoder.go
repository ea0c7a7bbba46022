package external

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"strings"

	"weatherdesk.app/internal/ports"
	"weatherdesk.app/pkg/errors"
)

const defaultGeocodingURL = "http://api.openweathermap.org/geo/1.0"

// OpenWeatherMapGeocoderAdapter implements GeocodingProvider port with the direct geocoding API
type OpenWeatherMapGeocoderAdapter struct {
	baseURL string
	client  HTTPClient
	logger  ports.Logger
}

// OpenWeatherMapGeocoderParams holds parameters for creating the geocoder
type OpenWeatherMapGeocoderParams struct {
	BaseURL string
	Client  HTTPClient
	Logger  ports.Logger
}

type owmGeoMatch struct {
	Name    string   `json:"name"`
	Country string   `json:"country"`
	Lat     *float64 `json:"lat"`
	Lon     *float64 `json:"lon"`
}

// NewOpenWeatherMapGeocoderAdapter creates a new geocoding adapter
func NewOpenWeatherMapGeocoderAdapter(params OpenWeatherMapGeocoderParams) ports.GeocodingProvider {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = defaultGeocodingURL
	}
	client := params.Client
	if client == nil {
		client = NewHTTPClient(0)
	}

	return &OpenWeatherMapGeocoderAdapter{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		logger:  params.Logger,
	}
}

// Direct looks up locations matching a place name
func (g *OpenWeatherMapGeocoderAdapter) Direct(ctx context.Context, query ports.GeoQuery) ([]ports.GeoMatch, error) {
	if strings.TrimSpace(query.City) == "" {
		return nil, errors.NewValidationError("city cannot be empty")
	}

	params := url.Values{}
	params.Set("q", query.City)
	if query.Limit > 0 {
		params.Set("limit", strconv.Itoa(query.Limit))
	}
	params.Set("appid", query.APIKey)

	body, err := fetch(ctx, g.client, g.logger, openWeatherMapName, g.baseURL+"/direct", params)
	if err != nil {
		return nil, err
	}

	var apiResp []owmGeoMatch
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, errors.NewDataError("failed to decode OpenWeatherMap geocoding response", err)
	}

	// only the first match is used, so only it must carry a position
	matches := make([]ports.GeoMatch, 0, len(apiResp))
	for i, m := range apiResp {
		if m.Lat == nil || m.Lon == nil {
			if i == 0 {
				return nil, errors.NewDataError("geocoding match 0 is missing lat or lon", nil)
			}
			continue
		}
		matches = append(matches, ports.GeoMatch{
			Name:      m.Name,
			Country:   m.Country,
			Latitude:  *m.Lat,
			Longitude: *m.Lon,
		})
	}
	return matches, nil
}

// GetProviderName returns the name of this geocoding provider
func (g *OpenWeatherMapGeocoderAdapter) GetProviderName() string {
	return "openweathermap-geocoding"
}

package external

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"weatherdesk.app/internal/ports"
	"weatherdesk.app/pkg/errors"
)

const (
	openWeatherMapName       = "OpenWeatherMap"
	defaultOpenWeatherMapURL = "https://api.openweathermap.org/data/2.5"
	defaultIconURL           = "http://openweathermap.org/img/wn"
	metricUnits              = "metric"
)

// OpenWeatherMapProviderAdapter implements WeatherProvider port for OpenWeatherMap
type OpenWeatherMapProviderAdapter struct {
	baseURL     string
	iconBaseURL string
	client      HTTPClient
	logger      ports.Logger
}

// OpenWeatherMapProviderParams holds parameters for creating OpenWeatherMap provider
type OpenWeatherMapProviderParams struct {
	BaseURL     string
	IconBaseURL string
	// Client defaults to an http.Client without a timeout
	Client HTTPClient
	Logger ports.Logger
}

// owmCondition is one entry of the "weather" array
type owmCondition struct {
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
}

type owmMain struct {
	Temp *float64 `json:"temp"`
}

// OpenWeatherMapCurrentResponse represents the /weather response
type OpenWeatherMapCurrentResponse struct {
	Name    *string        `json:"name"`
	Main    *owmMain       `json:"main"`
	Weather []owmCondition `json:"weather"`
}

// OpenWeatherMapForecastResponse represents the /forecast response
type OpenWeatherMapForecastResponse struct {
	List *[]struct {
		Dt      *int64         `json:"dt"`
		Main    *owmMain       `json:"main"`
		Weather []owmCondition `json:"weather"`
	} `json:"list"`
}

// NewOpenWeatherMapProviderAdapter creates a new OpenWeatherMap provider adapter
func NewOpenWeatherMapProviderAdapter(params OpenWeatherMapProviderParams) ports.WeatherProvider {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenWeatherMapURL
	}
	iconBaseURL := params.IconBaseURL
	if iconBaseURL == "" {
		iconBaseURL = defaultIconURL
	}
	client := params.Client
	if client == nil {
		client = NewHTTPClient(0)
	}

	return &OpenWeatherMapProviderAdapter{
		baseURL:     strings.TrimRight(baseURL, "/"),
		iconBaseURL: strings.TrimRight(iconBaseURL, "/"),
		client:      client,
		logger:      params.Logger,
	}
}

// GetCurrentConditions retrieves current conditions from the /weather endpoint
func (p *OpenWeatherMapProviderAdapter) GetCurrentConditions(ctx context.Context, query ports.WeatherQuery) (*ports.CurrentConditionsData, error) {
	body, err := fetch(ctx, p.client, p.logger, openWeatherMapName, p.baseURL+"/weather", coordinateParams(query))
	if err != nil {
		return nil, err
	}

	var apiResp OpenWeatherMapCurrentResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, errors.NewDataError("failed to decode OpenWeatherMap response", err)
	}

	if apiResp.Main == nil || apiResp.Main.Temp == nil {
		return nil, errors.NewDataError("OpenWeatherMap response is missing main.temp", nil)
	}
	if len(apiResp.Weather) == 0 || apiResp.Weather[0].Description == nil {
		return nil, errors.NewDataError("OpenWeatherMap response is missing weather[0].description", nil)
	}
	if apiResp.Weather[0].Icon == nil || *apiResp.Weather[0].Icon == "" {
		return nil, errors.NewDataError("OpenWeatherMap response is missing weather[0].icon", nil)
	}

	name := ""
	if apiResp.Name != nil {
		name = *apiResp.Name
	}

	return &ports.CurrentConditionsData{
		LocationName: name,
		Temperature:  *apiResp.Main.Temp,
		Description:  *apiResp.Weather[0].Description,
		Icon:         *apiResp.Weather[0].Icon,
	}, nil
}

// GetForecast retrieves the 5 day / 3 hour feed from the /forecast endpoint
func (p *OpenWeatherMapProviderAdapter) GetForecast(ctx context.Context, query ports.WeatherQuery) ([]ports.ForecastSampleData, error) {
	body, err := fetch(ctx, p.client, p.logger, openWeatherMapName, p.baseURL+"/forecast", coordinateParams(query))
	if err != nil {
		return nil, err
	}

	var apiResp OpenWeatherMapForecastResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, errors.NewDataError("failed to decode OpenWeatherMap forecast response", err)
	}
	if apiResp.List == nil {
		return nil, errors.NewDataError("OpenWeatherMap forecast response is missing list", nil)
	}

	samples := make([]ports.ForecastSampleData, 0, len(*apiResp.List))
	for i, item := range *apiResp.List {
		switch {
		case item.Dt == nil:
			return nil, errors.NewDataError(fmt.Sprintf("forecast sample %d is missing dt", i), nil)
		case item.Main == nil || item.Main.Temp == nil:
			return nil, errors.NewDataError(fmt.Sprintf("forecast sample %d is missing main.temp", i), nil)
		case len(item.Weather) == 0 || item.Weather[0].Description == nil:
			return nil, errors.NewDataError(fmt.Sprintf("forecast sample %d is missing weather[0].description", i), nil)
		}

		samples = append(samples, ports.ForecastSampleData{
			Timestamp:   time.Unix(*item.Dt, 0),
			Temperature: *item.Main.Temp,
			Description: *item.Weather[0].Description,
		})
	}

	return samples, nil
}

// GetIcon downloads the PNG image for an icon identifier
func (p *OpenWeatherMapProviderAdapter) GetIcon(ctx context.Context, icon string) ([]byte, error) {
	if strings.TrimSpace(icon) == "" {
		return nil, errors.NewDataError("icon identifier cannot be empty", nil)
	}

	body, err := fetch(ctx, p.client, p.logger, openWeatherMapName, p.iconBaseURL+"/"+url.PathEscape(icon)+".png", nil)
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return nil, errors.NewDataError("OpenWeatherMap returned an empty icon", nil)
	}
	return body, nil
}

// GetProviderName returns the name of this weather provider
func (p *OpenWeatherMapProviderAdapter) GetProviderName() string {
	return "openweathermap"
}

func coordinateParams(query ports.WeatherQuery) url.Values {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(query.Latitude, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(query.Longitude, 'f', -1, 64))
	params.Set("appid", query.APIKey)
	params.Set("units", metricUnits)
	return params
}

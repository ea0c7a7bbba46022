package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"weatherdesk.app/internal/core/lookup"
	"weatherdesk.app/internal/core/weather"
	"weatherdesk.app/pkg/errors"
)

// ForecastResponse represents the HTTP response for a daily forecast
type ForecastResponse struct {
	Coordinate weather.Coordinate   `json:"coordinate"`
	Forecast   *weather.ForecastSet `json:"forecast"`
}

// CurrentWeatherResponse represents the HTTP response for current conditions
type CurrentWeatherResponse struct {
	Coordinate weather.Coordinate         `json:"coordinate"`
	Current    *weather.CurrentConditions `json:"current"`
	Summary    string                     `json:"summary"`
}

// GeocodeResponse represents the HTTP response for a city lookup
type GeocodeResponse struct {
	City       string             `json:"city"`
	Coordinate weather.Coordinate `json:"coordinate"`
}

// showWeather handles GET /api/weather requests
func (s *HTTPServerAdapter) showWeather(c *gin.Context) {
	var request lookup.ShowRequest
	if err := c.ShouldBindQuery(&request); err != nil {
		s.handleError(c, errors.NewValidationError("invalid query parameters"))
		return
	}

	report, err := s.lookupUseCase.Show(c.Request.Context(), request)
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// getCurrentWeather handles GET /api/weather/current requests
func (s *HTTPServerAdapter) getCurrentWeather(c *gin.Context) {
	coord, err := coordinateFromQuery(c)
	if err != nil {
		s.handleError(c, err)
		return
	}

	current, err := s.weatherUseCase.FetchCurrent(c.Request.Context(), coord)
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, CurrentWeatherResponse{
		Coordinate: coord,
		Current:    current,
		Summary:    current.Summary(),
	})
}

// getForecast handles GET /api/weather/forecast requests
func (s *HTTPServerAdapter) getForecast(c *gin.Context) {
	coord, err := coordinateFromQuery(c)
	if err != nil {
		s.handleError(c, err)
		return
	}

	forecast, err := s.weatherUseCase.FetchForecast(c.Request.Context(), coord)
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ForecastResponse{Coordinate: coord, Forecast: forecast})
}

// geocode handles GET /api/geocode requests
func (s *HTTPServerAdapter) geocode(c *gin.Context) {
	city := c.Query("city")

	coord, err := s.geocodingUseCase.ResolveCity(c.Request.Context(), city)
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, GeocodeResponse{City: city, Coordinate: coord})
}

func coordinateFromQuery(c *gin.Context) (weather.Coordinate, error) {
	request := lookup.ShowRequest{
		Latitude:  c.Query("lat"),
		Longitude: c.Query("lon"),
	}
	request.Normalize()
	return request.Coordinate()
}

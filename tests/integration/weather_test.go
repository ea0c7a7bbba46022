package integration

import (
	"net/http"

	"weatherdesk.app/internal/adapters/api"
	"weatherdesk.app/tests/integration/helpers"
)

type reportBody struct {
	Coordinate struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"coordinate"`
	Current struct {
		LocationName string  `json:"location_name"`
		Temperature  float64 `json:"temperature"`
		Description  string  `json:"description"`
		IconID       string  `json:"icon_id"`
		Icon         []byte  `json:"icon"`
	} `json:"current"`
	Summary  string `json:"summary"`
	Forecast []struct {
		Date        string  `json:"date"`
		Temperature float64 `json:"temperature"`
		Description string  `json:"description"`
	} `json:"forecast"`
	ForecastUnavailable bool   `json:"forecast_unavailable"`
	ForecastMessage     string `json:"forecast_message"`
}

func (s *IntegrationTestSuite) TestShowWeather_ByCity() {
	w := s.request(http.MethodGet, "/api/weather?city=London", "")
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var report reportBody
	s.decode(w, &report)

	london := helpers.Cities["london"]
	s.Equal(london.Lat, report.Coordinate.Latitude)
	s.Equal(london.Lon, report.Coordinate.Longitude)
	s.Equal("London", report.Current.LocationName)
	s.Equal(15.0, report.Current.Temperature)
	s.Equal("03d", report.Current.IconID)
	s.Equal(helpers.IconPNG, report.Current.Icon)
	s.Equal("The current temperature in London is 15.0 degrees Celsius.\nAdditional details: scattered clouds.", report.Summary)

	s.False(report.ForecastUnavailable)
	s.GreaterOrEqual(len(report.Forecast), 4)
	s.LessOrEqual(len(report.Forecast), 5)

	seen := make(map[string]bool)
	for _, entry := range report.Forecast {
		s.False(seen[entry.Date], "duplicate forecast date %s", entry.Date)
		seen[entry.Date] = true
	}
}

func (s *IntegrationTestSuite) TestShowWeather_CityTakesPrecedenceOverCoordinates() {
	w := s.request(http.MethodGet, "/api/weather?city=Paris&lat=10&lon=10", "")
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var report reportBody
	s.decode(w, &report)
	s.Equal("Paris", report.Current.LocationName)
}

func (s *IntegrationTestSuite) TestShowWeather_GeocodedCoordinateUsedAsIs() {
	w := s.request(http.MethodGet, "/api/weather?city=Faraway", "")
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var report reportBody
	s.decode(w, &report)
	s.Equal(123.0, report.Coordinate.Latitude)
	s.Equal(456.0, report.Coordinate.Longitude)
	s.Equal("Faraway", report.Current.LocationName)
}

func (s *IntegrationTestSuite) TestShowWeather_ByCoordinates() {
	w := s.request(http.MethodGet, "/api/weather?lat=%2052.517&lon=13.3889", "")
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var report reportBody
	s.decode(w, &report)
	s.Equal("Berlin", report.Current.LocationName)
	s.Equal(52.517, report.Coordinate.Latitude)
}

func (s *IntegrationTestSuite) TestShowWeather_InvalidInput() {
	tests := []struct {
		name     string
		path     string
		expected int
		kind     string
	}{
		{"no input", "/api/weather", http.StatusBadRequest, "VALIDATION_ERROR"},
		{"latitude only", "/api/weather?lat=10", http.StatusBadRequest, "VALIDATION_ERROR"},
		{"non numeric", "/api/weather?lat=abc&lon=10", http.StatusBadRequest, "VALIDATION_ERROR"},
		{"out of range", "/api/weather?lat=91&lon=10", http.StatusBadRequest, "VALIDATION_ERROR"},
		{"unknown city", "/api/weather?city=Atlantis", http.StatusNotFound, "NOT_FOUND_ERROR"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			w := s.request(http.MethodGet, tt.path, "")
			s.Equal(tt.expected, w.Code, w.Body.String())

			var response api.ErrorResponse
			s.decode(w, &response)
			s.Equal(tt.kind, response.Kind)
			s.NotEmpty(response.Error)
		})
	}
}

func (s *IntegrationTestSuite) TestShowWeather_ForecastFailureKeepsCurrent() {
	w := s.request(http.MethodGet, "/api/weather?lat=77.7&lon=0", "")
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var report reportBody
	s.decode(w, &report)
	s.Equal(20.0, report.Current.Temperature)
	s.True(report.ForecastUnavailable)
	s.Equal("could not retrieve the forecast", report.ForecastMessage)
	s.Empty(report.Forecast)
}

func (s *IntegrationTestSuite) TestShowWeather_ProviderFailure() {
	w := s.request(http.MethodGet, "/api/weather?lat=66.6&lon=0", "")
	s.Equal(http.StatusBadGateway, w.Code, w.Body.String())
}

func (s *IntegrationTestSuite) TestCurrentAndForecastEndpoints() {
	w := s.request(http.MethodGet, "/api/weather/current?lat=48.8589&lon=2.32", "")
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var current api.CurrentWeatherResponse
	s.decode(w, &current)
	s.Equal("Paris", current.Current.LocationName)
	s.Contains(current.Summary, "clear sky")

	w = s.request(http.MethodGet, "/api/weather/forecast?lat=48.8589&lon=2.32", "")
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var forecast reportBody
	s.decode(w, &forecast)
	s.Require().NotEmpty(forecast.Forecast)
	for _, entry := range forecast.Forecast {
		s.GreaterOrEqual(entry.Temperature, 18.0)
		s.LessOrEqual(entry.Temperature, 25.0)
	}
}

func (s *IntegrationTestSuite) TestGeocodeEndpoint() {
	w := s.request(http.MethodGet, "/api/geocode?city=berlin", "")
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var response api.GeocodeResponse
	s.decode(w, &response)
	s.Equal("berlin", response.City)
	s.Equal(52.517, response.Coordinate.Latitude)
	s.Equal(13.3889, response.Coordinate.Longitude)

	w = s.request(http.MethodGet, "/api/geocode?city=Atlantis", "")
	s.Equal(http.StatusNotFound, w.Code)
}

package integration

import (
	"net/http"
	"net/url"
	"strings"

	"weatherdesk.app/internal/adapters/api"
)

// TestLookupThenSaveWorkflow follows a user who looks up a city, saves it and
// later reopens the app to pick it from the favourites list
func (s *IntegrationTestSuite) TestLookupThenSaveWorkflow() {
	w := s.request(http.MethodGet, "/api/weather?city="+url.QueryEscape(" Berlin "), "")
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var report reportBody
	s.decode(w, &report)
	s.Equal("Berlin", report.Current.LocationName)

	w = s.request(http.MethodPost, "/api/favourites", `{"city":" Berlin "}`)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	s.Require().NoError(s.application.Shutdown())
	s.application = nil
	s.restart()

	favourites := s.favourites()
	s.Equal([]string{"New York", "Dallas", "Berlin"}, favourites)

	chosen := favourites[len(favourites)-1]
	w = s.request(http.MethodGet, "/api/weather?city="+url.QueryEscape(chosen), "")
	s.Require().Equal(http.StatusOK, w.Code)

	var again reportBody
	s.decode(w, &again)
	s.Equal(report.Coordinate, again.Coordinate)
}

func (s *IntegrationTestSuite) TestHealthAndMetrics() {
	w := s.request(http.MethodGet, "/api/health", "")
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var health api.HealthResponse
	s.decode(w, &health)
	s.Equal("healthy", health.Status)
	s.Contains(health.Components, "credentials")
	s.Contains(health.Components, "favourites")
	s.Contains(health.Components, "weatherAPI")

	w = s.request(http.MethodGet, "/api/weather?city=Paris", "")
	s.Require().Equal(http.StatusOK, w.Code)

	w = s.request(http.MethodGet, "/metrics", "")
	s.Require().Equal(http.StatusOK, w.Code)

	body := w.Body.String()
	s.True(strings.Contains(body, `weatherdesk_provider_requests_total{operation="geocode",outcome="success"} 1`), body)
	s.True(strings.Contains(body, `weatherdesk_provider_requests_total{operation="current",outcome="success"} 1`))
	s.True(strings.Contains(body, `weatherdesk_http_requests_total{method="GET",route="/api/weather",status="200"} 1`))
}

func (s *IntegrationTestSuite) TestRequestIDIsEchoed() {
	w := s.request(http.MethodGet, "/api/weather", "")
	s.Require().Equal(http.StatusBadRequest, w.Code)

	var response api.ErrorResponse
	s.decode(w, &response)
	s.NotEmpty(response.RequestID)
	s.Equal(response.RequestID, w.Header().Get("X-Request-ID"))
}

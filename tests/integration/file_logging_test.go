package integration

import (
	"bufio"
	"encoding/json"
	"net/http"
	"os"
	"strings"
)

func (s *IntegrationTestSuite) readProviderLog() []map[string]interface{} {
	file, err := os.Open(s.config.Weather.LogFilePath)
	s.Require().NoError(err)
	defer func() { _ = file.Close() }()

	var entries []map[string]interface{}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var entry map[string]interface{}
		s.Require().NoError(json.Unmarshal(scanner.Bytes(), &entry), scanner.Text())
		entries = append(entries, entry)
	}
	s.Require().NoError(scanner.Err())
	return entries
}

func (s *IntegrationTestSuite) TestFileLogging_ProviderRequests() {
	if !s.config.Weather.EnableLogging {
		s.T().Skip("Weather logging is not enabled in test configuration")
	}

	w := s.request(http.MethodGet, "/api/weather?city=London", "")
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	s.Require().FileExists(s.config.Weather.LogFilePath)
	entries := s.readProviderLog()

	messages := make(map[string]int)
	operations := make(map[string]bool)
	for _, entry := range entries {
		messages[entry["message"].(string)]++
		if op, ok := entry["operation"].(string); ok {
			operations[op] = true
		}

		s.NotEmpty(entry["timestamp"])
		s.NotEmpty(entry["level"])
		for key, value := range entry {
			if str, ok := value.(string); ok {
				s.NotContains(str, "test-api-key", "API key leaked in field %s", key)
			}
		}
	}

	s.Equal(1, messages["Geocoding request started"])
	s.Equal(1, messages["Geocoding request completed"])
	s.Equal(2, messages["Weather API request started"])
	s.Equal(2, messages["Weather API request completed"])
	s.True(operations["current"])
	s.True(operations["forecast"])
}

func (s *IntegrationTestSuite) TestFileLogging_ProviderFailure() {
	w := s.request(http.MethodGet, "/api/weather?lat=66.6&lon=0", "")
	s.Require().Equal(http.StatusBadGateway, w.Code)

	var failures []map[string]interface{}
	for _, entry := range s.readProviderLog() {
		if entry["level"] == "ERROR" {
			failures = append(failures, entry)
		}
	}

	s.Require().Len(failures, 1)
	s.Equal("Weather API request failed", failures[0]["message"])
	s.Equal("current", failures[0]["operation"])
	s.Equal("error", failures[0]["event"])
	s.True(strings.Contains(failures[0]["error"].(string), "500"), failures[0]["error"])
}

package external

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherdesk.app/internal/ports"
)

// Simple test using concrete implementations instead of mocks
func TestWeatherProviderLoggingDecorator_BasicFunctionality(t *testing.T) {
	testProvider := &testWeatherProvider{
		name:    "test-provider",
		current: &ports.CurrentConditionsData{LocationName: "Sacramento", Temperature: 22.0, Description: "Test weather", Icon: "01d"},
	}
	testLogger := &testLogger{entries: []logEntry{}}

	decorator := NewWeatherProviderLoggingDecorator(testProvider, testLogger)

	ctx := context.Background()
	result, err := decorator.GetCurrentConditions(ctx, ports.WeatherQuery{Latitude: 1.5, Longitude: 2.5, APIKey: "secret-key"})

	assert.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, 22.0, result.Temperature)

	require.Equal(t, 2, len(testLogger.entries))

	requestLog := testLogger.entries[0]
	assert.Equal(t, "INFO", requestLog.level)
	assert.Equal(t, "Weather API request started", requestLog.message)
	assert.Equal(t, "test-provider", requestLog.fields["provider"])
	assert.Equal(t, "current", requestLog.fields["operation"])
	assert.Equal(t, 1.5, requestLog.fields["latitude"])
	assert.Equal(t, "request", requestLog.fields["event"])

	responseLog := testLogger.entries[1]
	assert.Equal(t, "INFO", responseLog.level)
	assert.Equal(t, "Weather API request completed", responseLog.message)
	assert.Equal(t, "response", responseLog.fields["event"])
	assert.Equal(t, 22.0, responseLog.fields["temperature"])
	assert.Equal(t, "Sacramento", responseLog.fields["location"])
	assert.Contains(t, responseLog.fields, "duration_ms")

	for _, entry := range testLogger.entries {
		for _, value := range entry.fields {
			assert.NotEqual(t, "secret-key", value)
		}
	}

	assert.Equal(t, "logged(test-provider)", decorator.GetProviderName())
}

func TestWeatherProviderLoggingDecorator_ErrorHandling(t *testing.T) {
	testProvider := &testWeatherProvider{
		name: "error-provider",
		err:  errors.New("API rate limit exceeded"),
	}
	testLogger := &testLogger{entries: []logEntry{}}

	decorator := NewWeatherProviderLoggingDecorator(testProvider, testLogger)

	samples, err := decorator.GetForecast(context.Background(), ports.WeatherQuery{})

	assert.Error(t, err)
	assert.Equal(t, "API rate limit exceeded", err.Error())
	assert.Nil(t, samples)

	require.Equal(t, 2, len(testLogger.entries))
	errorLog := testLogger.entries[1]
	assert.Equal(t, "ERROR", errorLog.level)
	assert.Equal(t, "Weather API request failed", errorLog.message)
	assert.Equal(t, "error-provider", errorLog.fields["provider"])
	assert.Equal(t, "forecast", errorLog.fields["operation"])
	assert.Equal(t, "error", errorLog.fields["event"])
	assert.Equal(t, "API rate limit exceeded", errorLog.fields["error"])
	assert.Contains(t, errorLog.fields, "duration_ms")
}

func TestWeatherProviderLoggingDecorator_ForecastAndIcon(t *testing.T) {
	testProvider := &testWeatherProvider{
		name:     "test-provider",
		forecast: []ports.ForecastSampleData{{Temperature: 1}, {Temperature: 2}},
		icon:     []byte{1, 2, 3},
	}
	testLogger := &testLogger{entries: []logEntry{}}

	decorator := NewWeatherProviderLoggingDecorator(testProvider, testLogger)

	samples, err := decorator.GetForecast(context.Background(), ports.WeatherQuery{})
	require.NoError(t, err)
	assert.Len(t, samples, 2)
	assert.Equal(t, 2, testLogger.entries[1].fields["samples"])

	icon, err := decorator.GetIcon(context.Background(), "01d")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, icon)

	last := testLogger.entries[len(testLogger.entries)-1]
	assert.Equal(t, "DEBUG", last.level)
	assert.Equal(t, "01d", last.fields["icon"])
	assert.Equal(t, 3, last.fields["bytes"])
}

func TestWeatherProviderLoggingDecorator_DurationTracking(t *testing.T) {
	testProvider := &testWeatherProvider{
		name:    "slow-provider",
		current: &ports.CurrentConditionsData{Temperature: 20.0, Description: "Slow weather"},
		delay:   10 * time.Millisecond,
	}
	testLogger := &testLogger{entries: []logEntry{}}

	decorator := NewWeatherProviderLoggingDecorator(testProvider, testLogger)

	result, err := decorator.GetCurrentConditions(context.Background(), ports.WeatherQuery{})

	assert.NoError(t, err)
	assert.NotNil(t, result)

	require.Equal(t, 2, len(testLogger.entries))
	duration, ok := testLogger.entries[1].fields["duration_ms"].(int64)
	assert.True(t, ok)
	assert.GreaterOrEqual(t, duration, int64(10))
}

func TestGeocodingProviderLoggingDecorator(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		testLogger := &testLogger{entries: []logEntry{}}
		decorator := NewGeocodingProviderLoggingDecorator(&testGeocodingProvider{
			matches: []ports.GeoMatch{{Latitude: 123, Longitude: 456}},
		}, testLogger)

		matches, err := decorator.Direct(context.Background(), ports.GeoQuery{City: "Berlin", Limit: 1})

		require.NoError(t, err)
		assert.Len(t, matches, 1)
		require.Equal(t, 2, len(testLogger.entries))
		assert.Equal(t, "Berlin", testLogger.entries[0].fields["city"])
		assert.Equal(t, 1, testLogger.entries[1].fields["matches"])
		assert.Equal(t, "logged(test-geocoder)", decorator.GetProviderName())
	})

	t.Run("Failure", func(t *testing.T) {
		testLogger := &testLogger{entries: []logEntry{}}
		decorator := NewGeocodingProviderLoggingDecorator(&testGeocodingProvider{
			err: errors.New("timeout"),
		}, testLogger)

		_, err := decorator.Direct(context.Background(), ports.GeoQuery{City: "Berlin"})

		assert.EqualError(t, err, "timeout")
		assert.Equal(t, "ERROR", testLogger.entries[1].level)
	})
}

// Test helper structs
type testWeatherProvider struct {
	name     string
	current  *ports.CurrentConditionsData
	forecast []ports.ForecastSampleData
	icon     []byte
	err      error
	delay    time.Duration
}

func (p *testWeatherProvider) wait(ctx context.Context) error {
	if p.delay == 0 {
		return nil
	}
	select {
	case <-time.After(p.delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *testWeatherProvider) GetCurrentConditions(ctx context.Context, query ports.WeatherQuery) (*ports.CurrentConditionsData, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	if p.err != nil {
		return nil, p.err
	}
	return p.current, nil
}

func (p *testWeatherProvider) GetForecast(ctx context.Context, query ports.WeatherQuery) ([]ports.ForecastSampleData, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.forecast, nil
}

func (p *testWeatherProvider) GetIcon(ctx context.Context, icon string) ([]byte, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.icon, nil
}

func (p *testWeatherProvider) GetProviderName() string {
	return p.name
}

type testGeocodingProvider struct {
	matches []ports.GeoMatch
	err     error
}

func (p *testGeocodingProvider) Direct(ctx context.Context, query ports.GeoQuery) ([]ports.GeoMatch, error) {
	return p.matches, p.err
}

func (p *testGeocodingProvider) GetProviderName() string {
	return "test-geocoder"
}

type logEntry struct {
	level   string
	message string
	fields  map[string]interface{}
}

type testLogger struct {
	entries []logEntry
}

func (l *testLogger) Debug(msg string, fields ...ports.Field) {
	l.addEntry("DEBUG", msg, fields...)
}

func (l *testLogger) Info(msg string, fields ...ports.Field) {
	l.addEntry("INFO", msg, fields...)
}

func (l *testLogger) Warn(msg string, fields ...ports.Field) {
	l.addEntry("WARN", msg, fields...)
}

func (l *testLogger) Error(msg string, fields ...ports.Field) {
	l.addEntry("ERROR", msg, fields...)
}

func (l *testLogger) addEntry(level, message string, fields ...ports.Field) {
	fieldMap := make(map[string]interface{})
	for _, field := range fields {
		fieldMap[field.Key] = field.Value
	}

	l.entries = append(l.entries, logEntry{
		level:   level,
		message: message,
		fields:  fieldMap,
	})
}

func BenchmarkWeatherProviderLoggingDecorator(b *testing.B) {
	testProvider := &testWeatherProvider{
		name:    "benchmark-provider",
		current: &ports.CurrentConditionsData{Temperature: 20.0, Description: "Benchmark weather"},
	}
	decorator := NewWeatherProviderLoggingDecorator(testProvider, &testLogger{})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = decorator.GetCurrentConditions(context.Background(), ports.WeatherQuery{})
	}
}

package lookup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherdesk.app/internal/core/weather"
	mocks "weatherdesk.app/internal/mocks"
	"weatherdesk.app/pkg/errors"
)

type fakeWeather struct {
	current     *weather.CurrentConditions
	currentErr  error
	forecast    *weather.ForecastSet
	forecastErr error
	calls       []weather.Coordinate
}

func (f *fakeWeather) FetchCurrent(_ context.Context, coord weather.Coordinate) (*weather.CurrentConditions, error) {
	f.calls = append(f.calls, coord)
	return f.current, f.currentErr
}

func (f *fakeWeather) FetchForecast(_ context.Context, coord weather.Coordinate) (*weather.ForecastSet, error) {
	f.calls = append(f.calls, coord)
	return f.forecast, f.forecastErr
}

type fakeResolver struct {
	coord weather.Coordinate
	err   error
	names []string
}

func (f *fakeResolver) ResolveCity(_ context.Context, name string) (weather.Coordinate, error) {
	f.names = append(f.names, name)
	return f.coord, f.err
}

func sampleForecast() *weather.ForecastSet {
	set := weather.NewForecastSet()
	set.Add(weather.DailyForecastEntry{Date: weather.Date{Year: 2024, Month: time.May, Day: 11}, Temperature: 10, Description: "light rain"})
	return set
}

func newTestUseCase(t *testing.T, w *fakeWeather, r *fakeResolver) *UseCase {
	logger := mocks.NewLogger(t)
	logger.EXPECT().Warn(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()

	uc, err := NewUseCase(UseCaseDependencies{Weather: w, Resolver: r, Logger: logger})
	require.NoError(t, err)
	return uc
}

func TestUseCase_Show_ByCity(t *testing.T) {
	w := &fakeWeather{
		current:  &weather.CurrentConditions{LocationName: "Sacramento", Temperature: 19, Description: "clear sky", IconID: "01d"},
		forecast: sampleForecast(),
	}
	r := &fakeResolver{coord: weather.Coordinate{Latitude: 38.58, Longitude: -121.49}}
	uc := newTestUseCase(t, w, r)

	report, err := uc.Show(context.Background(), ShowRequest{City: " Sacramento ", Latitude: "1", Longitude: "2"})

	require.NoError(t, err)
	assert.Equal(t, []string{"Sacramento"}, r.names)
	assert.Equal(t, []weather.Coordinate{r.coord, r.coord}, w.calls)
	assert.Equal(t, r.coord, report.Coordinate)
	assert.Equal(t, "The current temperature in Sacramento is 19.0 degrees Celsius.\nAdditional details: clear sky.", report.Summary)
	assert.Equal(t, 1, report.Forecast.Len())
	assert.False(t, report.ForecastUnavailable)
}

func TestUseCase_Show_ByCoordinates(t *testing.T) {
	w := &fakeWeather{
		current:  &weather.CurrentConditions{LocationName: weather.DefaultLocationName},
		forecast: sampleForecast(),
	}
	r := &fakeResolver{}
	uc := newTestUseCase(t, w, r)

	report, err := uc.Show(context.Background(), ShowRequest{Latitude: "50.45", Longitude: " 30.52"})

	require.NoError(t, err)
	assert.Empty(t, r.names)
	assert.Equal(t, weather.Coordinate{Latitude: 50.45, Longitude: 30.52}, report.Coordinate)
}

func TestUseCase_Show_NonAlphabeticCityFallsBackToCoordinates(t *testing.T) {
	w := &fakeWeather{current: &weather.CurrentConditions{}, forecast: sampleForecast()}
	r := &fakeResolver{}
	uc := newTestUseCase(t, w, r)

	report, err := uc.Show(context.Background(), ShowRequest{City: "Paris 75", Latitude: "48.85", Longitude: "2.35"})

	require.NoError(t, err)
	assert.Empty(t, r.names)
	assert.Equal(t, 48.85, report.Coordinate.Latitude)
}

func TestUseCase_Show_InvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		request ShowRequest
		errMsg  string
	}{
		{name: "Nothing", request: ShowRequest{}, errMsg: "please enter a valid city name or both a latitude and longitude"},
		{name: "OnlyLatitude", request: ShowRequest{Latitude: "10"}, errMsg: "please enter a valid city name"},
		{name: "BadCityNoCoordinates", request: ShowRequest{City: "12345"}, errMsg: "please enter a valid city name"},
		{name: "NonNumeric", request: ShowRequest{Latitude: "north", Longitude: "10"}, errMsg: "invalid latitude or longitude"},
		{name: "NaN", request: ShowRequest{Latitude: "NaN", Longitude: "10"}, errMsg: "invalid latitude or longitude"},
		{name: "OutOfRange", request: ShowRequest{Latitude: "95", Longitude: "10"}, errMsg: "latitude"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &fakeWeather{}
			uc := newTestUseCase(t, w, &fakeResolver{})

			report, err := uc.Show(context.Background(), tt.request)

			assert.Nil(t, report)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
			assert.Contains(t, err.Error(), tt.errMsg)
			assert.Empty(t, w.calls)
		})
	}
}

func TestUseCase_Show_CityNotFound(t *testing.T) {
	w := &fakeWeather{}
	r := &fakeResolver{err: errors.NewNotFoundError("no coordinates found for Atlantis")}
	uc := newTestUseCase(t, w, r)

	_, err := uc.Show(context.Background(), ShowRequest{City: "Atlantis"})

	assert.True(t, errors.IsNotFoundError(err))
	assert.Empty(t, w.calls)
}

func TestUseCase_Show_CurrentFailureFailsLookup(t *testing.T) {
	w := &fakeWeather{currentErr: errors.NewNetworkError("could not retrieve current weather", nil)}
	uc := newTestUseCase(t, w, &fakeResolver{})

	report, err := uc.Show(context.Background(), ShowRequest{Latitude: "1", Longitude: "1"})

	assert.Nil(t, report)
	assert.True(t, errors.IsNetworkError(err))
	assert.Len(t, w.calls, 1)
}

func TestUseCase_Show_ForecastFailureIsReported(t *testing.T) {
	w := &fakeWeather{
		current:     &weather.CurrentConditions{LocationName: "Dallas", Temperature: 30.26, Description: "hot"},
		forecastErr: errors.NewDataError("forecast response is missing list", nil),
	}
	uc := newTestUseCase(t, w, &fakeResolver{})

	report, err := uc.Show(context.Background(), ShowRequest{Latitude: "32.78", Longitude: "-96.8"})

	require.NoError(t, err)
	assert.True(t, report.ForecastUnavailable)
	assert.Equal(t, "could not retrieve the forecast", report.ForecastMessage)
	assert.Nil(t, report.Forecast)
	assert.Equal(t, "Dallas", report.Current.LocationName)
}

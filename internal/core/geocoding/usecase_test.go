package geocoding

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherdesk.app/internal/core/weather"
	mocks "weatherdesk.app/internal/mocks"
	"weatherdesk.app/internal/ports"
	"weatherdesk.app/pkg/errors"
)

func newTestUseCase(t *testing.T) (*UseCase, *mocks.GeocodingProvider, *mocks.CredentialProvider) {
	provider := mocks.NewGeocodingProvider(t)
	credentials := mocks.NewCredentialProvider(t)
	logger := mocks.NewLogger(t)

	logger.EXPECT().Debug(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything, mock.Anything).Maybe()

	uc, err := NewUseCase(UseCaseDependencies{
		Provider:    provider,
		Credentials: credentials,
		Logger:      logger,
	})
	require.NoError(t, err)
	return uc, provider, credentials
}

func TestUseCase_ResolveCity_FirstMatchAsIs(t *testing.T) {
	uc, provider, credentials := newTestUseCase(t)

	credentials.EXPECT().APIKey().Return("test-key", nil)
	provider.EXPECT().Direct(mock.Anything, ports.GeoQuery{City: "Sacramento", Limit: 1, APIKey: "test-key"}).
		Return([]ports.GeoMatch{
			{Latitude: 123, Longitude: 456},
			{Latitude: 1, Longitude: 2},
		}, nil)

	coord, err := uc.ResolveCity(context.Background(), "Sacramento")

	require.NoError(t, err)
	assert.Equal(t, weather.Coordinate{Latitude: 123, Longitude: 456}, coord)
}

func TestUseCase_ResolveCity_NoMatches(t *testing.T) {
	uc, provider, credentials := newTestUseCase(t)

	credentials.EXPECT().APIKey().Return("test-key", nil)
	provider.EXPECT().Direct(mock.Anything, mock.Anything).Return([]ports.GeoMatch{}, nil)

	coord, err := uc.ResolveCity(context.Background(), "Atlantis")

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
	assert.False(t, errors.IsNetworkError(err))
	assert.Contains(t, err.Error(), "no coordinates found")
	assert.Equal(t, weather.Coordinate{}, coord)
}

func TestUseCase_ResolveCity_ProviderFailure(t *testing.T) {
	uc, provider, credentials := newTestUseCase(t)

	credentials.EXPECT().APIKey().Return("test-key", nil)
	provider.EXPECT().Direct(mock.Anything, mock.Anything).Return(nil, stderrors.New("dial tcp: i/o timeout"))

	_, err := uc.ResolveCity(context.Background(), "London")

	assert.True(t, errors.IsNetworkError(err))
	assert.False(t, errors.IsNotFoundError(err))
}

func TestUseCase_ResolveCity_TrimsName(t *testing.T) {
	uc, provider, credentials := newTestUseCase(t)

	credentials.EXPECT().APIKey().Return("test-key", nil)
	provider.EXPECT().Direct(mock.Anything, mock.MatchedBy(func(q ports.GeoQuery) bool {
		return q.City == "New York"
	})).Return([]ports.GeoMatch{{Latitude: 40.71, Longitude: -74.01}}, nil)

	coord, err := uc.ResolveCity(context.Background(), "  New York ")

	require.NoError(t, err)
	assert.Equal(t, 40.71, coord.Latitude)
}

func TestUseCase_ResolveCity_EmptyName(t *testing.T) {
	uc, _, credentials := newTestUseCase(t)

	_, err := uc.ResolveCity(context.Background(), "   ")

	assert.True(t, errors.IsValidationError(err))
	credentials.AssertNotCalled(t, "APIKey")
}

func TestUseCase_ResolveCity_MissingCredential(t *testing.T) {
	uc, provider, credentials := newTestUseCase(t)

	credentials.EXPECT().APIKey().Return("", errors.NewConfigurationError("API key is not configured", nil))

	_, err := uc.ResolveCity(context.Background(), "Paris")

	assert.True(t, errors.IsConfigurationError(err))
	provider.AssertNotCalled(t, "Direct", mock.Anything, mock.Anything)
}

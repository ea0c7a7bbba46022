package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherdesk.app/internal/app"
	"weatherdesk.app/internal/config"
	"weatherdesk.app/tests/integration/helpers"
)

func serveJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func loadFavourites(t *testing.T, router *gin.Engine) []string {
	t.Helper()
	w := serveJSON(t, router, http.MethodGet, "/api/favourites", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var response struct {
		Favourites []string `json:"favourites"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response.Favourites
}

// TestFavouritesBackends_SurviveRestart checks every backend keeps the list across application restarts
func TestFavouritesBackends_SurviveRestart(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	gin.SetMode(gin.TestMode)

	provider := httptest.NewServer(helpers.NewOpenWeatherMapMock())
	defer provider.Close()

	tests := []struct {
		name      string
		configure func(t *testing.T, cfg *config.Config)
	}{
		{
			name:      "file",
			configure: func(t *testing.T, cfg *config.Config) {},
		},
		{
			name: "redis",
			configure: func(t *testing.T, cfg *config.Config) {
				mr := miniredis.RunT(t)
				cfg.Favourites.Backend = config.FavouritesBackendRedis
				cfg.Redis.Addr = mr.Addr()
			},
		},
		{
			name: "database",
			configure: func(t *testing.T, cfg *config.Config) {
				cfg.Favourites.Backend = config.FavouritesBackendDatabase
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newTestConfig(t, provider.URL)
			tt.configure(t, cfg)

			first, err := app.NewApplicationWithConfig(context.Background(), cfg)
			require.NoError(t, err)

			assert.Equal(t, []string{"New York", "Dallas"}, loadFavourites(t, first.GetRouter()))

			w := serveJSON(t, first.GetRouter(), http.MethodPost, "/api/favourites", `{"city":"London"}`)
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
			require.NoError(t, first.Shutdown())

			second, err := app.NewApplicationWithConfig(context.Background(), cfg)
			require.NoError(t, err)
			defer func() { _ = second.Shutdown() }()

			favourites := loadFavourites(t, second.GetRouter())
			assert.Equal(t, []string{"New York", "Dallas", "London"}, favourites)

			w = serveJSON(t, second.GetRouter(), http.MethodGet, "/api/weather?city="+favourites[2], "")
			assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
		})
	}
}

func TestRedisBackend_Unavailable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	cfg := newTestConfig(t, "http://127.0.0.1:0")
	cfg.Favourites.Backend = config.FavouritesBackendRedis
	cfg.Redis.Addr = addr

	_, err := app.NewApplicationWithConfig(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connect to redis")
}

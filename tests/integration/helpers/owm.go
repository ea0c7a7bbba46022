// Package helpers provides an in-process OpenWeatherMap stand-in for integration tests
// and the standalone mock server.
package helpers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// TestAPIKey is the only key the mock accepts
const TestAPIKey = "test-api-key"

// City is a canned location served by the mock
type City struct {
	Name        string
	Country     string
	Lat         float64
	Lon         float64
	Temp        float64
	Description string
	Icon        string
}

// Cities served by the mock, keyed by lower-case name
var Cities = map[string]City{
	"london": {Name: "London", Country: "GB", Lat: 51.5073, Lon: -0.1276, Temp: 15.0, Description: "scattered clouds", Icon: "03d"},
	"paris":  {Name: "Paris", Country: "FR", Lat: 48.8589, Lon: 2.32, Temp: 18.0, Description: "clear sky", Icon: "01d"},
	"berlin": {Name: "Berlin", Country: "DE", Lat: 52.517, Lon: 13.3889, Temp: 12.0, Description: "overcast clouds", Icon: "04d"},
	// geocoded outside the valid coordinate range
	"faraway": {Name: "Faraway", Country: "XX", Lat: 123, Lon: 456, Temp: 5.0, Description: "fog", Icon: "50d"},
}

// ServerErrorLatitude makes the weather endpoints answer 500
const ServerErrorLatitude = 66.6

// ForecastErrorLatitude makes only the forecast endpoint answer 500
const ForecastErrorLatitude = 77.7

// IconPNG is returned for every icon request
var IconPNG = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// OpenWeatherMapMock serves the geocoding, weather, forecast and icon endpoints
type OpenWeatherMapMock struct {
	// Now anchors the generated forecast feed
	Now func() time.Time
}

// NewOpenWeatherMapMock creates the mock handler
func NewOpenWeatherMapMock() *gin.Engine {
	m := &OpenWeatherMapMock{Now: time.Now}
	return m.Router()
}

// Router builds the gin engine for the mock
func (m *OpenWeatherMapMock) Router() *gin.Engine {
	r := gin.New()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authorized := r.Group("/", requireKey)
	authorized.GET("/geo/1.0/direct", m.direct)
	authorized.GET("/data/2.5/weather", m.weather)
	authorized.GET("/data/2.5/forecast", m.forecast)

	r.GET("/img/wn/:file", func(c *gin.Context) {
		if !strings.HasSuffix(c.Param("file"), ".png") {
			c.Status(http.StatusNotFound)
			return
		}
		c.Data(http.StatusOK, "image/png", IconPNG)
	})

	return r
}

func requireKey(c *gin.Context) {
	if c.Query("appid") != TestAPIKey {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"cod":     401,
			"message": "Invalid API key. Please see https://openweathermap.org/faq#error401 for more info.",
		})
		return
	}
	c.Next()
}

func (m *OpenWeatherMapMock) direct(c *gin.Context) {
	city, ok := Cities[strings.ToLower(strings.TrimSpace(c.Query("q")))]
	if !ok {
		c.JSON(http.StatusOK, []gin.H{})
		return
	}
	c.JSON(http.StatusOK, []gin.H{{
		"name":    city.Name,
		"country": city.Country,
		"lat":     city.Lat,
		"lon":     city.Lon,
	}})
}

func (m *OpenWeatherMapMock) weather(c *gin.Context) {
	lat, lon, ok := coordinates(c)
	if !ok {
		return
	}
	if lat == ServerErrorLatitude {
		c.JSON(http.StatusInternalServerError, gin.H{"cod": 500, "message": "Internal error"})
		return
	}

	city, found := cityAt(lat, lon)
	if !found {
		c.JSON(http.StatusOK, gin.H{
			"name":    "",
			"main":    gin.H{"temp": 20.0},
			"weather": []gin.H{{"description": "light breeze", "icon": "02d"}},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"name":    city.Name,
		"main":    gin.H{"temp": city.Temp},
		"weather": []gin.H{{"description": city.Description, "icon": city.Icon}},
	})
}

// forecast returns 40 three-hourly samples starting at the current 3h slot, like the real API
func (m *OpenWeatherMapMock) forecast(c *gin.Context) {
	lat, lon, ok := coordinates(c)
	if !ok {
		return
	}
	if lat == ServerErrorLatitude || lat == ForecastErrorLatitude {
		c.JSON(http.StatusInternalServerError, gin.H{"cod": "500", "message": "Internal error"})
		return
	}

	base := 10.0
	if city, found := cityAt(lat, lon); found {
		base = city.Temp
	}

	start := m.Now().UTC().Truncate(3 * time.Hour)
	list := make([]gin.H, 0, 40)
	for i := 0; i < 40; i++ {
		ts := start.Add(time.Duration(i) * 3 * time.Hour)
		list = append(list, gin.H{
			"dt":      ts.Unix(),
			"main":    gin.H{"temp": base + float64(i%8)},
			"weather": []gin.H{{"description": "sample " + strconv.Itoa(i), "icon": "01d"}},
			"dt_txt":  ts.Format("2006-01-02 15:04:05"),
		})
	}

	c.JSON(http.StatusOK, gin.H{"cod": "200", "cnt": len(list), "list": list})
}

func coordinates(c *gin.Context) (float64, float64, bool) {
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lon, errLon := strconv.ParseFloat(c.Query("lon"), 64)
	if errLat != nil || errLon != nil {
		c.JSON(http.StatusBadRequest, gin.H{"cod": "400", "message": "wrong latitude or longitude"})
		return 0, 0, false
	}
	return lat, lon, true
}

func cityAt(lat, lon float64) (City, bool) {
	for _, city := range Cities {
		if city.Lat == lat && city.Lon == lon {
			return city, true
		}
	}
	return City{}, false
}

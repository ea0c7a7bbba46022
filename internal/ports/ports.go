package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// Weather
	WeatherProvider   WeatherProvider
	GeocodingProvider GeocodingProvider
	Credentials       CredentialProvider

	// Favourites
	FavouritesRepository FavouritesRepository

	// Infrastructure
	ConfigProvider ConfigProvider
	Logger         Logger
	Metrics        MetricsCollector
}

// Package assets holds files bundled into the binary.
package assets

import (
	_ "embed"
	"strings"
)

//go:embed favourites.txt
var defaultFavourites string

//go:embed index.html
var indexHTML []byte

// DefaultFavourites returns the bundled favourites list used to seed a new store
func DefaultFavourites() []string {
	var cities []string
	for _, line := range strings.Split(defaultFavourites, "\n") {
		if city := strings.TrimSpace(line); city != "" {
			cities = append(cities, city)
		}
	}
	return cities
}

// IndexHTML returns the single page front end
func IndexHTML() []byte {
	return indexHTML
}

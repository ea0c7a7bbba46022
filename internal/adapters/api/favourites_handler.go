package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"weatherdesk.app/internal/core/favourites"
	"weatherdesk.app/pkg/errors"
)

// SaveFavouriteRequest represents the body of POST /api/favourites
type SaveFavouriteRequest struct {
	City string `json:"city"`
}

// FavouritesResponse represents the stored favourites list
type FavouritesResponse struct {
	Favourites []string `json:"favourites"`
}

// SavedFavouriteResponse confirms a saved city
type SavedFavouriteResponse struct {
	City    string `json:"city"`
	Message string `json:"message"`
}

// listFavourites handles GET /api/favourites requests
func (s *HTTPServerAdapter) listFavourites(c *gin.Context) {
	cities, err := s.favouritesUseCase.Load(c.Request.Context())
	if err != nil {
		s.handleError(c, err)
		return
	}
	if cities == nil {
		cities = []string{}
	}

	c.JSON(http.StatusOK, FavouritesResponse{Favourites: cities})
}

// saveFavourite handles POST /api/favourites requests
func (s *HTTPServerAdapter) saveFavourite(c *gin.Context) {
	var body SaveFavouriteRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		s.handleError(c, errors.NewValidationError("request body must be JSON with a city field"))
		return
	}

	city, err := s.favouritesUseCase.Save(c.Request.Context(), favourites.SaveRequest{City: body.City})
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, SavedFavouriteResponse{
		City:    city,
		Message: city + " saved to favourites",
	})
}

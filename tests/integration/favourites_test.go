package integration

import (
	"net/http"
	"os"
	"strings"

	"weatherdesk.app/internal/adapters/api"
)

func (s *IntegrationTestSuite) favourites() []string {
	w := s.request(http.MethodGet, "/api/favourites", "")
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var response api.FavouritesResponse
	s.decode(w, &response)
	return response.Favourites
}

func (s *IntegrationTestSuite) TestFavourites_SeededOnFirstStart() {
	s.Equal([]string{"New York", "Dallas"}, s.favourites())

	content, err := os.ReadFile(s.config.Favourites.FilePath)
	s.Require().NoError(err)
	s.Equal("New York\nDallas\n", string(content))
}

func (s *IntegrationTestSuite) TestFavourites_SaveAppendsTrimmedCity() {
	w := s.request(http.MethodPost, "/api/favourites", `{"city":"  Kyiv  "}`)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var saved api.SavedFavouriteResponse
	s.decode(w, &saved)
	s.Equal("Kyiv", saved.City)
	s.Equal("Kyiv saved to favourites", saved.Message)

	s.Equal([]string{"New York", "Dallas", "Kyiv"}, s.favourites())
}

func (s *IntegrationTestSuite) TestFavourites_DuplicatesAreKept() {
	for i := 0; i < 2; i++ {
		w := s.request(http.MethodPost, "/api/favourites", `{"city":"Dallas"}`)
		s.Require().Equal(http.StatusCreated, w.Code)
	}

	s.Equal([]string{"New York", "Dallas", "Dallas", "Dallas"}, s.favourites())
}

func (s *IntegrationTestSuite) TestFavourites_RejectsInvalidInput() {
	tests := []struct {
		name string
		body string
	}{
		{"blank city", `{"city":"   "}`},
		{"missing city", `{}`},
		{"line break", `{"city":"Kyiv\nLviv"}`},
		{"not json", `city=Kyiv`},
		{"too long", `{"city":"` + strings.Repeat("a", 70000) + `"}`},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			w := s.request(http.MethodPost, "/api/favourites", tt.body)
			s.Equal(http.StatusBadRequest, w.Code, w.Body.String())
		})
	}

	s.Equal([]string{"New York", "Dallas"}, s.favourites())
}

func (s *IntegrationTestSuite) TestFavourites_ExistingStoreIsNotReseeded() {
	s.Require().NoError(s.application.Shutdown())
	s.application = nil

	s.Require().NoError(os.WriteFile(s.config.Favourites.FilePath, []byte("Lisbon\n\n  Porto \n"), 0o644))

	s.restart()

	s.Equal([]string{"Lisbon", "Porto"}, s.favourites())
}

func (s *IntegrationTestSuite) TestFavourites_EmptyStoreStaysEmpty() {
	s.Require().NoError(s.application.Shutdown())
	s.application = nil

	s.Require().NoError(os.WriteFile(s.config.Favourites.FilePath, nil, 0o644))
	s.restart()

	s.Empty(s.favourites())
}

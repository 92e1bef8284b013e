// Package handler exposes HTTP handlers for both authenticated and public endpoints.
// This file defines the public catalog: movie listing with filters, movie
// detail and the theaters showing a movie. These routes allow
// unauthenticated users to browse without requiring authentication.
package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/SamruddhiKhandekar/bookmyseat/internal/repository"
)

// CatalogHandler aggregates repositories needed for browsing movies
// and showings. All responses are sanitized view types; internal
// timestamps are not exposed.
type CatalogHandler struct {
	MovieRepo   *repository.MovieRepo   // provides access to movie and genre data
	TheaterRepo *repository.TheaterRepo // provides access to theater data
}

// NewCatalogHandler constructs a new CatalogHandler with the provided
// repositories. All dependencies must be non-nil.
func NewCatalogHandler(movieRepo *repository.MovieRepo, theaterRepo *repository.TheaterRepo) *CatalogHandler {
	if movieRepo == nil || theaterRepo == nil {
		panic("nil repository passed to NewCatalogHandler")
	}
	return &CatalogHandler{MovieRepo: movieRepo, TheaterRepo: theaterRepo}
}

// MovieView is a movie in list and detail responses.
type MovieView struct {
	ID       uint64      `json:"id"`
	Name     string      `json:"name"`
	Language string      `json:"language"`
	Genres   []GenreView `json:"genres,omitempty"`
}

// GenreView is a genre in responses.
type GenreView struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// TheaterView is a showing in responses.
type TheaterView struct {
	ID       uint64    `json:"id"`
	Name     string    `json:"name"`
	ShowTime time.Time `json:"show_time"`
}

// ListMovies handles GET /v1/movies. The optional query parameters
// `search` (name substring), `language` (exact) and `genres` (genre
// id) are combined with AND; with none set every movie is returned.
func (h *CatalogHandler) ListMovies(c echo.Context) error {
	var f repository.MovieFilter
	f.Search = c.QueryParam("search")
	f.Language = c.QueryParam("language")
	if g := c.QueryParam("genres"); g != "" {
		id, err := strconv.ParseUint(g, 10, 64)
		if err != nil || id == 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid genre id"})
		}
		f.GenreID = id
	}
	ctx := c.Request().Context()
	movies, err := h.MovieRepo.List(ctx, f)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load movies"})
	}
	items := make([]MovieView, 0, len(movies))
	for _, m := range movies {
		items = append(items, MovieView{ID: m.ID, Name: m.Name, Language: m.Language})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetMovie handles GET /v1/movies/:id and returns the movie with its
// genres attached.
func (h *CatalogHandler) GetMovie(c echo.Context) error {
	movieID, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid movie id"})
	}
	ctx := c.Request().Context()
	m, err := h.MovieRepo.GetByID(ctx, movieID)
	if err != nil {
		if err == repository.ErrMovieNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	genres, err := h.MovieRepo.GenresByMovie(ctx, movieID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load genres"})
	}
	view := MovieView{ID: m.ID, Name: m.Name, Language: m.Language}
	for _, g := range genres {
		view.Genres = append(view.Genres, GenreView{ID: g.ID, Name: g.Name})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": view})
}

// ListGenres handles GET /v1/genres. The catalog page uses it to
// populate the genre filter.
func (h *CatalogHandler) ListGenres(c echo.Context) error {
	genres, err := h.MovieRepo.ListGenres(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load genres"})
	}
	items := make([]GenreView, 0, len(genres))
	for _, g := range genres {
		items = append(items, GenreView{ID: g.ID, Name: g.Name})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// ListTheaters handles GET /v1/movies/:id/theaters. It returns every
// showing of the movie, or 404 when the movie does not exist.
func (h *CatalogHandler) ListTheaters(c echo.Context) error {
	movieID, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid movie id"})
	}
	ctx := c.Request().Context()
	m, err := h.MovieRepo.GetByID(ctx, movieID)
	if err != nil {
		if err == repository.ErrMovieNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	theaters, err := h.TheaterRepo.ListByMovie(ctx, movieID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load theaters"})
	}
	items := make([]TheaterView, 0, len(theaters))
	for _, t := range theaters {
		items = append(items, TheaterView{ID: t.ID, Name: t.Name, ShowTime: t.ShowTime})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"movie": MovieView{ID: m.ID, Name: m.Name, Language: m.Language},
		"items": items,
	})
}

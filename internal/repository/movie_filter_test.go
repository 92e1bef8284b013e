package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildMovieFilterEmpty(t *testing.T) {
	cond, args := buildMovieFilter(MovieFilter{})
	assert.Equal(t, "1=1", cond)
	assert.Empty(t, args)
}

func TestBuildMovieFilterSearchIsCaseInsensitive(t *testing.T) {
	cond, args := buildMovieFilter(MovieFilter{Search: "InterSTELLAR"})
	assert.Equal(t, "LOWER(m.name) LIKE ?", cond)
	assert.Equal(t, []any{"%interstellar%"}, args)
}

func TestBuildMovieFilterLanguage(t *testing.T) {
	cond, args := buildMovieFilter(MovieFilter{Language: "Hindi"})
	assert.Equal(t, "m.language = ?", cond)
	assert.Equal(t, []any{"Hindi"}, args)
}

func TestBuildMovieFilterGenre(t *testing.T) {
	cond, args := buildMovieFilter(MovieFilter{GenreID: 4})
	assert.Contains(t, cond, "movie_genres")
	assert.Equal(t, []any{uint64(4)}, args)
}

func TestBuildMovieFilterCombined(t *testing.T) {
	cond, args := buildMovieFilter(MovieFilter{Search: "dune", Language: "English", GenreID: 2})
	assert.Equal(t, "LOWER(m.name) LIKE ? AND m.language = ? AND EXISTS (SELECT 1 FROM movie_genres mg WHERE mg.movie_id = m.id AND mg.genre_id = ?)", cond)
	assert.Equal(t, []any{"%dune%", "English", uint64(2)}, args)
}

func TestPlaceholders(t *testing.T) {
	assert.Equal(t, "?", placeholders(1))
	assert.Equal(t, "?,?,?", placeholders(3))
}

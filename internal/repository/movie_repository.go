package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/SamruddhiKhandekar/bookmyseat/internal/model"
)

// MovieFilter defines the optional catalog filters. Each set filter
// is applied independently and all of them are composed with AND.
// Zero values mean "not filtered".
type MovieFilter struct {
	Search   string // case-insensitive substring match on movies.name
	Language string // exact match on movies.language
	GenreID  uint64 // membership in movie_genres
}

// MovieRepo encapsulates database operations for movies and genres.
type MovieRepo struct {
	db *sql.DB
}

// NewMovieRepo constructs a MovieRepo given a DB handle.
func NewMovieRepo(db *sql.DB) *MovieRepo { return &MovieRepo{db: db} }

// buildMovieFilter turns a MovieFilter into a WHERE condition and its
// arguments. The condition always evaluates to true when no filter
// is set so the same query serves the unfiltered listing.
func buildMovieFilter(f MovieFilter) (string, []any) {
	where := []string{}
	args := []any{}
	if f.Search != "" {
		where = append(where, "LOWER(m.name) LIKE ?")
		args = append(args, "%"+strings.ToLower(f.Search)+"%")
	}
	if f.Language != "" {
		where = append(where, "m.language = ?")
		args = append(args, f.Language)
	}
	if f.GenreID != 0 {
		where = append(where, "EXISTS (SELECT 1 FROM movie_genres mg WHERE mg.movie_id = m.id AND mg.genre_id = ?)")
		args = append(args, f.GenreID)
	}
	if len(where) == 0 {
		return "1=1", args
	}
	return strings.Join(where, " AND "), args
}

// List returns all movies matching the filter, ordered by name. The
// genres of each movie are loaded in a second query and attached to
// the result rows.
func (r *MovieRepo) List(ctx context.Context, f MovieFilter) ([]model.Movie, error) {
	cond, args := buildMovieFilter(f)
	q := `SELECT m.id, m.name, m.language, m.created_at, m.updated_at
	      FROM movies m WHERE ` + cond + ` ORDER BY m.name`
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var movies []model.Movie
	for rows.Next() {
		var m model.Movie
		if err := rows.Scan(&m.ID, &m.Name, &m.Language, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		movies = append(movies, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return movies, nil
}

// GetByID fetches a single movie. It returns ErrMovieNotFound when
// the id does not exist.
func (r *MovieRepo) GetByID(ctx context.Context, id uint64) (model.Movie, error) {
	var m model.Movie
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, language, created_at, updated_at FROM movies WHERE id = ?`,
		id).Scan(&m.ID, &m.Name, &m.Language, &m.CreatedAt, &m.UpdatedAt)
	if err == sql.ErrNoRows {
		return model.Movie{}, ErrMovieNotFound
	}
	return m, err
}

// GenresByMovie returns the genres attached to one movie.
func (r *MovieRepo) GenresByMovie(ctx context.Context, movieID uint64) ([]model.Genre, error) {
	const q = `SELECT g.id, g.name
	           FROM genres g
	           JOIN movie_genres mg ON mg.genre_id = g.id
	           WHERE mg.movie_id = ?
	           ORDER BY g.name`
	rows, err := r.db.QueryContext(ctx, q, movieID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var genres []model.Genre
	for rows.Next() {
		var g model.Genre
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, err
		}
		genres = append(genres, g)
	}
	return genres, rows.Err()
}

// ListGenres returns every genre, ordered by name. The catalog page
// uses this to populate the genre filter.
func (r *MovieRepo) ListGenres(ctx context.Context) ([]model.Genre, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM genres ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var genres []model.Genre
	for rows.Next() {
		var g model.Genre
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, err
		}
		genres = append(genres, g)
	}
	return genres, rows.Err()
}

package repository

import (
	"context"
	"database/sql"

	"github.com/SamruddhiKhandekar/bookmyseat/internal/model"
)

// TheaterRepo encapsulates database operations for theaters
// (individual showings of a movie).
type TheaterRepo struct {
	db *sql.DB
}

// NewTheaterRepo constructs a TheaterRepo given a DB handle.
func NewTheaterRepo(db *sql.DB) *TheaterRepo { return &TheaterRepo{db: db} }

// ListByMovie returns every theater showing the given movie, ordered
// by show time. The movie must exist; callers are expected to have
// resolved it first via MovieRepo.GetByID.
func (r *TheaterRepo) ListByMovie(ctx context.Context, movieID uint64) ([]model.Theater, error) {
	const q = `SELECT id, movie_id, name, show_time, created_at, updated_at
	           FROM theaters WHERE movie_id = ? ORDER BY show_time`
	rows, err := r.db.QueryContext(ctx, q, movieID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var theaters []model.Theater
	for rows.Next() {
		var t model.Theater
		if err := rows.Scan(&t.ID, &t.MovieID, &t.Name, &t.ShowTime, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		theaters = append(theaters, t)
	}
	return theaters, rows.Err()
}

// GetByID fetches a single theater. It returns ErrTheaterNotFound
// when the id does not exist.
func (r *TheaterRepo) GetByID(ctx context.Context, id uint64) (model.Theater, error) {
	var t model.Theater
	err := r.db.QueryRowContext(ctx,
		`SELECT id, movie_id, name, show_time, created_at, updated_at FROM theaters WHERE id = ?`,
		id).Scan(&t.ID, &t.MovieID, &t.Name, &t.ShowTime, &t.CreatedAt, &t.UpdatedAt)
	if err == sql.ErrNoRows {
		return model.Theater{}, ErrTheaterNotFound
	}
	return t, err
}

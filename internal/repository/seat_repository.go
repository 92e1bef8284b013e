package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/SamruddhiKhandekar/bookmyseat/internal/model"
)

// SeatRepo provides data access to the seats table. Seat state moves
// free -> held -> (booked | free). All timestamp comparisons are done
// against cutoffs computed in Go so that the expiry rule lives in one
// place instead of being scattered across SQL snippets.
type SeatRepo struct {
	db *sql.DB
}

// NewSeatRepo returns a new SeatRepo bound to the provided database.
func NewSeatRepo(db *sql.DB) *SeatRepo { return &SeatRepo{db: db} }

// DB exposes the underlying handle so handlers can open transactions.
func (r *SeatRepo) DB() *sql.DB { return r.db }

// placeholders returns a comma separated list of n '?' markers.
func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat("?,", n-1) + "?"
}

const seatColumns = `id, theater_id, seat_number, is_reserved, reserved_at, is_booked, created_at, updated_at`

func scanSeat(row interface{ Scan(...any) error }) (model.Seat, error) {
	var s model.Seat
	var reservedAt sql.NullTime
	err := row.Scan(&s.ID, &s.TheaterID, &s.SeatNumber, &s.IsReserved, &reservedAt, &s.IsBooked, &s.CreatedAt, &s.UpdatedAt)
	if reservedAt.Valid {
		t := reservedAt.Time
		s.ReservedAt = &t
	}
	return s, err
}

// ListByTheaterTx returns all seats of a theater ordered by seat
// number. It runs inside the caller's transaction so the seat page
// reads the exact state the preceding expiry sweep committed, with no
// window for a hold taken in between.
func (r *SeatRepo) ListByTheaterTx(ctx context.Context, tx *sql.Tx, theaterID uint64) ([]model.Seat, error) {
	q := `SELECT ` + seatColumns + ` FROM seats WHERE theater_id = ? ORDER BY seat_number`
	rows, err := tx.QueryContext(ctx, q, theaterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var seats []model.Seat
	for rows.Next() {
		s, err := scanSeat(rows)
		if err != nil {
			return nil, err
		}
		seats = append(seats, s)
	}
	return seats, rows.Err()
}

// ReleaseExpiredTx resets every held seat of a theater whose hold was
// taken at or before the cutoff. It returns the ids of the released
// seats. Callers compute the cutoff as now minus the hold window so
// the expiry definition stays in Go.
func (r *SeatRepo) ReleaseExpiredTx(ctx context.Context, tx *sql.Tx, theaterID uint64, cutoff time.Time) ([]uint64, error) {
	rows, err := tx.QueryContext(ctx,
		`SELECT id FROM seats WHERE theater_id = ? AND is_reserved = 1 AND reserved_at <= ?`,
		theaterID, cutoff.UTC())
	if err != nil {
		return nil, err
	}
	var expired []uint64
	for rows.Next() {
		var id uint64
		if scanErr := rows.Scan(&id); scanErr != nil {
			rows.Close()
			return nil, scanErr
		}
		expired = append(expired, id)
	}
	if err = rows.Close(); err != nil {
		return nil, err
	}
	if len(expired) == 0 {
		return []uint64{}, nil
	}
	_, err = tx.ExecContext(ctx,
		`UPDATE seats SET is_reserved = 0, reserved_at = NULL WHERE theater_id = ? AND is_reserved = 1 AND reserved_at <= ?`,
		theaterID, cutoff.UTC())
	if err != nil {
		return nil, err
	}
	return expired, nil
}

// HoldTx acquires holds on the given seats of a theater as one
// conditional update: a seat is only marked reserved when it is
// currently neither reserved nor booked. When fewer rows are touched
// than requested the whole hold fails with ErrSeatUnavailable and the
// ids that could not be taken are returned; the caller must roll the
// transaction back. Seat ids that do not belong to the theater fail
// with ErrSeatNotFound.
func (r *SeatRepo) HoldTx(ctx context.Context, tx *sql.Tx, theaterID uint64, seatIDs []uint64, now time.Time) ([]uint64, error) {
	if len(seatIDs) == 0 {
		return nil, nil
	}
	args := make([]any, 0, len(seatIDs)+1)
	args = append(args, theaterID)
	for _, id := range seatIDs {
		args = append(args, id)
	}
	var known int
	err := tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM seats WHERE theater_id = ? AND id IN (`+placeholders(len(seatIDs))+`)`,
		args...).Scan(&known)
	if err != nil {
		return nil, err
	}
	if known != len(seatIDs) {
		return nil, ErrSeatNotFound
	}

	updArgs := make([]any, 0, len(seatIDs)+2)
	updArgs = append(updArgs, now.UTC(), theaterID)
	for _, id := range seatIDs {
		updArgs = append(updArgs, id)
	}
	res, err := tx.ExecContext(ctx,
		`UPDATE seats SET is_reserved = 1, reserved_at = ?
		 WHERE theater_id = ? AND id IN (`+placeholders(len(seatIDs))+`)
		   AND is_reserved = 0 AND is_booked = 0`,
		updArgs...)
	if err != nil {
		return nil, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if int(affected) == len(seatIDs) {
		return nil, nil
	}
	// Report which seats blocked the hold. The transaction is going
	// to be rolled back, so the partial update above is undone.
	rows, err := tx.QueryContext(ctx,
		`SELECT id FROM seats WHERE theater_id = ? AND id IN (`+placeholders(len(seatIDs))+`) AND (is_booked = 1 OR (is_reserved = 1 AND reserved_at <> ?))`,
		append(args, now.UTC())...)
	if err != nil {
		return nil, ErrSeatUnavailable
	}
	defer rows.Close()
	var unavailable []uint64
	for rows.Next() {
		var id uint64
		if scanErr := rows.Scan(&id); scanErr != nil {
			break
		}
		unavailable = append(unavailable, id)
	}
	return unavailable, ErrSeatUnavailable
}

// GetByIDsTx loads the given seats with a row lock so the finalizer
// can classify and mutate them without racing a concurrent hold.
func (r *SeatRepo) GetByIDsTx(ctx context.Context, tx *sql.Tx, seatIDs []uint64) ([]model.Seat, error) {
	if len(seatIDs) == 0 {
		return nil, nil
	}
	args := make([]any, 0, len(seatIDs))
	for _, id := range seatIDs {
		args = append(args, id)
	}
	q := `SELECT ` + seatColumns + ` FROM seats WHERE id IN (` + placeholders(len(seatIDs)) + `) FOR UPDATE`
	rows, err := tx.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var seats []model.Seat
	for rows.Next() {
		s, err := scanSeat(rows)
		if err != nil {
			return nil, err
		}
		seats = append(seats, s)
	}
	return seats, rows.Err()
}

// ReleaseTx clears the reservation fields of the given seats.
func (r *SeatRepo) ReleaseTx(ctx context.Context, tx *sql.Tx, seatIDs []uint64) error {
	if len(seatIDs) == 0 {
		return nil
	}
	args := make([]any, 0, len(seatIDs))
	for _, id := range seatIDs {
		args = append(args, id)
	}
	_, err := tx.ExecContext(ctx,
		`UPDATE seats SET is_reserved = 0, reserved_at = NULL WHERE id IN (`+placeholders(len(seatIDs))+`)`,
		args...)
	return err
}

// MarkBookedTx flips the given seats to booked and clears their
// reservation fields in one statement.
func (r *SeatRepo) MarkBookedTx(ctx context.Context, tx *sql.Tx, seatIDs []uint64) error {
	if len(seatIDs) == 0 {
		return nil
	}
	args := make([]any, 0, len(seatIDs))
	for _, id := range seatIDs {
		args = append(args, id)
	}
	_, err := tx.ExecContext(ctx,
		`UPDATE seats SET is_booked = 1, is_reserved = 0, reserved_at = NULL WHERE id IN (`+placeholders(len(seatIDs))+`)`,
		args...)
	return err
}

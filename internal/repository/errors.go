// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios. For
// example, ErrMovieNotFound maps to a 404 response while
// ErrSeatUnavailable signals that a hold could not be acquired
// because another checkout already holds or booked one of the
// requested seats.
package repository

import "errors"

// ErrMovieNotFound is returned when a movie id does not exist.
// Handlers should translate this into an HTTP 404 response.
var ErrMovieNotFound = errors.New("movie not found")

// ErrTheaterNotFound is returned when a theater id does not exist.
var ErrTheaterNotFound = errors.New("theater not found")

// ErrSeatNotFound is returned when one or more requested seat ids do
// not exist in the targeted theater.
var ErrSeatNotFound = errors.New("seat not found")

// ErrSeatUnavailable is returned when a conditional hold update
// touches fewer rows than requested, meaning at least one seat is
// already held or booked. Handlers should translate this into an
// HTTP 409 response.
var ErrSeatUnavailable = errors.New("seat unavailable")

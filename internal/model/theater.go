package model

import "time"

// Theater represents a single showing of a movie at a venue.  Each
// theater row belongs to exactly one movie and carries the showing
// time.  Seats reference their theater via seats.theater_id.
//
// Fields:
//  ID        – primary key identifier.
//  MovieID   – movie screened in this theater.
//  Name      – venue name shown to customers.
//  ShowTime  – when the screening starts.
//  CreatedAt – creation timestamp.
//  UpdatedAt – last update timestamp.
type Theater struct {
    ID        uint64    // theaters.id
    MovieID   uint64    // theaters.movie_id
    Name      string    // theaters.name
    ShowTime  time.Time // theaters.show_time
    CreatedAt time.Time // theaters.created_at
    UpdatedAt time.Time // theaters.updated_at
}

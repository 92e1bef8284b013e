package model

import "time"

// Movie represents a film available for booking.  A movie can be
// screened in multiple theaters and is tagged with zero or more
// genres through the movie_genres join table.  Movies are immutable
// during the booking flow; only catalog administration changes them.
//
// Fields:
//  ID        – primary key identifier.
//  Name      – display name of the movie.
//  Language  – language the movie is screened in.
//  CreatedAt – timestamp when the movie was created.
//  UpdatedAt – timestamp of last update.
type Movie struct {
    ID        uint64    // movies.id
    Name      string    // movies.name
    Language  string    // movies.language
    CreatedAt time.Time // movies.created_at
    UpdatedAt time.Time // movies.updated_at
}

// Genre is a category label attached to movies.  The relation to
// movies is many-to-many via the movie_genres table.
//
// Fields:
//  ID   – primary key identifier.
//  Name – unique genre name.
type Genre struct {
    ID   uint64 // genres.id
    Name string // genres.name
}

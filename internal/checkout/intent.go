// Package checkout stores the transient per-user checkout state that
// lives between seat selection and payment confirmation. Instead of
// ambient session keys, the selection is modelled as an explicit
// intent record keyed by user id, stored in Redis with its own TTL so
// abandoned checkouts disappear on their own.
package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrNoIntent is returned when the user has no in-progress checkout.
// Handlers treat it as "nothing to finalize" and redirect to the
// catalog.
var ErrNoIntent = errors.New("no checkout intent")

// Intent captures one user's in-progress checkout: the seats they
// selected, the showing, and the server-computed total. CreatedAt is
// set when the hold is taken so the finalizer can reason about the
// selection age independently of the seat rows.
type Intent struct {
	UserID     uint64    `json:"user_id"`
	MovieID    uint64    `json:"movie_id"`
	TheaterID  uint64    `json:"theater_id"`
	SeatIDs    []uint64  `json:"seat_ids"`
	TotalPrice int64     `json:"total_price"`
	CreatedAt  time.Time `json:"created_at"`
}

// Validate reports whether the intent carries enough state to be
// finalized.
func (i *Intent) Validate() error {
	if i.UserID == 0 || i.MovieID == 0 || i.TheaterID == 0 {
		return errors.New("intent missing ids")
	}
	if len(i.SeatIDs) == 0 {
		return errors.New("intent has no seats")
	}
	return nil
}

// Store is the interface the handlers depend on. The Redis
// implementation below is the only production one; tests substitute
// an in-memory fake.
type Store interface {
	Put(ctx context.Context, intent Intent) error
	Get(ctx context.Context, userID uint64) (Intent, error)
	Delete(ctx context.Context, userID uint64) error
}

// RedisStore keeps intents in Redis as JSON values under
// "checkout:intent:<user_id>" with a fixed TTL.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisStore builds a store with the given TTL. The TTL should
// comfortably exceed the seat hold window so the intent outlives the
// holds it refers to.
func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func intentKey(userID uint64) string {
	return "checkout:intent:" + strconv.FormatUint(userID, 10)
}

// Put writes the intent, replacing any previous one for the user.
func (s *RedisStore) Put(ctx context.Context, intent Intent) error {
	if err := intent.Validate(); err != nil {
		return err
	}
	body, err := json.Marshal(intent)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, intentKey(intent.UserID), body, s.ttl).Err()
}

// Get loads the user's intent. ErrNoIntent is returned when none
// exists or it has already expired.
func (s *RedisStore) Get(ctx context.Context, userID uint64) (Intent, error) {
	body, err := s.rdb.Get(ctx, intentKey(userID)).Bytes()
	if err == redis.Nil {
		return Intent{}, ErrNoIntent
	}
	if err != nil {
		return Intent{}, err
	}
	var intent Intent
	if err := json.Unmarshal(body, &intent); err != nil {
		return Intent{}, err
	}
	return intent, nil
}

// Delete removes the user's intent. Deleting a missing intent is not
// an error.
func (s *RedisStore) Delete(ctx context.Context, userID uint64) error {
	return s.rdb.Del(ctx, intentKey(userID)).Err()
}

package sessions

import (
	"errors"
	"fmt"
	"time"

	"context"

	"github.com/envisioned/nft-marketplace/internal/logger"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrSessionNotFound is returned when a session id has no user bound to it.
var ErrSessionNotFound = errors.New("session not found")

// Store keeps the session id -> user id mapping in Redis.
type Store struct {
	client *redis.Client
	exp    time.Duration // session lifetime, refreshed on every Set
}

// NewStore creates a new session store with the given lifetime.
func NewStore(client *redis.Client, expiration time.Duration) *Store {
	return &Store{
		client: client,
		exp:    expiration,
	}
}

func sessionKey(sid string) string {
	return fmt.Sprintf("session:%s", sid)
}

// Get returns the user id bound to the session id.
func (s *Store) Get(ctx context.Context, sid string) (uuid.UUID, error) {
	key := sessionKey(sid)

	val, err := s.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"result", val,
			"error", err,
		)
		if err == redis.Nil {
			return uuid.Nil, ErrSessionNotFound
		}
		return uuid.Nil, err
	}

	userID, err := uuid.Parse(val)
	if err != nil {
		logger.Log.Errorw("corrupt session value", "key", key, "value", val, "error", err)
		return uuid.Nil, err
	}

	return userID, nil
}

// Set binds the session id to a user id with the configured lifetime.
func (s *Store) Set(ctx context.Context, sid string, userID uuid.UUID) error {
	key := sessionKey(sid)
	err := s.client.Set(ctx, key, userID.String(), s.exp).Err()

	logger.Log.Infow(
		"key", key,
		"user_id", userID,
		"error", err,
	)

	return err
}

// Delete removes the session binding, ending the session.
func (s *Store) Delete(ctx context.Context, sid string) error {
	key := sessionKey(sid)
	err := s.client.Del(ctx, key).Err()

	logger.Log.Infow(
		"key", key,
		"error", err,
	)

	return err
}

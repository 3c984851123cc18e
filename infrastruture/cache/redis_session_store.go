package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const sessionKeyFmt = "%s:maze:session:%s"

// RedisSessionStore keeps generation session progress in Redis so every
// instance behind the API can step any session.
type RedisSessionStore struct {
	client *redis.Client
	prefix string
}

// NewRedisSessionStore initializes a RedisSessionStore with the provided Redis client.
func NewRedisSessionStore(client *redis.Client, prefix string) *RedisSessionStore {
	return &RedisSessionStore{
		client: client,
		prefix: prefix,
	}
}

// Put stores the state as JSON, resetting its expiry to ttl.
func (s *RedisSessionStore) Put(ctx context.Context, state *dmn.SessionState, ttl time.Duration) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key(state.ID), data, ttl).Err()
}

// Get returns the stored state or dmn.ErrSessionNotFound.
func (s *RedisSessionStore) Get(ctx context.Context, id uuid.UUID) (*dmn.SessionState, error) {
	data, err := s.client.Get(ctx, s.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, dmn.ErrSessionNotFound
		}
		return nil, err
	}

	var state dmn.SessionState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// Delete removes the session. Deleting a missing session is not an error.
func (s *RedisSessionStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.client.Del(ctx, s.key(id)).Err()
}

func (s *RedisSessionStore) key(id uuid.UUID) string {
	return fmt.Sprintf(sessionKeyFmt, s.prefix, id)
}

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	mazeKeyFmt = "%s:maze:%s"
	lockExpiry = 10 * time.Second
)

// RedisLayoutCache stores finished mazes in Redis with a TTL and hands out
// distributed locks through redsync.
type RedisLayoutCache struct {
	client *redis.Client
	locker *redsync.Redsync
	prefix string
	ttl    time.Duration
}

// NewRedisLayoutCache initializes a RedisLayoutCache with the provided Redis client and TTL.
func NewRedisLayoutCache(client *redis.Client, prefix string, ttlSeconds int) *RedisLayoutCache {
	cache := &RedisLayoutCache{
		client: client,
		prefix: prefix,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
	pool := goredis.NewPool(client)
	cache.locker = redsync.New(pool)
	return cache
}

// Put stores the record, replacing any previous value and resetting its TTL.
func (c *RedisLayoutCache) Put(ctx context.Context, record *dmn.MazeRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(record.ID), data, c.ttl).Err()
}

// Get returns the cached record or dmn.ErrMazeNotFound.
func (c *RedisLayoutCache) Get(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error) {
	data, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, dmn.ErrMazeNotFound
		}
		return nil, err
	}

	var record dmn.MazeRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// Lock acquires a redsync mutex for key. The returned func releases it.
func (c *RedisLayoutCache) Lock(ctx context.Context, key string) (func(), error) {
	mutex := c.locker.NewMutex(c.prefix+":"+key, redsync.WithExpiry(lockExpiry))
	if err := mutex.LockContext(ctx); err != nil {
		return nil, err
	}
	return func() {
		_, _ = mutex.Unlock()
	}, nil
}

func (c *RedisLayoutCache) key(id uuid.UUID) string {
	return fmt.Sprintf(mazeKeyFmt, c.prefix, id)
}

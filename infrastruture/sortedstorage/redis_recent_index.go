package sortedstorage

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisRecentIndex keeps maze IDs in a Redis sorted set scored by creation time.
// The set is trimmed to the newest capacity members.
type RedisRecentIndex struct {
	client   *redis.Client
	key      string
	capacity int64
	ttl      time.Duration
}

// NewRedisRecentIndex initializes a RedisRecentIndex with the provided Redis client and TTL.
func NewRedisRecentIndex(client *redis.Client, key string, capacity int64, ttlSeconds int) *RedisRecentIndex {
	return &RedisRecentIndex{
		client:   client,
		key:      key,
		capacity: capacity,
		ttl:      time.Duration(ttlSeconds) * time.Second,
	}
}

// Add records the maze and drops the oldest members beyond capacity.
func (r *RedisRecentIndex) Add(ctx context.Context, id uuid.UUID, createdAt time.Time) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZAdd(ctx, r.key, redis.Z{Score: float64(createdAt.UnixMilli()), Member: id.String()})
		pipe.ZRemRangeByRank(ctx, r.key, 0, -r.capacity-1)
		pipe.Expire(ctx, r.key, r.ttl)
		return nil
	})
	return err
}

// Latest returns up to limit maze IDs with the highest scores.
func (r *RedisRecentIndex) Latest(ctx context.Context, limit int64) ([]uuid.UUID, error) {
	members, err := r.client.ZRevRange(ctx, r.key, 0, limit-1).Result()
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(members))
	for _, m := range members {
		id, err := uuid.Parse(m)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}


package guest

import (
	"context"

	"github.com/google/uuid"
	"github.com/prepnaija/prepnaija-backend/internal/config"
	"github.com/redis/go-redis/v9"
)

// RedisCounterStore keeps guest trial counters in Redis: a set of answered
// question ids for idempotence plus an integer counter for cheap reads.
type RedisCounterStore struct {
	rdb *redis.Client
}

// NewRedisCounterStore creates a RedisCounterStore.
func NewRedisCounterStore(rdb *redis.Client) *RedisCounterStore {
	return &RedisCounterStore{rdb: rdb}
}

// MarkAnswered adds the question to the guest's answered set; only a
// first-time add increments the counter.
func (s *RedisCounterStore) MarkAnswered(ctx context.Context, guestID uuid.UUID, questionID uuid.UUID) (bool, error) {
	added, err := s.rdb.SAdd(ctx, config.CacheKey.GuestAnsweredKey(guestID.String()), questionID.String()).Result()
	if err != nil {
		return false, err
	}
	if added == 0 {
		return false, nil
	}
	if err := s.rdb.Incr(ctx, config.CacheKey.GuestCountKey(guestID.String())).Err(); err != nil {
		return false, err
	}
	return true, nil
}

// Count returns the guest's trial counter.
func (s *RedisCounterStore) Count(ctx context.Context, guestID uuid.UUID) (int, error) {
	n, err := s.rdb.Get(ctx, config.CacheKey.GuestCountKey(guestID.String())).Int()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return n, nil
}

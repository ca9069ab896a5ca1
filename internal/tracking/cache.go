package tracking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LastPosition is the most recent evaluated ping for a subject, kept in
// Redis for the status dashboard. It is a cache, not a record: the
// membership log remains the durable source of truth.
type LastPosition struct {
	SubjectID string     `json:"subject_id"`
	Lat       float64    `json:"lat"`
	Lng       float64    `json:"lng"`
	At        time.Time  `json:"at"`
	Kind      Transition `json:"kind"`
	FenceID   *uint      `json:"fence_id,omitempty"`
}

const positionKeyPrefix = "tracking:lastpos:"

// RedisPositionCache implements PositionStore on Redis. Entries expire so a
// subject whose tracker went silent eventually reads as "no recent
// position" instead of a stale one.
type RedisPositionCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisPositionCache(addr, password string) *RedisPositionCache {
	return &RedisPositionCache{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
		}),
		ttl: 24 * time.Hour,
	}
}

func (c *RedisPositionCache) Store(ctx context.Context, pos LastPosition) error {
	data, err := json.Marshal(pos)
	if err != nil {
		return fmt.Errorf("marshal last position: %w", err)
	}
	if err := c.client.Set(ctx, positionKeyPrefix+pos.SubjectID, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache last position: %w", err)
	}
	return nil
}

func (c *RedisPositionCache) Load(ctx context.Context, subjectID string) (*LastPosition, error) {
	data, err := c.client.Get(ctx, positionKeyPrefix+subjectID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load last position: %w", err)
	}

	var pos LastPosition
	if err := json.Unmarshal(data, &pos); err != nil {
		return nil, fmt.Errorf("unmarshal last position: %w", err)
	}
	return &pos, nil
}

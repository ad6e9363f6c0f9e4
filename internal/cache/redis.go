package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/Domenick1991/airreservation/config"
	"github.com/redis/go-redis/v9"
)

// RedisCache remembers which reservations already had their notification sent.
type RedisCache struct {
	client    *redis.Client
	dedupeTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, dedupeTTL time.Duration) *RedisCache {
	return NewRedisCacheWithClient(redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}), dedupeTTL)
}

func NewRedisCacheWithClient(client *redis.Client, dedupeTTL time.Duration) *RedisCache {
	return &RedisCache{client: client, dedupeTTL: dedupeTTL}
}

func (c *RedisCache) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to ping redis: %w", err)
	}
	return nil
}

// MarkNotified claims the notification of reservationID. It returns false when it was already claimed.
func (c *RedisCache) MarkNotified(ctx context.Context, reservationID int64) (bool, error) {
	return c.client.SetNX(ctx, notifiedKey(reservationID), "sent", c.dedupeTTL).Result()
}

// UnmarkNotified releases the claim so a redelivered event can be sent again.
func (c *RedisCache) UnmarkNotified(ctx context.Context, reservationID int64) error {
	return c.client.Del(ctx, notifiedKey(reservationID)).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func notifiedKey(reservationID int64) string {
	return fmt.Sprintf("notified:reservation:%d", reservationID)
}

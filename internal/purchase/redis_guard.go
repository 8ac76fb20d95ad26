package purchase

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const DefaultTokenTTL = 31 * 24 * time.Hour

type RedisTokenGuard struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisTokenGuard(rdb *redis.Client, ttl time.Duration) *RedisTokenGuard {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &RedisTokenGuard{
		rdb: rdb,
		ttl: ttl,
	}
}

func tokenKey(token string) string {
	return fmt.Sprintf("purchase_settlement:%s", token)
}

// Acquire returns false when the token has already been claimed.
func (g *RedisTokenGuard) Acquire(ctx context.Context, token string) (bool, error) {
	return g.rdb.SetNX(ctx, tokenKey(token), "settled", g.ttl).Result()
}

func (g *RedisTokenGuard) Release(ctx context.Context, token string) error {
	return g.rdb.Del(ctx, tokenKey(token)).Err()
}

package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/trustbooks/go-trust-ledger/internal/common"
)

// CacheRepository is the raw string cache behind the idempotency middleware.
type CacheRepository interface {
	// SetIfNotExists claims key, reporting false when another request already holds it.
	SetIfNotExists(ctx context.Context, key string, value interface{}, ttl time.Duration) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	// Get returns common.ErrDataNotFound on a miss.
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
}

type cacheClient struct {
	redis redis.Cmdable
}

func NewCacheRepository(rdb redis.Cmdable) CacheRepository {
	return &cacheClient{redis: rdb}
}

func (cc *cacheClient) SetIfNotExists(ctx context.Context, key string, value interface{}, ttl time.Duration) (bool, error) {
	return cc.redis.SetNX(ctx, key, value, ttl).Result()
}

func (cc *cacheClient) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return cc.redis.Set(ctx, key, value, ttl).Err()
}

func (cc *cacheClient) Get(ctx context.Context, key string) (string, error) {
	val, err := cc.redis.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", common.ErrDataNotFound
		}
		return "", err
	}

	return strings.TrimSpace(val), nil
}

func (cc *cacheClient) Del(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return cc.redis.Del(ctx, keys...).Err()
}

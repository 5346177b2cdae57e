package experience

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"trailbook/internal/logger"
	"trailbook/internal/metrics"
)

const (
	cacheKeyList   = "catalog:experiences"
	cacheKeyDetail = "catalog:experience:%d"
)

// Cache is a read-through cache for catalog reads. A nil *Cache is a no-op,
// so the service works without Redis.
type Cache struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{redis: client, ttl: ttl}
}

func (c *Cache) GetList(ctx context.Context) ([]Experience, bool) {
	if c == nil {
		return nil, false
	}

	data, err := c.redis.Get(ctx, cacheKeyList).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Debugf("catalog cache read failed: %v", err)
		}
		metrics.RecordCatalogCache("miss")
		return nil, false
	}

	var experiences []Experience
	if err := json.Unmarshal(data, &experiences); err != nil {
		metrics.RecordCatalogCache("miss")
		return nil, false
	}

	metrics.RecordCatalogCache("hit")
	return experiences, true
}

func (c *Cache) SetList(ctx context.Context, experiences []Experience) {
	if c == nil {
		return
	}

	data, err := json.Marshal(experiences)
	if err != nil {
		return
	}
	if err := c.redis.Set(ctx, cacheKeyList, data, c.ttl).Err(); err != nil {
		logger.Debugf("catalog cache write failed: %v", err)
	}
}

func (c *Cache) GetDetail(ctx context.Context, id int) (*Detail, bool) {
	if c == nil {
		return nil, false
	}

	data, err := c.redis.Get(ctx, fmt.Sprintf(cacheKeyDetail, id)).Bytes()
	if err != nil {
		metrics.RecordCatalogCache("miss")
		return nil, false
	}

	var detail Detail
	if err := json.Unmarshal(data, &detail); err != nil {
		metrics.RecordCatalogCache("miss")
		return nil, false
	}

	metrics.RecordCatalogCache("hit")
	return &detail, true
}

func (c *Cache) SetDetail(ctx context.Context, detail *Detail) {
	if c == nil {
		return
	}

	data, err := json.Marshal(detail)
	if err != nil {
		return
	}
	if err := c.redis.Set(ctx, fmt.Sprintf(cacheKeyDetail, detail.Experience.ID), data, c.ttl).Err(); err != nil {
		logger.Debugf("catalog cache write failed: %v", err)
	}
}

// Invalidate drops the list key and, when ids are given, their detail keys.
// Called after admin writes and after bookings change slot availability.
func (c *Cache) Invalidate(ctx context.Context, ids ...int) {
	if c == nil {
		return
	}

	keys := []string{cacheKeyList}
	for _, id := range ids {
		keys = append(keys, fmt.Sprintf(cacheKeyDetail, id))
	}
	if err := c.redis.Del(ctx, keys...).Err(); err != nil {
		logger.Debugf("catalog cache invalidation failed: %v", err)
	}
}

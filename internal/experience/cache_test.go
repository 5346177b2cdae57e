package experience

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheListRoundTrip(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewCache(client, 30*time.Second)
	ctx := context.Background()

	experiences := []Experience{{ID: 1, Title: "Kayaking", Price: 999}}
	data, err := json.Marshal(experiences)
	require.NoError(t, err)

	mock.ExpectSet(cacheKeyList, data, 30*time.Second).SetVal("OK")
	cache.SetList(ctx, experiences)

	mock.ExpectGet(cacheKeyList).SetVal(string(data))
	got, ok := cache.GetList(ctx)

	assert.True(t, ok)
	assert.Len(t, got, 1)
	assert.Equal(t, "Kayaking", got[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCacheListMiss(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewCache(client, 30*time.Second)

	mock.ExpectGet(cacheKeyList).RedisNil()

	_, ok := cache.GetList(context.Background())
	assert.False(t, ok)
}

func TestCacheDetailRoundTrip(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewCache(client, time.Minute)
	ctx := context.Background()

	detail := &Detail{
		Experience: Experience{ID: 3, Title: "Scuba Diving"},
		Slots:      []Slot{{ID: 9, ExperienceID: 3, Date: "Nov 2", Time: "09:00 AM", TotalSpots: 10, AvailableSpots: 2}},
	}
	data, err := json.Marshal(detail)
	require.NoError(t, err)

	mock.ExpectSet("catalog:experience:3", data, time.Minute).SetVal("OK")
	cache.SetDetail(ctx, detail)

	mock.ExpectGet("catalog:experience:3").SetVal(string(data))
	got, ok := cache.GetDetail(ctx, 3)

	assert.True(t, ok)
	assert.Equal(t, "Scuba Diving", got.Experience.Title)
	assert.Len(t, got.Slots, 1)
}

func TestCacheInvalidate(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewCache(client, time.Minute)

	mock.ExpectDel(cacheKeyList, "catalog:experience:3").SetVal(2)

	cache.Invalidate(context.Background(), 3)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNilCacheIsNoop(t *testing.T) {
	var cache *Cache
	ctx := context.Background()

	_, ok := cache.GetList(ctx)
	assert.False(t, ok)

	_, ok = cache.GetDetail(ctx, 1)
	assert.False(t, ok)

	// must not panic
	cache.SetList(ctx, nil)
	cache.SetDetail(ctx, &Detail{})
	cache.Invalidate(ctx, 1)
}

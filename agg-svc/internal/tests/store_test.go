package tests

import (
	"context"
	"testing"
	"time"

	"overcooked-storefront/agg-svc/internal/storage"
	"overcooked-storefront/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) (*storage.Store, *redis.Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return storage.NewStore(rdb), rdb, mr
}

func TestStore_RecordOrder(t *testing.T) {
	store, rdb, mr := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.RecordOrder(ctx, sampleEvent()))

	second := sampleEvent()
	second.OrderID = 43
	second.Items = second.Items[:1]
	second.TotalAmount = decimal.RequireFromString("12.5")
	require.NoError(t, store.RecordOrder(ctx, second))

	daily := config.DailySalesKey("2026-03-14")

	score, err := mr.ZScore(daily, "product:1")
	require.NoError(t, err)
	assert.Equal(t, 4.0, score)

	score, err = mr.ZScore(daily, "menu:7")
	require.NoError(t, err)
	assert.Equal(t, 1.0, score)

	score, err = mr.ZScore(config.AllTimeSalesKey, "product:1")
	require.NoError(t, err)
	assert.Equal(t, 4.0, score)

	cents, err := rdb.Get(ctx, config.DailyRevenueKey("2026-03-14")).Int64()
	require.NoError(t, err)
	assert.Equal(t, int64(5050), cents)

	assert.Equal(t, 7*24*time.Hour, mr.TTL(daily))
	assert.Equal(t, 7*24*time.Hour, mr.TTL(config.DailyRevenueKey("2026-03-14")))
	assert.Equal(t, time.Duration(0), mr.TTL(config.AllTimeSalesKey))
}

func TestStore_RecordOrder_RevenueIsExactInCents(t *testing.T) {
	store, rdb, _ := setupStore(t)
	ctx := context.Background()

	for _, total := range []string{"0.1", "0.2", "19.99"} {
		event := sampleEvent()
		event.TotalAmount = decimal.RequireFromString(total)
		require.NoError(t, store.RecordOrder(ctx, event))
	}

	cents, err := rdb.Get(ctx, config.DailyRevenueKey("2026-03-14")).Int64()
	require.NoError(t, err)
	assert.Equal(t, int64(2029), cents)
}

func TestStore_RecordOrder_RedisDown(t *testing.T) {
	store, _, mr := setupStore(t)
	mr.Close()

	err := store.RecordOrder(context.Background(), sampleEvent())
	assert.Error(t, err)
}

package tests

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"overcooked-storefront/analytics-svc/internal/storage"
	"overcooked-storefront/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupLeaderboard(t *testing.T) (*storage.LeaderboardStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return storage.NewLeaderboardStore(rdb), mr
}

func TestLeaderboardStore_Top(t *testing.T) {
	store, mr := setupLeaderboard(t)

	mr.ZAdd(config.AllTimeSalesKey, 4, "product:1")
	mr.ZAdd(config.AllTimeSalesKey, 9, "menu:7")
	mr.ZAdd(config.AllTimeSalesKey, 2, "garbage")
	mr.ZAdd(config.AllTimeSalesKey, 1, "product:3")

	top, err := store.Top(context.Background(), config.AllTimeSalesKey, 3)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "menu:7", top[0].Member())
	assert.Equal(t, int64(9), top[0].Quantity)
	assert.Equal(t, "product:1", top[1].Member())

	empty, err := store.Top(context.Background(), config.DailySalesKey("2026-03-14"), 3)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestLeaderboardStore_Revenue(t *testing.T) {
	store, mr := setupLeaderboard(t)
	ctx := context.Background()

	revenue, err := store.Revenue(ctx, "2026-03-14")
	require.NoError(t, err)
	assert.True(t, revenue.IsZero())

	require.NoError(t, mr.Set(config.DailyRevenueKey("2026-03-14"), "5050"))
	revenue, err = store.Revenue(ctx, "2026-03-14")
	require.NoError(t, err)
	assert.Equal(t, "50.5", revenue.String())

	require.NoError(t, mr.Set(config.DailyRevenueKey("2026-03-15"), "2029"))
	revenue, err = store.Revenue(ctx, "2026-03-15")
	require.NoError(t, err)
	assert.Equal(t, "20.29", revenue.String())

	mr.Close()
	_, err = store.Revenue(ctx, "2026-03-14")
	assert.Error(t, err)
}

func setupCatalogStore(t *testing.T) (*storage.CatalogStore, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return storage.NewCatalogStore(mockDB), mock
}

func TestCatalogStore_ItemName(t *testing.T) {
	store, mock := setupCatalogStore(t)
	ctx := context.Background()

	mock.ExpectQuery("SELECT name FROM catalog_items").
		WithArgs("1", "product").
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("Croissant"))
	mock.ExpectQuery("SELECT name FROM catalog_items").
		WithArgs("404", "menu").
		WillReturnError(sql.ErrNoRows)

	name, err := store.ItemName(ctx, "product", "1")
	require.NoError(t, err)
	assert.Equal(t, "Croissant", name)

	name, err = store.ItemName(ctx, "menu", "404")
	require.NoError(t, err)
	assert.Empty(t, name)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogStore_TopFromOrders(t *testing.T) {
	store, mock := setupCatalogStore(t)
	since := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	columns := []string{"item_id", "item_type", "title", "sold"}

	mock.ExpectQuery("SELECT (.+) FROM order_items oi JOIN orders o").
		WithArgs(nil, 10).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("3", "product", "Bagel", 12).
			AddRow("7", "menu", "Lunch box", 5))
	mock.ExpectQuery("SELECT (.+) FROM order_items oi JOIN orders o").
		WithArgs(since, 2).
		WillReturnRows(sqlmock.NewRows(columns))

	items, err := store.TopFromOrders(context.Background(), time.Time{}, 10)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Bagel", items[0].Name)
	assert.Equal(t, int64(12), items[0].Quantity)

	items, err = store.TopFromOrders(context.Background(), since, 2)
	require.NoError(t, err)
	assert.Empty(t, items)

	assert.NoError(t, mock.ExpectationsWereMet())
}

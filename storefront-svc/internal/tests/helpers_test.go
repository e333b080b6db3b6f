package tests

import (
	"context"
	"testing"
	"time"

	"overcooked-storefront/storefront-svc/internal/domain"
	"overcooked-storefront/storefront-svc/internal/service"
	"overcooked-storefront/storefront-svc/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var fixedNow = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func clock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "want %s, got %s", want, got.String())
}

func product(id, name, price string) domain.CatalogItem {
	return domain.CatalogItem{
		ID:      id,
		Type:    domain.ItemTypeProduct,
		Name:    name,
		Price:   dec(price),
		Stock:   100,
		Visible: true,
	}
}

func withPromotion(item domain.CatalogItem, percent string, start, end *time.Time) domain.CatalogItem {
	item.Promotion = &domain.Promotion{Percent: dec(percent), StartsAt: start, EndsAt: end}
	return item
}

func newRedisStore(t *testing.T) (*storage.RedisCartStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return storage.NewRedisCartStore(client, time.Hour), mr
}

func openTestCart(t *testing.T, store service.CartStore, now time.Time) *service.Cart {
	t.Helper()
	return service.OpenCart(context.Background(), store, service.CartKey("session-1"), clock(now))
}

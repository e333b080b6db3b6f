package storage

import (
	"context"
	"time"

	"overcooked-storefront/agg-svc/internal/domain"
	"overcooked-storefront/config"

	"github.com/redis/go-redis/v9"
)

type Store struct {
	rdb *redis.Client
	now func() time.Time
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb, now: time.Now}
}

// RecordOrder bumps the best-seller leaderboards by each line's quantity and
// the day's revenue by the order total in cents, in a single MULTI/EXEC.
func (s *Store) RecordOrder(ctx context.Context, event domain.OrderEvent) error {
	at := event.Timestamp
	if at.IsZero() {
		at = s.now()
	}
	day := at.UTC().Format("2006-01-02")
	dailyKey := config.DailySalesKey(day)
	revenueKey := config.DailyRevenueKey(day)

	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, item := range event.Items {
			if item.Quantity <= 0 {
				continue
			}
			pipe.ZIncrBy(ctx, dailyKey, float64(item.Quantity), item.Member())
			pipe.ZIncrBy(ctx, config.AllTimeSalesKey, float64(item.Quantity), item.Member())
		}
		pipe.Expire(ctx, dailyKey, config.SalesRetention)

		pipe.IncrBy(ctx, revenueKey, event.TotalAmount.Shift(2).Round(0).IntPart())
		pipe.Expire(ctx, revenueKey, config.SalesRetention)
		return nil
	})
	return err
}

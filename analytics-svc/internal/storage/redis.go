package storage

import (
	"context"
	"errors"
	"log"

	"overcooked-storefront/analytics-svc/internal/domain"
	"overcooked-storefront/config"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

type LeaderboardStore struct {
	rdb *redis.Client
}

func NewLeaderboardStore(rdb *redis.Client) *LeaderboardStore {
	return &LeaderboardStore{rdb: rdb}
}

// Top reads the n best sellers of a leaderboard. Members that do not parse
// are skipped.
func (s *LeaderboardStore) Top(ctx context.Context, key string, n int) ([]domain.ItemSales, error) {
	result, err := s.rdb.ZRevRangeWithScores(ctx, key, 0, int64(n-1)).Result()
	if err != nil {
		return nil, err
	}

	items := make([]domain.ItemSales, 0, len(result))
	for _, z := range result {
		member, _ := z.Member.(string)
		item, err := domain.ParseMember(member)
		if err != nil {
			log.Printf("[analytics-svc] WARNING: skipping member %q in %s", member, key)
			continue
		}
		item.Quantity = int64(z.Score)
		items = append(items, item)
	}
	return items, nil
}

// Revenue returns the recorded revenue of a day, zero when nothing was sold.
func (s *LeaderboardStore) Revenue(ctx context.Context, day string) (decimal.Decimal, error) {
	raw, err := s.rdb.Get(ctx, config.DailyRevenueKey(day)).Result()
	if errors.Is(err, redis.Nil) {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, err
	}
	cents, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, err
	}
	return cents.Shift(-2), nil
}

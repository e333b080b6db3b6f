package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"overcooked-storefront/analytics-svc/internal/domain"
	"overcooked-storefront/config"
)

const dayLayout = "2006-01-02"

var ErrInvalidDay = errors.New("day must be formatted as YYYY-MM-DD")

type AnalyticsService struct {
	Leaderboard Leaderboard
	Catalog     CatalogReader
	now         func() time.Time
}

func NewAnalyticsService(leaderboard Leaderboard, catalog CatalogReader, now func() time.Time) *AnalyticsService {
	if now == nil {
		now = time.Now
	}
	return &AnalyticsService{Leaderboard: leaderboard, Catalog: catalog, now: now}
}

func (s *AnalyticsService) today() time.Time {
	now := s.now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *AnalyticsService) TopToday(ctx context.Context, n int) (domain.SalesReport, error) {
	today := s.today()
	return s.top(ctx, "today", config.DailySalesKey(today.Format(dayLayout)), today, n)
}

func (s *AnalyticsService) TopAllTime(ctx context.Context, n int) (domain.SalesReport, error) {
	return s.top(ctx, "alltime", config.AllTimeSalesKey, time.Time{}, n)
}

// top prefers the Redis leaderboard and falls back to aggregating stored
// orders when the leaderboard is empty or unreachable.
func (s *AnalyticsService) top(ctx context.Context, period, key string, since time.Time, n int) (domain.SalesReport, error) {
	report := domain.SalesReport{Period: period, Items: []domain.ItemSales{}}

	items, err := s.Leaderboard.Top(ctx, key, n)
	if err != nil {
		log.Printf("[analytics-svc] WARNING: leaderboard %s unavailable: %v", key, err)
	}
	if err != nil || len(items) == 0 {
		items, err = s.Catalog.TopFromOrders(ctx, since, n)
		if err != nil {
			return report, fmt.Errorf("top sellers %s: %w", period, err)
		}
		report.Items = items
		return report, nil
	}

	for i := range items {
		name, err := s.Catalog.ItemName(ctx, items[i].ItemType, items[i].ItemID)
		if err != nil {
			log.Printf("[analytics-svc] WARNING: name lookup for %s failed: %v", items[i].Member(), err)
			continue
		}
		items[i].Name = name
	}
	report.Items = items
	return report, nil
}

// Revenue reports a day's takings. An empty day means today.
func (s *AnalyticsService) Revenue(ctx context.Context, day string) (domain.RevenueReport, error) {
	if day == "" {
		day = s.today().Format(dayLayout)
	} else if _, err := time.Parse(dayLayout, day); err != nil {
		return domain.RevenueReport{}, ErrInvalidDay
	}

	revenue, err := s.Leaderboard.Revenue(ctx, day)
	if err != nil {
		return domain.RevenueReport{}, fmt.Errorf("revenue %s: %w", day, err)
	}
	return domain.RevenueReport{Day: day, Revenue: revenue}, nil
}

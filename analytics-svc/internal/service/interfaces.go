package service

import (
	"context"
	"time"

	"overcooked-storefront/analytics-svc/internal/domain"
	"overcooked-storefront/analytics-svc/internal/storage"

	"github.com/shopspring/decimal"
)

type Leaderboard interface {
	Top(ctx context.Context, key string, n int) ([]domain.ItemSales, error)
	Revenue(ctx context.Context, day string) (decimal.Decimal, error)
}

type CatalogReader interface {
	ItemName(ctx context.Context, itemType, itemID string) (string, error)
	TopFromOrders(ctx context.Context, since time.Time, n int) ([]domain.ItemSales, error)
}

type AnalyticsInterface interface {
	TopToday(ctx context.Context, n int) (domain.SalesReport, error)
	TopAllTime(ctx context.Context, n int) (domain.SalesReport, error)
	Revenue(ctx context.Context, day string) (domain.RevenueReport, error)
}

var (
	_ Leaderboard        = (*storage.LeaderboardStore)(nil)
	_ CatalogReader      = (*storage.CatalogStore)(nil)
	_ AnalyticsInterface = (*AnalyticsService)(nil)
)

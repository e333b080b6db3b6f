package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"overcooked-storefront/analytics-svc/internal/domain"
	"overcooked-storefront/analytics-svc/internal/mocks"
	"overcooked-storefront/analytics-svc/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	fixedNow   = time.Date(2026, 3, 14, 15, 30, 0, 0, time.UTC)
	startOfDay = time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
)

func setupService(t *testing.T) (*service.AnalyticsService, *mocks.Leaderboard, *mocks.CatalogReader) {
	t.Helper()
	leaderboard := mocks.NewLeaderboard(t)
	catalog := mocks.NewCatalogReader(t)
	svc := service.NewAnalyticsService(leaderboard, catalog, func() time.Time { return fixedNow })
	return svc, leaderboard, catalog
}

func TestAnalyticsService_TopToday_FromLeaderboard(t *testing.T) {
	svc, leaderboard, catalog := setupService(t)

	leaderboard.On("Top", mock.Anything, "sales:daily:2026-03-14", 5).Return([]domain.ItemSales{
		{ItemID: "1", ItemType: "product", Quantity: 4},
		{ItemID: "7", ItemType: "menu", Quantity: 1},
	}, nil).Once()
	catalog.On("ItemName", mock.Anything, "product", "1").Return("Croissant", nil).Once()
	catalog.On("ItemName", mock.Anything, "menu", "7").Return("", errors.New("db down")).Once()

	report, err := svc.TopToday(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "today", report.Period)
	require.Len(t, report.Items, 2)
	assert.Equal(t, "Croissant", report.Items[0].Name)
	assert.Equal(t, int64(4), report.Items[0].Quantity)
	assert.Empty(t, report.Items[1].Name)
}

func TestAnalyticsService_TopFallsBackToOrders(t *testing.T) {
	fromOrders := []domain.ItemSales{{ItemID: "3", ItemType: "product", Name: "Bagel", Quantity: 9}}

	tests := []struct {
		name         string
		leaderboard  []domain.ItemSales
		leaderErr    error
		ordersErr    error
		wantErr      bool
		wantItemsLen int
	}{
		{name: "empty leaderboard", leaderboard: []domain.ItemSales{}, wantItemsLen: 1},
		{name: "redis down", leaderErr: errors.New("connection refused"), wantItemsLen: 1},
		{name: "both down", leaderErr: errors.New("connection refused"), ordersErr: errors.New("db down"), wantErr: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc, leaderboard, catalog := setupService(t)

			leaderboard.On("Top", mock.Anything, "sales:alltime", 10).Return(testCase.leaderboard, testCase.leaderErr).Once()
			var orders []domain.ItemSales
			if testCase.ordersErr == nil {
				orders = fromOrders
			}
			catalog.On("TopFromOrders", mock.Anything, time.Time{}, 10).Return(orders, testCase.ordersErr).Once()

			report, err := svc.TopAllTime(context.Background(), 10)
			if testCase.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "alltime", report.Period)
			assert.Len(t, report.Items, testCase.wantItemsLen)
		})
	}
}

func TestAnalyticsService_TopToday_FallbackStartsAtMidnight(t *testing.T) {
	svc, leaderboard, catalog := setupService(t)

	leaderboard.On("Top", mock.Anything, "sales:daily:2026-03-14", 3).Return(nil, nil).Once()
	catalog.On("TopFromOrders", mock.Anything, startOfDay, 3).Return([]domain.ItemSales{}, nil).Once()

	report, err := svc.TopToday(context.Background(), 3)
	require.NoError(t, err)
	assert.NotNil(t, report.Items)
	assert.Empty(t, report.Items)
}

func TestAnalyticsService_Revenue(t *testing.T) {
	tests := []struct {
		name      string
		day       string
		setupMock func(*mocks.Leaderboard)
		wantDay   string
		wantErr   error
	}{
		{
			name: "defaults to today",
			day:  "",
			setupMock: func(m *mocks.Leaderboard) {
				m.On("Revenue", mock.Anything, "2026-03-14").Return(decimal.RequireFromString("50.5"), nil).Once()
			},
			wantDay: "2026-03-14",
		},
		{
			name: "explicit day",
			day:  "2026-03-10",
			setupMock: func(m *mocks.Leaderboard) {
				m.On("Revenue", mock.Anything, "2026-03-10").Return(decimal.Zero, nil).Once()
			},
			wantDay: "2026-03-10",
		},
		{
			name:      "malformed day",
			day:       "14/03/2026",
			setupMock: func(m *mocks.Leaderboard) {},
			wantErr:   service.ErrInvalidDay,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc, leaderboard, _ := setupService(t)
			testCase.setupMock(leaderboard)

			report, err := svc.Revenue(context.Background(), testCase.day)
			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.wantDay, report.Day)
		})
	}
}

func TestAnalyticsService_Revenue_StoreError(t *testing.T) {
	svc, leaderboard, _ := setupService(t)
	leaderboard.On("Revenue", mock.Anything, "2026-03-14").Return(decimal.Zero, errors.New("timeout")).Once()

	_, err := svc.Revenue(context.Background(), "")
	assert.ErrorContains(t, err, "revenue 2026-03-14")
}

func TestParseMember(t *testing.T) {
	item, err := domain.ParseMember("menu:7")
	require.NoError(t, err)
	assert.Equal(t, "menu", item.ItemType)
	assert.Equal(t, "7", item.ItemID)
	assert.Equal(t, "menu:7", item.Member())

	for _, bad := range []string{"", "menu", ":7", "menu:"} {
		_, err := domain.ParseMember(bad)
		assert.ErrorIs(t, err, domain.ErrInvalidMember, bad)
	}
}

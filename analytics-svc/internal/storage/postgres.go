package storage

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"overcooked-storefront/analytics-svc/internal/domain"
)

type CatalogStore struct {
	db *sql.DB
}

func NewCatalogStore(db *sql.DB) *CatalogStore {
	return &CatalogStore{db: db}
}

// ItemName looks up the catalog name of an item. Items deleted from the
// catalog since they were sold come back with an empty name.
func (s *CatalogStore) ItemName(ctx context.Context, itemType, itemID string) (string, error) {
	var name string
	err := s.db.QueryRowContext(ctx,
		"SELECT name FROM catalog_items WHERE id::TEXT = $1 AND item_type = $2", itemID, itemType).
		Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return name, err
}

// TopFromOrders aggregates best sellers straight from stored orders. A zero
// since covers all time.
func (s *CatalogStore) TopFromOrders(ctx context.Context, since time.Time, n int) ([]domain.ItemSales, error) {
	var sinceArg any
	if !since.IsZero() {
		sinceArg = since
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT oi.item_id::TEXT, oi.item_type, MAX(oi.title), SUM(oi.quantity) AS sold
		FROM order_items oi
		JOIN orders o ON oi.order_id = o.id
		WHERE o.status <> 'cancelled'
		  AND ($1::TIMESTAMPTZ IS NULL OR o.created_at >= $1)
		GROUP BY oi.item_id, oi.item_type
		ORDER BY sold DESC
		LIMIT $2
	`, sinceArg, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.ItemSales{}
	for rows.Next() {
		var item domain.ItemSales
		if err := rows.Scan(&item.ItemID, &item.ItemType, &item.Name, &item.Quantity); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const OrderPlacedEvent = "order_placed"

type OrderItem struct {
	ItemID    string          `json:"item_id"`
	ItemType  string          `json:"item_type"`
	Title     string          `json:"title"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

// OrderEvent is the payload storefront-svc publishes on the orders topic.
type OrderEvent struct {
	Type        string          `json:"type"`
	OrderID     int             `json:"order_id"`
	Items       []OrderItem     `json:"items"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Timestamp   time.Time       `json:"timestamp"`
}

// Member is the leaderboard member name for an item.
func (i OrderItem) Member() string {
	return i.ItemType + ":" + i.ItemID
}

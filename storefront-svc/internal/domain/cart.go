package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaxLineQuantity caps a single cart line. Larger requests saturate here.
const MaxLineQuantity = 999

// LineKey identifies a cart line. A cart holds at most one line per key.
type LineKey struct {
	ItemID   string
	ItemType ItemType
}

// CartLine is a snapshot of a catalog item taken when it was added, plus the
// selected quantity.
type CartLine struct {
	ItemID    string          `json:"item_id"`
	ItemType  ItemType        `json:"item_type"`
	Title     string          `json:"title"`
	ImageURL  string          `json:"image_url,omitempty"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Promotion *Promotion      `json:"promotion,omitempty"`
	Quantity  int             `json:"quantity"`
}

func (l CartLine) Key() LineKey {
	return LineKey{ItemID: l.ItemID, ItemType: l.ItemType}
}

func LineFromItem(item CatalogItem, quantity int) CartLine {
	line := CartLine{
		ItemID:    item.ID,
		ItemType:  item.Type,
		Title:     item.Name,
		ImageURL:  item.ImageURL,
		UnitPrice: item.Price,
		Quantity:  quantity,
	}
	if item.Promotion != nil {
		promo := *item.Promotion
		line.Promotion = &promo
	}
	return line
}

// PricedLine is a cart line with its derived prices at a given instant.
type PricedLine struct {
	CartLine
	PromotionActive bool            `json:"promotion_active"`
	EffectivePrice  decimal.Decimal `json:"effective_price"`
	LineTotal       decimal.Decimal `json:"line_total"`
}

type Totals struct {
	ItemCount   int             `json:"item_count"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Tax         decimal.Decimal `json:"tax"`
	DeliveryFee decimal.Decimal `json:"delivery_fee"`
	Total       decimal.Decimal `json:"total"`
}

// Rounded returns the totals rounded to cents for presentation.
func (t Totals) Rounded() Totals {
	return Totals{
		ItemCount:   t.ItemCount,
		Subtotal:    t.Subtotal.Round(2),
		Tax:         t.Tax.Round(2),
		DeliveryFee: t.DeliveryFee.Round(2),
		Total:       t.Total.Round(2),
	}
}

type CartSummary struct {
	SessionID     string          `json:"session_id"`
	Lines         []PricedLine    `json:"lines"`
	Totals        Totals          `json:"totals"`
	MinOrder      decimal.Decimal `json:"min_order"`
	BelowMinOrder bool            `json:"below_min_order"`
	PricedAt      time.Time       `json:"priced_at"`
}

package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidItem       = errors.New("invalid catalog item")
	ErrInvalidItemType   = errors.New("invalid item type")
	ErrInvalidSettings   = errors.New("invalid order settings")
)

// ItemType names the catalog domain an item belongs to. Products and menus
// share one cart.
type ItemType string

const (
	ItemTypeProduct ItemType = "product"
	ItemTypeMenu    ItemType = "menu"
)

func ParseItemType(s string) (ItemType, error) {
	switch t := ItemType(strings.ToLower(strings.TrimSpace(s))); t {
	case ItemTypeProduct, ItemTypeMenu:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidItemType, s)
	}
}

func (t ItemType) Valid() bool {
	return t == ItemTypeProduct || t == ItemTypeMenu
}

var hundred = decimal.NewFromInt(100)

// Promotion is a percentage discount, optionally bounded by a closed
// [StartsAt, EndsAt] window. A nil bound is open on that side.
type Promotion struct {
	Percent  decimal.Decimal `json:"percent"`
	StartsAt *time.Time      `json:"starts_at,omitempty"`
	EndsAt   *time.Time      `json:"ends_at,omitempty"`
}

func (p *Promotion) ActiveAt(now time.Time) bool {
	if p == nil || !p.Percent.IsPositive() {
		return false
	}
	if p.StartsAt != nil && now.Before(*p.StartsAt) {
		return false
	}
	if p.EndsAt != nil && now.After(*p.EndsAt) {
		return false
	}
	return true
}

func (p *Promotion) Validate() error {
	if p == nil {
		return nil
	}
	if p.Percent.IsNegative() || p.Percent.GreaterThan(hundred) {
		return fmt.Errorf("%w: promotion percent %s out of range 0-100", ErrInvalidItem, p.Percent)
	}
	if p.StartsAt != nil && p.EndsAt != nil && p.EndsAt.Before(*p.StartsAt) {
		return fmt.Errorf("%w: promotion ends before it starts", ErrInvalidItem)
	}
	return nil
}

type Category struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type CatalogItem struct {
	ID          string          `json:"id"`
	Type        ItemType        `json:"item_type"`
	CategoryID  *int            `json:"category_id,omitempty"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Promotion   *Promotion      `json:"promotion,omitempty"`
	ImageURL    string          `json:"image_url"`
	Visible     bool            `json:"visible"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Validate checks the fields the cart relies on when it snapshots an item.
func (i CatalogItem) Validate() error {
	if strings.TrimSpace(i.ID) == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidItem)
	}
	if !i.Type.Valid() {
		return fmt.Errorf("%w: item type %q", ErrInvalidItem, i.Type)
	}
	if i.Price.IsNegative() {
		return fmt.Errorf("%w: negative price", ErrInvalidItem)
	}
	if i.Stock < 0 {
		return fmt.Errorf("%w: negative stock", ErrInvalidItem)
	}
	return i.Promotion.Validate()
}

type OrderSettings struct {
	DeliveryFee    decimal.Decimal `json:"delivery_fee"`
	MinOrderAmount decimal.Decimal `json:"min_order"`
	TaxRate        decimal.Decimal `json:"tax_rate"`
}

var DefaultTaxRate = decimal.New(10, -2)

func DefaultOrderSettings() OrderSettings {
	return OrderSettings{
		DeliveryFee:    decimal.Zero,
		MinOrderAmount: decimal.Zero,
		TaxRate:        DefaultTaxRate,
	}
}

func (s OrderSettings) Validate() error {
	if s.DeliveryFee.IsNegative() {
		return fmt.Errorf("%w: negative delivery fee", ErrInvalidSettings)
	}
	if s.MinOrderAmount.IsNegative() {
		return fmt.Errorf("%w: negative minimum order", ErrInvalidSettings)
	}
	if s.TaxRate.IsNegative() || s.TaxRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: tax rate must be within 0-1", ErrInvalidSettings)
	}
	return nil
}

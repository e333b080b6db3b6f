package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"overcooked-storefront/storefront-svc/internal/domain"
	"overcooked-storefront/storefront-svc/internal/pricing"

	"github.com/shopspring/decimal"
)

// Cart holds one session's lines and mirrors every change to its store.
//
// Mutations never fail on their inputs: adding a non-positive quantity,
// removing an absent line or decrementing below one are all defined
// outcomes, and quantities saturate at domain.MaxLineQuantity. The only
// error a mutation returns is a failed store write, in which case the
// in-memory state has already been updated. Every mutation that finds its
// line is written through, even when the quantity does not change.
type Cart struct {
	mu    sync.Mutex
	key   string
	store CartStore
	now   func() time.Time
	lines []domain.CartLine
}

// OpenCart restores the cart stored under key. Missing, unreadable or
// corrupt data yields an empty cart.
func OpenCart(ctx context.Context, store CartStore, key string, now func() time.Time) *Cart {
	if now == nil {
		now = time.Now
	}
	c := &Cart{key: key, store: store, now: now}

	data, err := store.Load(ctx, key)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c
	case err != nil:
		log.Printf("[storefront-svc] WARNING: failed to load cart %s, starting empty: %v", key, err)
		return c
	}

	lines, err := DecodeCart(data)
	if err != nil {
		log.Printf("[storefront-svc] WARNING: discarding stored cart %s: %v", key, err)
		return c
	}
	c.lines = lines
	return c
}

func (c *Cart) Key() string {
	return c.key
}

// Lines returns a copy of the lines in insertion order.
func (c *Cart) Lines() []domain.CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

func (c *Cart) IsEmpty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines) == 0
}

// AddItem increments the line for the item's (id, type) or appends a new
// one. Stock is not checked here.
func (c *Cart) AddItem(ctx context.Context, item domain.CatalogItem, quantity int) error {
	if quantity <= 0 {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.indexOf(domain.LineKey{ItemID: item.ID, ItemType: item.Type}); i >= 0 {
		c.lines[i].Quantity = addQuantity(c.lines[i].Quantity, quantity)
	} else {
		c.lines = append(c.lines, domain.LineFromItem(item, min(quantity, domain.MaxLineQuantity)))
	}
	return c.persist(ctx)
}

// UpdateQuantity sets an absolute quantity. Zero or less removes the line.
func (c *Cart) UpdateQuantity(ctx context.Context, itemID string, itemType domain.ItemType, quantity int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.setQuantity(ctx, domain.LineKey{ItemID: itemID, ItemType: itemType}, quantity)
}

// AdjustQuantity applies a signed delta on top of UpdateQuantity.
func (c *Cart) AdjustQuantity(ctx context.Context, itemID string, itemType domain.ItemType, delta int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := domain.LineKey{ItemID: itemID, ItemType: itemType}
	i := c.indexOf(key)
	if i < 0 {
		return nil
	}
	return c.setQuantity(ctx, key, addQuantity(c.lines[i].Quantity, delta))
}

func (c *Cart) RemoveItem(ctx context.Context, itemID string, itemType domain.ItemType) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remove(ctx, domain.LineKey{ItemID: itemID, ItemType: itemType})
}

func (c *Cart) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
	return c.persist(ctx)
}

func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return pricing.TotalItems(c.lines)
}

func (c *Cart) Subtotal() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return pricing.Subtotal(c.lines, c.now())
}

func (c *Cart) OrderTotal(settings domain.OrderSettings) decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return pricing.OrderTotal(pricing.Subtotal(c.lines, c.now()), settings)
}

// Price evaluates every line and the order totals at a single instant so
// that a promotion boundary cannot split one response.
func (c *Cart) Price(settings domain.OrderSettings) ([]domain.PricedLine, domain.Totals, time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	return pricing.PriceLines(c.lines, now), pricing.Compute(c.lines, settings, now), now
}

func (c *Cart) setQuantity(ctx context.Context, key domain.LineKey, quantity int) error {
	i := c.indexOf(key)
	if i < 0 {
		return nil
	}
	if quantity <= 0 {
		return c.remove(ctx, key)
	}
	c.lines[i].Quantity = min(quantity, domain.MaxLineQuantity)
	return c.persist(ctx)
}

// addQuantity adds without wrapping: a positive delta that would pass
// domain.MaxLineQuantity yields the cap. Lines are always positive, so a
// negative delta cannot underflow.
func addQuantity(current, delta int) int {
	if delta > 0 && current > domain.MaxLineQuantity-delta {
		return domain.MaxLineQuantity
	}
	return current + delta
}

func (c *Cart) remove(ctx context.Context, key domain.LineKey) error {
	i := c.indexOf(key)
	if i < 0 {
		return nil
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	return c.persist(ctx)
}

func (c *Cart) indexOf(key domain.LineKey) int {
	for i, line := range c.lines {
		if line.Key() == key {
			return i
		}
	}
	return -1
}

func (c *Cart) snapshot() []domain.CartLine {
	lines := make([]domain.CartLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

func (c *Cart) persist(ctx context.Context) error {
	data, err := EncodeCart(c.lines)
	if err != nil {
		return fmt.Errorf("encode cart %s: %w", c.key, err)
	}
	if err := c.store.Save(ctx, c.key, data); err != nil {
		return fmt.Errorf("persist cart %s: %w", c.key, err)
	}
	return nil
}

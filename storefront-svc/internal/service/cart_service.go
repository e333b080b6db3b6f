package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"overcooked-storefront/storefront-svc/internal/domain"
)

var (
	ErrItemUnavailable = errors.New("item is not available")
	ErrInvalidQuantity = errors.New("quantity out of range")
)

const cartKeyPrefix = "cart:"

func CartKey(sessionID string) string {
	return cartKeyPrefix + sessionID
}

type SettingsReader interface {
	Get(ctx context.Context) (domain.OrderSettings, error)
}

// CartService binds carts to sessions and to the catalog they snapshot
// items from.
type CartService struct {
	store    CartStore
	catalog  CatalogRepository
	settings SettingsReader
	now      func() time.Time
}

func NewCartService(store CartStore, catalog CatalogRepository, settings SettingsReader, now func() time.Time) *CartService {
	if now == nil {
		now = time.Now
	}
	return &CartService{store: store, catalog: catalog, settings: settings, now: now}
}

func (s *CartService) Open(ctx context.Context, sessionID string) *Cart {
	return OpenCart(ctx, s.store, CartKey(sessionID), s.now)
}

func (s *CartService) Summary(ctx context.Context, sessionID string) (*domain.CartSummary, error) {
	return s.summarize(ctx, sessionID, s.Open(ctx, sessionID))
}

// AddToCart looks the item up in the catalog and snapshots it into the
// cart. A zero quantity means one.
func (s *CartService) AddToCart(ctx context.Context, sessionID string, itemType domain.ItemType, itemID string, quantity int) (*domain.CartSummary, error) {
	if quantity < 0 || quantity > domain.MaxLineQuantity {
		return nil, ErrInvalidQuantity
	}
	if quantity == 0 {
		quantity = 1
	}

	item, err := s.catalog.GetItem(ctx, itemType, itemID)
	if err != nil {
		return nil, err
	}
	if !item.Visible {
		return nil, fmt.Errorf("%w: %s", ErrItemUnavailable, item.Name)
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}

	cart := s.Open(ctx, sessionID)
	if err := cart.AddItem(ctx, *item, quantity); err != nil {
		return nil, err
	}
	return s.summarize(ctx, sessionID, cart)
}

func (s *CartService) SetQuantity(ctx context.Context, sessionID string, itemType domain.ItemType, itemID string, quantity int) (*domain.CartSummary, error) {
	if quantity > domain.MaxLineQuantity {
		return nil, ErrInvalidQuantity
	}
	cart := s.Open(ctx, sessionID)
	if err := cart.UpdateQuantity(ctx, itemID, itemType, quantity); err != nil {
		return nil, err
	}
	return s.summarize(ctx, sessionID, cart)
}

func (s *CartService) AdjustQuantity(ctx context.Context, sessionID string, itemType domain.ItemType, itemID string, delta int) (*domain.CartSummary, error) {
	if delta > domain.MaxLineQuantity || delta < -domain.MaxLineQuantity {
		return nil, ErrInvalidQuantity
	}
	cart := s.Open(ctx, sessionID)
	if err := cart.AdjustQuantity(ctx, itemID, itemType, delta); err != nil {
		return nil, err
	}
	return s.summarize(ctx, sessionID, cart)
}

func (s *CartService) Remove(ctx context.Context, sessionID string, itemType domain.ItemType, itemID string) (*domain.CartSummary, error) {
	cart := s.Open(ctx, sessionID)
	if err := cart.RemoveItem(ctx, itemID, itemType); err != nil {
		return nil, err
	}
	return s.summarize(ctx, sessionID, cart)
}

func (s *CartService) Clear(ctx context.Context, sessionID string) (*domain.CartSummary, error) {
	cart := s.Open(ctx, sessionID)
	if err := cart.Clear(ctx); err != nil {
		return nil, err
	}
	return s.summarize(ctx, sessionID, cart)
}

func (s *CartService) summarize(ctx context.Context, sessionID string, cart *Cart) (*domain.CartSummary, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load order settings: %w", err)
	}

	lines, totals, pricedAt := cart.Price(settings)
	return &domain.CartSummary{
		SessionID:     sessionID,
		Lines:         lines,
		Totals:        totals.Rounded(),
		MinOrder:      settings.MinOrderAmount,
		BelowMinOrder: len(lines) > 0 && CheckMinimumOrder(totals.Total, settings) != nil,
		PricedAt:      pricedAt,
	}, nil
}

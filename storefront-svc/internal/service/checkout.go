package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"overcooked-storefront/storefront-svc/internal/domain"
	"overcooked-storefront/storefront-svc/internal/pricing"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrBelowMinimumOrder = errors.New("order total is below the minimum order amount")
	ErrMissingContact    = errors.New("customer name, phone and address are required")
)

type CheckoutRequest struct {
	CustomerName        string `json:"customer_name"`
	Phone               string `json:"phone"`
	Address             string `json:"address"`
	Note                string `json:"note"`
	ConfirmBelowMinimum bool   `json:"confirm_below_minimum"`
}

// CheckMinimumOrder reports ErrBelowMinimumOrder when total does not reach
// the configured minimum.
func CheckMinimumOrder(total decimal.Decimal, settings domain.OrderSettings) error {
	if total.LessThan(settings.MinOrderAmount) {
		return fmt.Errorf("%w: %s < %s", ErrBelowMinimumOrder, total.StringFixed(2), settings.MinOrderAmount.StringFixed(2))
	}
	return nil
}

type CheckoutService struct {
	carts     *CartService
	settings  SettingsReader
	orders    OrderRepository
	qrEncoder QRGenerator
	publisher OrderPublisher
}

func NewCheckoutService(carts *CartService, settings SettingsReader, orders OrderRepository, qr QRGenerator, publisher OrderPublisher) *CheckoutService {
	return &CheckoutService{
		carts:     carts,
		settings:  settings,
		orders:    orders,
		qrEncoder: qr,
		publisher: publisher,
	}
}

// Checkout turns the session's cart into an order. The cart is cleared only
// after the order has been stored.
func (s *CheckoutService) Checkout(ctx context.Context, sessionID string, req CheckoutRequest) (*domain.Order, error) {
	if strings.TrimSpace(req.CustomerName) == "" || strings.TrimSpace(req.Phone) == "" || strings.TrimSpace(req.Address) == "" {
		return nil, ErrMissingContact
	}

	cart := s.carts.Open(ctx, sessionID)
	if cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load order settings: %w", err)
	}

	lines, totals, _ := cart.Price(settings)
	if err := CheckMinimumOrder(totals.Total, settings); err != nil && !req.ConfirmBelowMinimum {
		return nil, err
	}

	order := &domain.Order{
		SessionID:    sessionID,
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		Address:      req.Address,
		Note:         req.Note,
		Status:       domain.OrderStatusPending,
		Items:        make([]domain.OrderItem, 0, len(lines)),
	}
	for _, line := range lines {
		order.Items = append(order.Items, domain.OrderItem{
			ItemID:    line.ItemID,
			ItemType:  line.ItemType,
			Title:     line.Title,
			UnitPrice: line.EffectivePrice.Round(2),
			Quantity:  line.Quantity,
		})
	}
	snapshotAmounts(order, totals.DeliveryFee, settings)

	if err := s.orders.CreateOrder(ctx, order); err != nil {
		return nil, err
	}

	if s.qrEncoder != nil {
		if qr, err := s.qrEncoder.Generate(order.ID); err != nil {
			log.Printf("[storefront-svc] WARNING: Failed to generate QR code for order %d: %v", order.ID, err)
		} else if err := s.orders.SaveQRCode(ctx, order.ID, qr); err != nil {
			log.Printf("[storefront-svc] WARNING: Failed to store QR code for order %d: %v", order.ID, err)
		}
	}

	if s.publisher != nil {
		if err := s.publisher.PublishOrderPlaced(ctx, domain.OrderEvent{
			Type:        domain.OrderPlacedEvent,
			OrderID:     order.ID,
			Items:       order.Items,
			TotalAmount: order.TotalAmount,
			Timestamp:   order.CreatedAt,
		}); err != nil {
			log.Printf("[storefront-svc] WARNING: Failed to publish order %d: %v", order.ID, err)
		}
	}

	if err := cart.Clear(ctx); err != nil {
		log.Printf("[storefront-svc] WARNING: order %d stored but cart %s not cleared: %v", order.ID, cart.Key(), err)
	}

	log.Printf("[storefront-svc] order %d placed: %d lines, total %s", order.ID, len(order.Items), order.TotalAmount.StringFixed(2))
	return order, nil
}

// snapshotAmounts derives the stored amounts from the rounded unit prices,
// so the order's items always sum to its subtotal.
func snapshotAmounts(order *domain.Order, deliveryFee decimal.Decimal, settings domain.OrderSettings) {
	subtotal := decimal.Zero
	for _, item := range order.Items {
		subtotal = subtotal.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	order.Subtotal = subtotal
	order.Tax = pricing.Tax(subtotal, settings).Round(2)
	order.DeliveryFee = deliveryFee.Round(2)
	order.TotalAmount = order.Subtotal.Add(order.Tax).Add(order.DeliveryFee)
}

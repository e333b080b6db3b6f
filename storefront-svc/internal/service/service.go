package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"overcooked-storefront/storefront-svc/internal/domain"
)

var ErrInvalidCategory = errors.New("category name is required")

type CatalogService struct {
	repo CatalogRepository
}

func NewCatalogService(repo CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

// List returns the storefront view of a catalog: hidden items are left out.
func (s *CatalogService) List(ctx context.Context, itemType domain.ItemType, categoryID *int) ([]domain.CatalogItem, error) {
	return s.repo.ListItems(ctx, itemType, categoryID, false)
}

// ListAll is the admin view, hidden items included.
func (s *CatalogService) ListAll(ctx context.Context, itemType domain.ItemType) ([]domain.CatalogItem, error) {
	return s.repo.ListItems(ctx, itemType, nil, true)
}

func (s *CatalogService) Get(ctx context.Context, itemType domain.ItemType, id string) (*domain.CatalogItem, error) {
	return s.repo.GetItem(ctx, itemType, id)
}

func (s *CatalogService) Create(ctx context.Context, item *domain.CatalogItem) error {
	if strings.TrimSpace(item.Name) == "" {
		return fmt.Errorf("%w: missing name", domain.ErrInvalidItem)
	}
	if err := validateForWrite(item); err != nil {
		return err
	}
	return s.repo.CreateItem(ctx, item)
}

func (s *CatalogService) Update(ctx context.Context, item *domain.CatalogItem) error {
	if err := item.Validate(); err != nil {
		return err
	}
	return s.repo.UpdateItem(ctx, item)
}

func (s *CatalogService) Delete(ctx context.Context, itemType domain.ItemType, id string) (int64, error) {
	return s.repo.DeleteItem(ctx, itemType, id)
}

func (s *CatalogService) Categories(ctx context.Context) ([]domain.Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *CatalogService) CreateCategory(ctx context.Context, category *domain.Category) error {
	if strings.TrimSpace(category.Name) == "" {
		return ErrInvalidCategory
	}
	return s.repo.CreateCategory(ctx, category)
}

// validateForWrite checks a new item before the repository assigns its id.
func validateForWrite(item *domain.CatalogItem) error {
	probe := *item
	if probe.ID == "" {
		probe.ID = "new"
	}
	return probe.Validate()
}

type SettingsService struct {
	repo SettingsRepository
}

func NewSettingsService(repo SettingsRepository) *SettingsService {
	return &SettingsService{repo: repo}
}

func (s *SettingsService) Get(ctx context.Context) (domain.OrderSettings, error) {
	settings, err := s.repo.GetSettings(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.DefaultOrderSettings(), nil
	}
	if err != nil {
		return domain.OrderSettings{}, err
	}
	if settings.TaxRate.IsZero() {
		settings.TaxRate = domain.DefaultTaxRate
	}
	return settings, nil
}

func (s *SettingsService) Update(ctx context.Context, settings domain.OrderSettings) error {
	if settings.TaxRate.IsZero() {
		settings.TaxRate = domain.DefaultTaxRate
	}
	if err := settings.Validate(); err != nil {
		return err
	}
	return s.repo.SaveSettings(ctx, settings)
}

type OrderService struct {
	repo      OrderRepository
	qrEncoder QRGenerator
}

func NewOrderService(repo OrderRepository, qr QRGenerator) *OrderService {
	return &OrderService{repo: repo, qrEncoder: qr}
}

func (s *OrderService) Get(ctx context.Context, orderID int) (*domain.Order, error) {
	order, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	order.QRCode = s.QRLink(order.ID)
	return order, nil
}

func (s *OrderService) List(ctx context.Context) ([]domain.Order, error) {
	return s.repo.ListOrders(ctx)
}

func (s *OrderService) UpdateStatus(ctx context.Context, orderID int, status domain.OrderStatus) (*domain.Order, error) {
	order, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidStatusTransition, order.Status, status)
	}
	if err := s.repo.UpdateOrderStatus(ctx, orderID, status); err != nil {
		return nil, err
	}
	order.Status = status
	return order, nil
}

func (s *OrderService) GetQRCode(ctx context.Context, orderID int) ([]byte, error) {
	qr, err := s.repo.GetQRCode(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if len(qr) == 0 && s.qrEncoder != nil {
		if regenerated, err := s.qrEncoder.Generate(orderID); err == nil {
			_ = s.repo.SaveQRCode(ctx, orderID, regenerated)
			return regenerated, nil
		}
	}
	return qr, nil
}

func (s *OrderService) QRLink(orderID int) string {
	return fmt.Sprintf("/api/orders/%d/qrcode", orderID)
}

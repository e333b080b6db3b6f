package service

import (
	"context"

	"overcooked-storefront/storefront-svc/internal/domain"
	"overcooked-storefront/storefront-svc/internal/storage"
)

// CartStore is the durable key-value store behind carts. Load returns
// domain.ErrNotFound for a key that was never written.
type CartStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
}

type CatalogRepository interface {
	ListItems(ctx context.Context, itemType domain.ItemType, categoryID *int, includeHidden bool) ([]domain.CatalogItem, error)
	GetItem(ctx context.Context, itemType domain.ItemType, id string) (*domain.CatalogItem, error)
	CreateItem(ctx context.Context, item *domain.CatalogItem) error
	UpdateItem(ctx context.Context, item *domain.CatalogItem) error
	DeleteItem(ctx context.Context, itemType domain.ItemType, id string) (int64, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, category *domain.Category) error
}

type SettingsRepository interface {
	GetSettings(ctx context.Context) (domain.OrderSettings, error)
	SaveSettings(ctx context.Context, settings domain.OrderSettings) error
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *domain.Order) error
	SaveQRCode(ctx context.Context, orderID int, qr []byte) error
	GetOrder(ctx context.Context, orderID int) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
	GetQRCode(ctx context.Context, orderID int) ([]byte, error)
	UpdateOrderStatus(ctx context.Context, orderID int, status domain.OrderStatus) error
}

type OrderPublisher interface {
	PublishOrderPlaced(ctx context.Context, event domain.OrderEvent) error
}

type CatalogServiceInterface interface {
	List(ctx context.Context, itemType domain.ItemType, categoryID *int) ([]domain.CatalogItem, error)
	ListAll(ctx context.Context, itemType domain.ItemType) ([]domain.CatalogItem, error)
	Get(ctx context.Context, itemType domain.ItemType, id string) (*domain.CatalogItem, error)
	Create(ctx context.Context, item *domain.CatalogItem) error
	Update(ctx context.Context, item *domain.CatalogItem) error
	Delete(ctx context.Context, itemType domain.ItemType, id string) (int64, error)
	Categories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, category *domain.Category) error
}

type SettingsServiceInterface interface {
	Get(ctx context.Context) (domain.OrderSettings, error)
	Update(ctx context.Context, settings domain.OrderSettings) error
}

type CartServiceInterface interface {
	Summary(ctx context.Context, sessionID string) (*domain.CartSummary, error)
	AddToCart(ctx context.Context, sessionID string, itemType domain.ItemType, itemID string, quantity int) (*domain.CartSummary, error)
	SetQuantity(ctx context.Context, sessionID string, itemType domain.ItemType, itemID string, quantity int) (*domain.CartSummary, error)
	AdjustQuantity(ctx context.Context, sessionID string, itemType domain.ItemType, itemID string, delta int) (*domain.CartSummary, error)
	Remove(ctx context.Context, sessionID string, itemType domain.ItemType, itemID string) (*domain.CartSummary, error)
	Clear(ctx context.Context, sessionID string) (*domain.CartSummary, error)
}

type CheckoutServiceInterface interface {
	Checkout(ctx context.Context, sessionID string, req CheckoutRequest) (*domain.Order, error)
}

type OrderServiceInterface interface {
	Get(ctx context.Context, orderID int) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, orderID int, status domain.OrderStatus) (*domain.Order, error)
	GetQRCode(ctx context.Context, orderID int) ([]byte, error)
	QRLink(orderID int) string
}

var (
	_ CatalogServiceInterface  = (*CatalogService)(nil)
	_ SettingsServiceInterface = (*SettingsService)(nil)
	_ CartServiceInterface     = (*CartService)(nil)
	_ CheckoutServiceInterface = (*CheckoutService)(nil)
	_ OrderServiceInterface    = (*OrderService)(nil)

	_ CartStore          = (*storage.RedisCartStore)(nil)
	_ CatalogRepository  = (*storage.PostgresRepository)(nil)
	_ SettingsRepository = (*storage.PostgresRepository)(nil)
	_ OrderRepository    = (*storage.PostgresRepository)(nil)
	_ OrderPublisher     = (*storage.KafkaPublisher)(nil)
)

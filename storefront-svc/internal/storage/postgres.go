package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"overcooked-storefront/storefront-svc/internal/domain"

	"github.com/shopspring/decimal"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS categories (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS catalog_items (
			id SERIAL PRIMARY KEY,
			item_type TEXT NOT NULL CHECK (item_type IN ('product', 'menu')),
			category_id INT REFERENCES categories(id) ON DELETE SET NULL,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			price NUMERIC(12, 2) NOT NULL CHECK (price >= 0),
			stock INT NOT NULL DEFAULT 0 CHECK (stock >= 0),
			promotion_percent NUMERIC(5, 2),
			promotion_start TIMESTAMPTZ,
			promotion_end TIMESTAMPTZ,
			image_url TEXT,
			visible BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS order_settings (
			id INT PRIMARY KEY DEFAULT 1 CHECK (id = 1),
			delivery_fee NUMERIC(12, 2) NOT NULL DEFAULT 0,
			min_order NUMERIC(12, 2) NOT NULL DEFAULT 0,
			tax_rate NUMERIC(5, 4) NOT NULL DEFAULT 0.10
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			session_id TEXT,
			customer_name TEXT NOT NULL,
			phone TEXT NOT NULL,
			address TEXT NOT NULL,
			note TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL,
			subtotal NUMERIC(12, 2) NOT NULL,
			tax NUMERIC(12, 2) NOT NULL,
			delivery_fee NUMERIC(12, 2) NOT NULL,
			total_amount NUMERIC(12, 2) NOT NULL,
			qr_code BYTEA,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			id SERIAL PRIMARY KEY,
			order_id INT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			item_id INT NOT NULL,
			item_type TEXT NOT NULL,
			title TEXT NOT NULL,
			unit_price NUMERIC(12, 2) NOT NULL,
			quantity INT NOT NULL CHECK (quantity > 0)
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}

const catalogColumns = `id, item_type, category_id, name, description, price, stock,
	promotion_percent, promotion_start, promotion_end, COALESCE(image_url, ''), visible, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCatalogItem(row rowScanner) (domain.CatalogItem, error) {
	var (
		item       domain.CatalogItem
		id         int
		itemType   string
		categoryID sql.NullInt64
		percent    decimal.NullDecimal
		start, end sql.NullTime
	)
	if err := row.Scan(&id, &itemType, &categoryID, &item.Name, &item.Description, &item.Price, &item.Stock,
		&percent, &start, &end, &item.ImageURL, &item.Visible, &item.CreatedAt); err != nil {
		return item, err
	}

	item.ID = strconv.Itoa(id)
	item.Type = domain.ItemType(itemType)
	if categoryID.Valid {
		cid := int(categoryID.Int64)
		item.CategoryID = &cid
	}
	if percent.Valid {
		item.Promotion = &domain.Promotion{Percent: percent.Decimal}
		if start.Valid {
			item.Promotion.StartsAt = &start.Time
		}
		if end.Valid {
			item.Promotion.EndsAt = &end.Time
		}
	}
	return item, nil
}

func promotionArgs(p *domain.Promotion) (any, any, any) {
	if p == nil {
		return nil, nil, nil
	}
	return p.Percent, nullTime(p.StartsAt), nullTime(p.EndsAt)
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

// parseID maps a non-numeric catalog id to ErrNotFound; the cart treats ids
// as opaque strings.
func parseID(id string) (int, error) {
	n, err := strconv.Atoi(id)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("item %q: %w", id, domain.ErrNotFound)
	}
	return n, nil
}

func (r *PostgresRepository) ListItems(ctx context.Context, itemType domain.ItemType, categoryID *int, includeHidden bool) ([]domain.CatalogItem, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+catalogColumns+`
		FROM catalog_items
		WHERE item_type = $1
		  AND ($2::INT IS NULL OR category_id = $2)
		  AND (visible OR $3)
		ORDER BY created_at DESC`, string(itemType), nullInt(categoryID), includeHidden)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.CatalogItem{}
	for rows.Next() {
		item, err := scanCatalogItem(rows)
		if err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) GetItem(ctx context.Context, itemType domain.ItemType, id string) (*domain.CatalogItem, error) {
	n, err := parseID(id)
	if err != nil {
		return nil, err
	}

	item, err := scanCatalogItem(r.DB.QueryRowContext(ctx, `
		SELECT `+catalogColumns+`
		FROM catalog_items
		WHERE id = $1 AND item_type = $2`, n, string(itemType)))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s %s: %w", itemType, id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *PostgresRepository) CreateItem(ctx context.Context, item *domain.CatalogItem) error {
	percent, start, end := promotionArgs(item.Promotion)

	var id int
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO catalog_items (item_type, category_id, name, description, price, stock,
			promotion_percent, promotion_start, promotion_end, image_url, visible)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at`,
		string(item.Type), nullInt(item.CategoryID), item.Name, item.Description, item.Price, item.Stock,
		percent, start, end, item.ImageURL, item.Visible).
		Scan(&id, &item.CreatedAt)
	if err != nil {
		return err
	}
	item.ID = strconv.Itoa(id)
	return nil
}

func (r *PostgresRepository) UpdateItem(ctx context.Context, item *domain.CatalogItem) error {
	n, err := parseID(item.ID)
	if err != nil {
		return err
	}
	percent, start, end := promotionArgs(item.Promotion)

	result, err := r.DB.ExecContext(ctx, `
		UPDATE catalog_items
		SET category_id=$1, name=$2, description=$3, price=$4, stock=$5,
			promotion_percent=$6, promotion_start=$7, promotion_end=$8, image_url=$9, visible=$10
		WHERE id=$11 AND item_type=$12`,
		nullInt(item.CategoryID), item.Name, item.Description, item.Price, item.Stock,
		percent, start, end, item.ImageURL, item.Visible, n, string(item.Type))
	if err != nil {
		return err
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return fmt.Errorf("%s %s: %w", item.Type, item.ID, domain.ErrNotFound)
	}
	return nil
}

func (r *PostgresRepository) DeleteItem(ctx context.Context, itemType domain.ItemType, id string) (int64, error) {
	n, err := parseID(id)
	if err != nil {
		return 0, nil
	}
	result, err := r.DB.ExecContext(ctx, "DELETE FROM catalog_items WHERE id=$1 AND item_type=$2", n, string(itemType))
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT id, name, created_at FROM categories ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			continue
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *PostgresRepository) CreateCategory(ctx context.Context, category *domain.Category) error {
	return r.DB.QueryRowContext(ctx,
		"INSERT INTO categories (name) VALUES ($1) RETURNING id, created_at", category.Name).
		Scan(&category.ID, &category.CreatedAt)
}

func (r *PostgresRepository) GetSettings(ctx context.Context) (domain.OrderSettings, error) {
	var s domain.OrderSettings
	err := r.DB.QueryRowContext(ctx,
		"SELECT delivery_fee, min_order, tax_rate FROM order_settings WHERE id = 1").
		Scan(&s.DeliveryFee, &s.MinOrderAmount, &s.TaxRate)
	if errors.Is(err, sql.ErrNoRows) {
		return s, domain.ErrNotFound
	}
	return s, err
}

func (r *PostgresRepository) SaveSettings(ctx context.Context, s domain.OrderSettings) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO order_settings (id, delivery_fee, min_order, tax_rate)
		VALUES (1, $1, $2, $3)
		ON CONFLICT (id) DO UPDATE
		SET delivery_fee = EXCLUDED.delivery_fee, min_order = EXCLUDED.min_order, tax_rate = EXCLUDED.tax_rate`,
		s.DeliveryFee, s.MinOrderAmount, s.TaxRate)
	return err
}

// CreateOrder stores the order and its lines and takes the ordered quantities
// out of stock in one transaction. A line whose item lacks stock aborts the
// whole order with domain.ErrInsufficientStock.
func (r *PostgresRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := tx.QueryRowContext(ctx, `
		INSERT INTO orders (session_id, customer_name, phone, address, note, status,
			subtotal, tax, delivery_fee, total_amount, qr_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NULL)
		RETURNING id, created_at
	`, order.SessionID, order.CustomerName, order.Phone, order.Address, order.Note, string(order.Status),
		order.Subtotal, order.Tax, order.DeliveryFee, order.TotalAmount).Scan(&order.ID, &order.CreatedAt); err != nil {
		return err
	}

	for _, item := range order.Items {
		itemID, err := parseID(item.ItemID)
		if err != nil {
			return err
		}

		result, err := tx.ExecContext(ctx, `
			UPDATE catalog_items SET stock = stock - $1
			WHERE id = $2 AND item_type = $3 AND stock >= $1
		`, item.Quantity, itemID, string(item.ItemType))
		if err != nil {
			return err
		}
		if affected, _ := result.RowsAffected(); affected == 0 {
			return fmt.Errorf("%w: %s", domain.ErrInsufficientStock, item.Title)
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, item_id, item_type, title, unit_price, quantity)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, order.ID, itemID, string(item.ItemType), item.Title, item.UnitPrice, item.Quantity); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *PostgresRepository) SaveQRCode(ctx context.Context, orderID int, qr []byte) error {
	_, err := r.DB.ExecContext(ctx, `UPDATE orders SET qr_code = $1 WHERE id = $2`, qr, orderID)
	return err
}

const orderColumns = `id, COALESCE(session_id, ''), customer_name, phone, address, note, status,
	subtotal, tax, delivery_fee, total_amount, created_at`

func scanOrder(row rowScanner) (domain.Order, error) {
	var (
		order  domain.Order
		status string
	)
	err := row.Scan(&order.ID, &order.SessionID, &order.CustomerName, &order.Phone, &order.Address, &order.Note, &status,
		&order.Subtotal, &order.Tax, &order.DeliveryFee, &order.TotalAmount, &order.CreatedAt)
	order.Status = domain.OrderStatus(status)
	return order, err
}

func (r *PostgresRepository) GetOrder(ctx context.Context, orderID int) (*domain.Order, error) {
	order, err := scanOrder(r.DB.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, orderID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("order %d: %w", orderID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT item_id, item_type, title, unit_price, quantity
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	order.Items = []domain.OrderItem{}
	for rows.Next() {
		var (
			item     domain.OrderItem
			itemID   int
			itemType string
		)
		if err := rows.Scan(&itemID, &itemType, &item.Title, &item.UnitPrice, &item.Quantity); err != nil {
			continue
		}
		item.ItemID = strconv.Itoa(itemID)
		item.ItemType = domain.ItemType(itemType)
		order.Items = append(order.Items, item)
	}
	return &order, rows.Err()
}

func (r *PostgresRepository) ListOrders(ctx context.Context) ([]domain.Order, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			continue
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

func (r *PostgresRepository) GetQRCode(ctx context.Context, orderID int) ([]byte, error) {
	var qrCode []byte
	err := r.DB.QueryRowContext(ctx, "SELECT qr_code FROM orders WHERE id = $1", orderID).Scan(&qrCode)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("order %d: %w", orderID, domain.ErrNotFound)
	}
	return qrCode, err
}

func (r *PostgresRepository) UpdateOrderStatus(ctx context.Context, orderID int, status domain.OrderStatus) error {
	result, err := r.DB.ExecContext(ctx, "UPDATE orders SET status = $1 WHERE id = $2", string(status), orderID)
	if err != nil {
		return err
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return fmt.Errorf("order %d: %w", orderID, domain.ErrNotFound)
	}
	return nil
}

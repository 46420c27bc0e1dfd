package order

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

// CreateOrder inserts the order and all its items inside a single transaction.
func (r *postgresRepo) CreateOrder(ctx context.Context, o *Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders
		  (id, seller_id, customer_id, order_number, total_amount,
		   payment_status, order_status, payment_ref, screenshot_url)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		o.ID, o.SellerID, o.CustomerID, o.OrderNumber, o.TotalAmount,
		o.PaymentStatus, o.Status, o.PaymentRef, o.ScreenshotURL)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	for _, item := range o.Items {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (id, order_id, product_id, quantity, price_each)
			VALUES ($1,$2,$3,$4,$5)`,
			item.ID, o.ID, item.ProductID, item.Quantity, item.PriceEach)
		if err != nil {
			return fmt.Errorf("insert order_item: %w", err)
		}
	}

	return tx.Commit()
}

func (r *postgresRepo) GetOrderByID(ctx context.Context, id string) (*Order, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	o, err := scanOrder(r.db.QueryRowContext(ctx, `
		SELECT id,seller_id,customer_id,order_number,total_amount,
		       payment_status,order_status,payment_ref,screenshot_url,created_at,updated_at
		FROM orders WHERE id=$1`, uid).Scan)
	if err != nil {
		return nil, err
	}
	o.Items, err = r.listItems(ctx, o.ID.String())
	return o, err
}

func (r *postgresRepo) ListBySeller(ctx context.Context, sellerID string, status string) ([]*Order, error) {
	query := `SELECT id,seller_id,customer_id,order_number,total_amount,
	                 payment_status,order_status,payment_ref,screenshot_url,created_at,updated_at
	          FROM orders WHERE seller_id=$1`
	args := []interface{}{sellerID}
	if status != "" {
		query += ` AND order_status=$2`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*Order
	for rows.Next() {
		o, err := scanOrder(rows.Scan)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, id string, status Status) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE orders SET order_status=$1, updated_at=NOW() WHERE id=$2`,
		status, id)
	return err
}

func (r *postgresRepo) MarkPaid(ctx context.Context, id string, paymentRef, screenshotURL string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE orders
		SET payment_status=$1, payment_ref=$2, screenshot_url=$3, updated_at=NOW()
		WHERE id=$4`,
		PaymentPaid, paymentRef, screenshotURL, id)
	return err
}

func (r *postgresRepo) CustomerPhone(ctx context.Context, customerID string) (string, error) {
	var phone string
	err := r.db.QueryRowContext(ctx,
		`SELECT phone FROM customers WHERE id=$1`, customerID).Scan(&phone)
	return phone, err
}

// ── helpers ──────────────────────────────────────────────────────────────────

func scanOrder(scan func(...interface{}) error) (*Order, error) {
	o := &Order{}
	err := scan(
		&o.ID, &o.SellerID, &o.CustomerID, &o.OrderNumber, &o.TotalAmount,
		&o.PaymentStatus, &o.Status, &o.PaymentRef, &o.ScreenshotURL,
		&o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (r *postgresRepo) listItems(ctx context.Context, orderID string) ([]*Item, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, order_id, product_id, quantity, price_each, created_at
		FROM order_items WHERE order_id=$1 ORDER BY created_at ASC`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Item
	for rows.Next() {
		item := &Item{}
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID,
			&item.Quantity, &item.PriceEach, &item.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

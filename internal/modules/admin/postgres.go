package admin

import (
	"context"
	"database/sql"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Stats(ctx context.Context) (*Stats, error) {
	s := &Stats{}
	err := r.db.QueryRowContext(ctx, `
		SELECT (SELECT COUNT(*) FROM profiles),
		       (SELECT COUNT(*) FROM orders),
		       (SELECT COALESCE(SUM(total_amount), 0) FROM orders),
		       (SELECT COUNT(*) FROM sms_log)`).
		Scan(&s.Vendors, &s.Orders, &s.Revenue, &s.SMSSent)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *postgresRepo) ListOrders(ctx context.Context, status string) ([]*OrderRow, error) {
	query := `
		SELECT o.id, o.order_number, p.business_name, c.name,
		       o.total_amount, o.payment_status, o.order_status, o.created_at
		FROM orders o
		JOIN profiles p ON p.id = o.seller_id
		JOIN customers c ON c.id = o.customer_id`
	args := []interface{}{}
	if status != "" {
		query += ` WHERE o.order_status=$1`
		args = append(args, status)
	}
	query += ` ORDER BY o.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*OrderRow
	for rows.Next() {
		o := &OrderRow{}
		if err := rows.Scan(&o.ID, &o.OrderNumber, &o.BusinessName, &o.CustomerName,
			&o.TotalAmount, &o.PaymentStatus, &o.OrderStatus, &o.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

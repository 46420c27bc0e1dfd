package customer

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Upsert(ctx context.Context, c *Customer) (*Customer, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO customers (id, seller_id, name, phone, address_text, landmark)
		VALUES ($1,$2,$3,$4,$5,$6)
		ON CONFLICT (seller_id, phone) DO UPDATE
		SET name=EXCLUDED.name,
		    address_text=EXCLUDED.address_text,
		    landmark=EXCLUDED.landmark,
		    updated_at=NOW()
		RETURNING id, seller_id, name, phone, address_text, landmark, created_at, updated_at`,
		c.ID, c.SellerID, c.Name, c.Phone, c.Address, c.Landmark)
	return scanCustomer(row.Scan)
}

func scanCustomer(scan func(...interface{}) error) (*Customer, error) {
	c := &Customer{}
	err := scan(&c.ID, &c.SellerID, &c.Name, &c.Phone, &c.Address, &c.Landmark,
		&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*Customer, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	row := r.db.QueryRowContext(ctx, `
		SELECT id, seller_id, name, phone, address_text, landmark, created_at, updated_at
		FROM customers WHERE id=$1`, uid)
	return scanCustomer(row.Scan)
}

func (r *postgresRepo) ListBySeller(ctx context.Context, sellerID string) ([]*Summary, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT c.id, c.seller_id, c.name, c.phone, c.address_text, c.landmark,
		       c.created_at, c.updated_at,
		       COUNT(o.id), COALESCE(SUM(o.total_amount), 0)
		FROM customers c
		LEFT JOIN orders o ON o.customer_id = c.id
		WHERE c.seller_id=$1
		GROUP BY c.id
		ORDER BY c.created_at DESC`, sellerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []*Summary
	for rows.Next() {
		s := &Summary{}
		if err := rows.Scan(&s.ID, &s.SellerID, &s.Name, &s.Phone, &s.Address, &s.Landmark,
			&s.CreatedAt, &s.UpdatedAt, &s.OrderCount, &s.TotalSpent); err != nil {
			return nil, err
		}
		customers = append(customers, s)
	}
	return customers, nil
}

package catalog

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Create(ctx context.Context, p *Product) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO products
		  (id, seller_id, title, price, stock, safety_buffer, image_url, is_visible)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		p.ID, p.SellerID, p.Title, p.Price, p.Stock,
		p.SafetyBuffer, p.ImageURL, p.IsVisible)
	return err
}

func scanProduct(scan func(...interface{}) error) (*Product, error) {
	p := &Product{}
	err := scan(&p.ID, &p.SellerID, &p.Title, &p.Price, &p.Stock,
		&p.SafetyBuffer, &p.ImageURL, &p.IsVisible,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*Product, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	row := r.db.QueryRowContext(ctx, `
		SELECT id,seller_id,title,price,stock,safety_buffer,image_url,is_visible,created_at,updated_at
		FROM products WHERE id=$1`, uid)
	return scanProduct(row.Scan)
}

func (r *postgresRepo) ListBySeller(ctx context.Context, sellerID string) ([]*Product, error) {
	return r.queryProducts(ctx, `
		SELECT id,seller_id,title,price,stock,safety_buffer,image_url,is_visible,created_at,updated_at
		FROM products WHERE seller_id=$1 ORDER BY created_at DESC`, sellerID)
}

func (r *postgresRepo) ListStorefront(ctx context.Context, sellerID string) ([]*Product, error) {
	return r.queryProducts(ctx, `
		SELECT id,seller_id,title,price,stock,safety_buffer,image_url,is_visible,created_at,updated_at
		FROM products
		WHERE seller_id=$1 AND is_visible=true AND stock>0
		ORDER BY created_at DESC`, sellerID)
}

func (r *postgresRepo) Update(ctx context.Context, p *Product) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET title=$1, price=$2, stock=$3, safety_buffer=$4,
		    image_url=$5, is_visible=$6, updated_at=NOW()
		WHERE id=$7`,
		p.Title, p.Price, p.Stock, p.SafetyBuffer,
		p.ImageURL, p.IsVisible, p.ID)
	return err
}

func (r *postgresRepo) DecrementStock(ctx context.Context, id string, qty int) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET stock = GREATEST(stock - $1, 0), updated_at=NOW()
		WHERE id=$2`, qty, id)
	return err
}

func (r *postgresRepo) queryProducts(ctx context.Context, query string, args ...interface{}) ([]*Product, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*Product
	for rows.Next() {
		p, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

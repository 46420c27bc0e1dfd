package seller

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Create(ctx context.Context, s *Seller) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO profiles (id, business_name, slug, phone, sms_balance)
		VALUES ($1,$2,$3,$4,$5)`,
		s.ID, s.BusinessName, s.Slug, s.Phone, s.SMSBalance)
	return err
}

func scanSeller(scan func(...interface{}) error) (*Seller, error) {
	s := &Seller{}
	err := scan(&s.ID, &s.BusinessName, &s.Slug, &s.Phone, &s.SMSBalance,
		&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*Seller, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	row := r.db.QueryRowContext(ctx, `
		SELECT id,business_name,slug,phone,sms_balance,created_at,updated_at
		FROM profiles WHERE id=$1`, uid)
	return scanSeller(row.Scan)
}

func (r *postgresRepo) GetBySlug(ctx context.Context, slug string) (*Seller, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id,business_name,slug,phone,sms_balance,created_at,updated_at
		FROM profiles WHERE slug=$1`, slug)
	return scanSeller(row.Scan)
}

func (r *postgresRepo) Update(ctx context.Context, s *Seller) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE profiles
		SET business_name=$1, phone=$2, updated_at=NOW()
		WHERE id=$3`,
		s.BusinessName, s.Phone, s.ID)
	return err
}

func (r *postgresRepo) List(ctx context.Context) ([]*Seller, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id,business_name,slug,phone,sms_balance,created_at,updated_at
		FROM profiles ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sellers []*Seller
	for rows.Next() {
		s, err := scanSeller(rows.Scan)
		if err != nil {
			return nil, err
		}
		sellers = append(sellers, s)
	}
	return sellers, nil
}

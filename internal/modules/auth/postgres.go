package auth

import (
	"context"
	"database/sql"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL account repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) CreateAccount(ctx context.Context, a *Account) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO accounts (id, email, password_hash, seller_id)
		VALUES ($1, $2, $3, $4)`,
		a.ID, a.Email, a.PasswordHash, a.SellerID)
	return err
}

func (r *postgresRepo) GetAccountByEmail(ctx context.Context, email string) (*Account, error) {
	a := &Account{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, email, password_hash, seller_id, created_at
		FROM accounts
		WHERE email = $1`, email).Scan(
		&a.ID,
		&a.Email,
		&a.PasswordHash,
		&a.SellerID,
		&a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

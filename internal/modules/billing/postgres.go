package billing

import (
	"context"
	"database/sql"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Balance(ctx context.Context, sellerID string) (int, error) {
	var balance int
	err := r.db.QueryRowContext(ctx,
		`SELECT sms_balance FROM profiles WHERE id=$1`, sellerID).Scan(&balance)
	return balance, err
}

func (r *postgresRepo) Credit(ctx context.Context, sellerID string, n int) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE profiles SET sms_balance = sms_balance + $1, updated_at=NOW()
		WHERE id=$2`, n, sellerID)
	return err
}

func (r *postgresRepo) Debit(ctx context.Context, sellerID string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE profiles SET sms_balance = sms_balance - 1, updated_at=NOW()
		WHERE id=$1 AND sms_balance > 0`, sellerID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrInsufficientCredit
	}
	return nil
}

func (r *postgresRepo) RecordTopUp(ctx context.Context, t *TopUp) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO sms_topups (id, seller_id, sms_count, price, provider_ref)
		VALUES ($1,$2,$3,$4,$5)`,
		t.ID, t.SellerID, t.SMSCount, t.Price, t.ProviderRef)
	return err
}

func (r *postgresRepo) ListTopUps(ctx context.Context, sellerID string) ([]*TopUp, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, seller_id, sms_count, price, provider_ref, created_at
		FROM sms_topups WHERE seller_id=$1 ORDER BY created_at DESC`, sellerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var topups []*TopUp
	for rows.Next() {
		t := &TopUp{}
		if err := rows.Scan(&t.ID, &t.SellerID, &t.SMSCount, &t.Price,
			&t.ProviderRef, &t.CreatedAt); err != nil {
			return nil, err
		}
		topups = append(topups, t)
	}
	return topups, nil
}

func (r *postgresRepo) LogMessage(ctx context.Context, m *Message) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO sms_log (id, seller_id, phone, body)
		VALUES ($1,$2,$3,$4)`,
		m.ID, m.SellerID, m.Phone, m.Body)
	return err
}

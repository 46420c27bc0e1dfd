package billing

import "context"

// Repository defines the interface for SMS credit storage.
type Repository interface {
	// Balance returns the seller's current SMS credit.
	Balance(ctx context.Context, sellerID string) (int, error)
	// Credit adds n credits to the seller's balance.
	Credit(ctx context.Context, sellerID string, n int) error
	// Debit consumes one credit; returns ErrInsufficientCredit at zero.
	Debit(ctx context.Context, sellerID string) error
	RecordTopUp(ctx context.Context, t *TopUp) error
	ListTopUps(ctx context.Context, sellerID string) ([]*TopUp, error)
	LogMessage(ctx context.Context, m *Message) error
}

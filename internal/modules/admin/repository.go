package admin

import "context"

// Repository defines the platform-wide, read-only admin queries.
type Repository interface {
	Stats(ctx context.Context) (*Stats, error)
	// ListOrders returns orders across all sellers, newest first,
	// optionally filtered by order status.
	ListOrders(ctx context.Context, status string) ([]*OrderRow, error)
}

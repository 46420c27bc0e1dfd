package customer

import "context"

// Repository defines the interface for customer storage.
type Repository interface {
	// Upsert inserts a customer or, when (seller_id, phone) already exists,
	// updates name, address and landmark on the existing row. The returned
	// customer always carries the persisted id.
	Upsert(ctx context.Context, c *Customer) (*Customer, error)
	GetByID(ctx context.Context, id string) (*Customer, error)
	// ListBySeller returns the seller's customers with order count and
	// total spent aggregates.
	ListBySeller(ctx context.Context, sellerID string) ([]*Summary, error)
}

package order

import "context"

// Repository defines data access for orders.
type Repository interface {
	// CreateOrder persists a new order and its items atomically in a transaction.
	CreateOrder(ctx context.Context, o *Order) error

	// GetOrderByID retrieves an order with its items by UUID.
	GetOrderByID(ctx context.Context, id string) (*Order, error)

	// ListBySeller returns a seller's orders, optionally filtered by status.
	ListBySeller(ctx context.Context, sellerID string, status string) ([]*Order, error)

	// UpdateStatus sets the fulfilment status.
	UpdateStatus(ctx context.Context, id string, status Status) error

	// MarkPaid sets payment_status to paid and records the proof.
	MarkPaid(ctx context.Context, id string, paymentRef, screenshotURL string) error

	// CustomerPhone looks up the phone number for an order's customer.
	CustomerPhone(ctx context.Context, customerID string) (string, error)
}

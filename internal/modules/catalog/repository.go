package catalog

import "context"

// Repository defines the interface for product storage.
type Repository interface {
	Create(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, id string) (*Product, error)
	ListBySeller(ctx context.Context, sellerID string) ([]*Product, error)
	// ListStorefront returns only sellable products: visible and stock > 0.
	ListStorefront(ctx context.Context, sellerID string) ([]*Product, error)
	Update(ctx context.Context, p *Product) error
	// DecrementStock reduces stock by qty, flooring at zero.
	DecrementStock(ctx context.Context, id string, qty int) error
}

package seller

import "context"

// Repository defines the interface for seller profile storage.
type Repository interface {
	Create(ctx context.Context, s *Seller) error
	GetByID(ctx context.Context, id string) (*Seller, error)
	GetBySlug(ctx context.Context, slug string) (*Seller, error)
	Update(ctx context.Context, s *Seller) error
	List(ctx context.Context) ([]*Seller, error)
}

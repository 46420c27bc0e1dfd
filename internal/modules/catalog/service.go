package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Service defines catalog business logic. Dashboard operations are scoped
// to the authenticated seller; ListStorefront serves the public store page.
type Service interface {
	CreateProduct(ctx context.Context, sellerID string, req ProductRequest) (*Product, error)
	GetProduct(ctx context.Context, sellerID, id string) (*Product, error)
	ListProducts(ctx context.Context, sellerID string) ([]*Product, error)
	ListStorefront(ctx context.Context, sellerID string) ([]*Product, error)
	UpdateProduct(ctx context.Context, sellerID, id string, req ProductRequest) (*Product, error)
	SetVisibility(ctx context.Context, sellerID, id string, visible bool) (*Product, error)
	DecrementStock(ctx context.Context, id string, qty int) error
}

// ProductRequest holds the data for creating or editing a product.
type ProductRequest struct {
	Title        string  `json:"title"`
	Price        float64 `json:"price"`
	Stock        int     `json:"stock"`
	SafetyBuffer int     `json:"safety_buffer"`
	ImageURL     string  `json:"image_url"`
}

func (req ProductRequest) validate() error {
	if strings.TrimSpace(req.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if req.Price < 0 {
		return fmt.Errorf("price cannot be negative")
	}
	if req.Stock < 0 {
		return fmt.Errorf("stock cannot be negative")
	}
	if req.SafetyBuffer < 0 {
		return fmt.Errorf("safety_buffer cannot be negative")
	}
	return nil
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) CreateProduct(ctx context.Context, sellerID string, req ProductRequest) (*Product, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	sid, err := uuid.Parse(sellerID)
	if err != nil {
		return nil, fmt.Errorf("invalid seller id: %w", err)
	}
	p := &Product{
		ID:           uuid.New(),
		SellerID:     sid,
		Title:        req.Title,
		Price:        req.Price,
		Stock:        req.Stock,
		SafetyBuffer: req.SafetyBuffer,
		ImageURL:     req.ImageURL,
		IsVisible:    true,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// owned fetches a product and verifies the row belongs to the seller.
func (s *service) owned(ctx context.Context, sellerID, id string) (*Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.SellerID.String() != sellerID {
		return nil, fmt.Errorf("product %s not found for this seller", id)
	}
	return p, nil
}

func (s *service) GetProduct(ctx context.Context, sellerID, id string) (*Product, error) {
	return s.owned(ctx, sellerID, id)
}

func (s *service) ListProducts(ctx context.Context, sellerID string) ([]*Product, error) {
	return s.repo.ListBySeller(ctx, sellerID)
}

func (s *service) ListStorefront(ctx context.Context, sellerID string) ([]*Product, error) {
	return s.repo.ListStorefront(ctx, sellerID)
}

func (s *service) UpdateProduct(ctx context.Context, sellerID, id string, req ProductRequest) (*Product, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	p, err := s.owned(ctx, sellerID, id)
	if err != nil {
		return nil, err
	}
	p.Title = req.Title
	p.Price = req.Price
	p.Stock = req.Stock
	p.SafetyBuffer = req.SafetyBuffer
	p.ImageURL = req.ImageURL
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) SetVisibility(ctx context.Context, sellerID, id string, visible bool) (*Product, error) {
	p, err := s.owned(ctx, sellerID, id)
	if err != nil {
		return nil, err
	}
	p.IsVisible = visible
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) DecrementStock(ctx context.Context, id string, qty int) error {
	if qty <= 0 {
		return nil
	}
	return s.repo.DecrementStock(ctx, id, qty)
}

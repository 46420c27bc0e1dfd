package seller

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no profile matches the requested id or slug.
var ErrNotFound = errors.New("seller not found")

// Service defines seller profile business logic.
type Service interface {
	// Onboard creates a profile for a new seller and derives its storefront slug.
	Onboard(ctx context.Context, businessName, phone string) (*Seller, error)
	GetByID(ctx context.Context, id string) (*Seller, error)
	// GetBySlug resolves a storefront slug to its owning profile.
	GetBySlug(ctx context.Context, slug string) (*Seller, error)
	UpdateProfile(ctx context.Context, id string, req UpdateProfileRequest) (*Seller, error)
	List(ctx context.Context) ([]*Seller, error)
}

// UpdateProfileRequest holds the editable profile fields. The slug stays
// stable so storefront links keep working after a rename.
type UpdateProfileRequest struct {
	BusinessName string `json:"business_name"`
	Phone        string `json:"phone"`
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) Onboard(ctx context.Context, businessName, phone string) (*Seller, error) {
	if strings.TrimSpace(businessName) == "" {
		return nil, fmt.Errorf("business_name is required")
	}
	slug := slugify(businessName)
	if slug == "" {
		return nil, fmt.Errorf("business_name must contain letters or digits")
	}

	sl := &Seller{
		ID:           uuid.New(),
		BusinessName: businessName,
		Slug:         slug,
		Phone:        phone,
	}
	err := s.repo.Create(ctx, sl)
	if err != nil && isDuplicate(err) {
		// Slug collision with another seller: retry once with a short suffix.
		sl.Slug = slug + "-" + strings.ToLower(uuid.New().String()[:4])
		err = s.repo.Create(ctx, sl)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return sl, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Seller, error) {
	sl, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return sl, err
}

func (s *service) GetBySlug(ctx context.Context, slug string) (*Seller, error) {
	sl, err := s.repo.GetBySlug(ctx, slug)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return sl, err
}

func (s *service) UpdateProfile(ctx context.Context, id string, req UpdateProfileRequest) (*Seller, error) {
	sl, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.BusinessName != "" {
		sl.BusinessName = req.BusinessName
	}
	if req.Phone != "" {
		sl.Phone = req.Phone
	}
	if err := s.repo.Update(ctx, sl); err != nil {
		return nil, err
	}
	return sl, nil
}

func (s *service) List(ctx context.Context) ([]*Seller, error) {
	return s.repo.List(ctx)
}

func isDuplicate(err error) bool {
	return strings.Contains(err.Error(), "unique") || strings.Contains(err.Error(), "duplicate")
}

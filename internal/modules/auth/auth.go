package auth

import (
	"context"

	"github.com/google/uuid"
)

// Service defines the interface for seller authentication.
type Service interface {
	// Signup registers a seller account, creates the profile, and returns a session token.
	Signup(ctx context.Context, req SignupRequest) (*Session, error)
	// Login verifies credentials and returns a session token.
	Login(ctx context.Context, email, password string) (*Session, error)
}

// SellerOnboarder creates the seller profile behind a new account and
// returns the new seller id.
type SellerOnboarder interface {
	Onboard(ctx context.Context, businessName, phone string) (uuid.UUID, error)
}

// Session is the result of a successful signup or login.
type Session struct {
	Token    string `json:"token"`
	SellerID string `json:"seller_id"`
}

// SignupRequest is the payload for registering a new seller.
type SignupRequest struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	BusinessName string `json:"business_name"`
	Phone        string `json:"phone"`
}

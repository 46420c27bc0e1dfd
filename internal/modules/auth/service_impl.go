package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var errInvalidCredentials = errors.New("invalid credentials")

type service struct {
	accounts Repository
	sellers  SellerOnboarder
	jwtKey   []byte
}

// NewService creates a new auth service. The signing key comes from config,
// not source.
func NewService(accounts Repository, sellers SellerOnboarder, jwtKey []byte) Service {
	return &service{accounts: accounts, sellers: sellers, jwtKey: jwtKey}
}

func (s *service) Signup(ctx context.Context, req SignupRequest) (*Session, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, fmt.Errorf("email and password are required")
	}
	if len(req.Password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	sellerID, err := s.sellers.Onboard(ctx, req.BusinessName, req.Phone)
	if err != nil {
		return nil, err
	}

	account := &Account{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		SellerID:     sellerID,
	}
	if err := s.accounts.CreateAccount(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return s.newSession(sellerID)
}

func (s *service) Login(ctx context.Context, email, password string) (*Session, error) {
	account, err := s.accounts.GetAccountByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, errInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, errInvalidCredentials
	}
	return s.newSession(account.SellerID)
}

func (s *service) newSession(sellerID uuid.UUID) (*Session, error) {
	expirationTime := time.Now().Add(24 * time.Hour)
	claims := &jwt.StandardClaims{
		Subject:   sellerID.String(),
		ExpiresAt: expirationTime.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtKey)
	if err != nil {
		return nil, err
	}

	return &Session{Token: tokenString, SellerID: sellerID.String()}, nil
}

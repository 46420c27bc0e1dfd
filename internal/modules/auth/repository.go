package auth

import "context"

// Repository defines the interface for account storage.
type Repository interface {
	CreateAccount(ctx context.Context, a *Account) error
	GetAccountByEmail(ctx context.Context, email string) (*Account, error)
}

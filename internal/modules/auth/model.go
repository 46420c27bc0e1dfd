package auth

import (
	"time"

	"github.com/google/uuid"
)

// Account is a seller's login identity, separate from the public profile.
type Account struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	SellerID     uuid.UUID `json:"seller_id"`
	CreatedAt    time.Time `json:"created_at"`
}

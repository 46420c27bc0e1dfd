package customer

import (
	"time"

	"github.com/google/uuid"
)

// Customer is a buyer known to one seller, keyed by phone number.
type Customer struct {
	ID        uuid.UUID `json:"id"`
	SellerID  uuid.UUID `json:"seller_id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address_text"`
	Landmark  string    `json:"landmark,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Summary is a customer row with purchase aggregates for the dashboard list.
type Summary struct {
	Customer
	OrderCount int     `json:"order_count"`
	TotalSpent float64 `json:"total_spent"`
}

package seller

import (
	"time"

	"github.com/google/uuid"
)

// Seller is a vendor profile. One seller owns one slug-addressed storefront.
type Seller struct {
	ID           uuid.UUID `json:"id"`
	BusinessName string    `json:"business_name"`
	Slug         string    `json:"slug"`
	Phone        string    `json:"phone"`
	SMSBalance   int       `json:"sms_balance"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

package catalog

import (
	"time"

	"github.com/google/uuid"
)

// Product is an item in a seller's catalog.
type Product struct {
	ID           uuid.UUID `json:"id"`
	SellerID     uuid.UUID `json:"seller_id"`
	Title        string    `json:"title"`
	Price        float64   `json:"price"`
	Stock        int       `json:"stock"`
	SafetyBuffer int       `json:"safety_buffer"`
	ImageURL     string    `json:"image_url,omitempty"`
	IsVisible    bool      `json:"is_visible"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Sellable reports whether the product appears on the storefront:
// visible and in stock.
func (p *Product) Sellable() bool {
	return p.IsVisible && p.Stock > 0
}

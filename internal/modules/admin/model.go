package admin

import (
	"time"

	"github.com/google/uuid"
)

// Stats is the platform overview: totals across every seller.
type Stats struct {
	Vendors int     `json:"vendors"`
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
	SMSSent int     `json:"sms_sent"`
}

// OrderRow is one cross-seller order joined with its vendor and customer.
type OrderRow struct {
	ID            uuid.UUID `json:"id"`
	OrderNumber   string    `json:"order_number"`
	BusinessName  string    `json:"business_name"`
	CustomerName  string    `json:"customer_name"`
	TotalAmount   float64   `json:"total_amount"`
	PaymentStatus string    `json:"payment_status"`
	OrderStatus   string    `json:"order_status"`
	CreatedAt     time.Time `json:"created_at"`
}

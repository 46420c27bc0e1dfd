package order

import (
	"time"

	"github.com/google/uuid"
)

// Status is the fulfilment stage of an order.
type Status string

const (
	StatusNew       Status = "new"
	StatusConfirmed Status = "confirmed"
	StatusDelivered Status = "delivered"
)

// PaymentStatus tracks whether the buyer's transfer has been verified,
// independently of the fulfilment Status.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

// Order is a customer's order at one seller's storefront.
type Order struct {
	ID            uuid.UUID     `json:"id"`
	SellerID      uuid.UUID     `json:"seller_id"`
	CustomerID    uuid.UUID     `json:"customer_id"`
	OrderNumber   string        `json:"order_number"`
	TotalAmount   float64       `json:"total_amount"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	Status        Status        `json:"order_status"`
	PaymentRef    string        `json:"payment_ref,omitempty"`
	ScreenshotURL string        `json:"screenshot_url,omitempty"`
	Items         []*Item       `json:"items,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// Item is a single line item with the unit price captured at order time.
type Item struct {
	ID        uuid.UUID `json:"id"`
	OrderID   uuid.UUID `json:"order_id"`
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	PriceEach float64   `json:"price_each"`
	CreatedAt time.Time `json:"created_at"`
}

// NewLine describes one validated cart line handed to Place.
type NewLine struct {
	ProductID uuid.UUID
	Quantity  int
	PriceEach float64
}

// PlaceRequest is the input to Place. Prices come from the catalog at
// submission time, never from the client.
type PlaceRequest struct {
	SellerID      uuid.UUID
	CustomerID    uuid.UUID
	Lines         []NewLine
	PaymentRef    string
	ScreenshotURL string
}

// UpdateStatusRequest is the payload for advancing an order's status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// MarkPaidRequest records the verified payment proof.
type MarkPaidRequest struct {
	PaymentRef    string `json:"payment_ref"`
	ScreenshotURL string `json:"screenshot_url"`
}

package billing

import (
	"time"

	"github.com/google/uuid"
)

// Bundle is a purchasable block of SMS credits.
type Bundle struct {
	Count int     `json:"count"`
	Price float64 `json:"price"`
}

// Bundles is the fixed top-up price list, in GHS.
var Bundles = []Bundle{
	{Count: 200, Price: 10},
	{Count: 400, Price: 20},
	{Count: 1000, Price: 50},
	{Count: 2000, Price: 100},
	{Count: 4000, Price: 200},
	{Count: 10000, Price: 500},
}

// TopUp records one successful bundle purchase.
type TopUp struct {
	ID          uuid.UUID `json:"id"`
	SellerID    uuid.UUID `json:"seller_id"`
	SMSCount    int       `json:"sms_count"`
	Price       float64   `json:"price"`
	ProviderRef string    `json:"provider_ref,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Message is one SMS sent on a seller's credit.
type Message struct {
	ID        uuid.UUID `json:"id"`
	SellerID  uuid.UUID `json:"seller_id"`
	Phone     string    `json:"phone"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// TopUpRequest is the payload for buying a bundle. Count must match one
// of the published bundles.
type TopUpRequest struct {
	Count int    `json:"count"`
	Phone string `json:"phone"`
}

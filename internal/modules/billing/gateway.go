package billing

import (
	"context"
	"fmt"
	"math/rand"
	"time"
)

// Provider represents a supported mobile-money gateway.
type Provider string

const (
	ProviderSeevCash Provider = "SEEVCASH"
)

// ChargeRequest asks a provider to collect a payment from a phone number.
type ChargeRequest struct {
	PhoneNumber string
	Amount      float64
	Description string
}

// ChargeResponse is what a gateway adapter returns after a charge.
type ChargeResponse struct {
	ProviderRef    string `json:"provider_ref"`
	ProviderStatus string `json:"provider_status"`
	Message        string `json:"message,omitempty"`
}

// Gateway is the provider-agnostic interface every payment adapter must
// implement. To add a new provider, implement this interface and register
// it in the GatewayRegistry.
type Gateway interface {
	Charge(ctx context.Context, req *ChargeRequest) (*ChargeResponse, error)
}

// GatewayRegistry maps provider names to their Gateway implementations.
type GatewayRegistry map[Provider]Gateway

// ── SeevCash Adapter ──────────────────────────────────────────────────────────
// In production, replace the stub method with actual SeevCash API calls.

type seevCashGateway struct {
	merchantID string
	apiKey     string
	env        string // sandbox | production
}

func NewSeevCashGateway(merchantID, apiKey, env string) Gateway {
	return &seevCashGateway{merchantID: merchantID, apiKey: apiKey, env: env}
}

func (g *seevCashGateway) Charge(ctx context.Context, req *ChargeRequest) (*ChargeResponse, error) {
	if req.PhoneNumber == "" {
		return nil, fmt.Errorf("phone_number is required for SeevCash")
	}
	if req.Amount <= 0 {
		return nil, fmt.Errorf("amount must be greater than 0")
	}

	// ── PRODUCTION INTEGRATION POINT ──────────────────────────────────────────
	// 1. POST /v1/token: get bearer token with merchant_id + api_key
	// 2. POST /v1/collect: { msisdn, amount, currency: "GHS", narration }
	// 3. Store the returned transaction id as provider_ref
	// ──────────────────────────────────────────────────────────────────────────

	// Sandbox stub: simulate immediate approval
	ref := fmt.Sprintf("SEEV-%s-%04d", time.Now().Format("20060102150405"), rand.Intn(10000))
	return &ChargeResponse{
		ProviderRef:    ref,
		ProviderStatus: "APPROVED",
		Message:        fmt.Sprintf("GHS %.2f collected from %s", req.Amount, req.PhoneNumber),
	}, nil
}

package billing

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
)

// ErrInsufficientCredit is returned when a send is attempted at zero balance.
var ErrInsufficientCredit = errors.New("insufficient SMS credit")

// Service defines SMS credit business logic. Its Send method satisfies the
// Notifier interfaces of the order and storefront modules.
type Service interface {
	Bundles() []Bundle
	Balance(ctx context.Context, sellerID string) (int, error)
	// TopUp charges the seller through the payment gateway and credits
	// the purchased bundle.
	TopUp(ctx context.Context, sellerID string, req TopUpRequest) (*TopUp, error)
	ListTopUps(ctx context.Context, sellerID string) ([]*TopUp, error)
	// Send delivers one SMS on the seller's credit, debiting one unit.
	Send(ctx context.Context, sellerID, phone, body string) error
}

type service struct {
	repo     Repository
	gateways GatewayRegistry
}

func NewService(repo Repository, gateways GatewayRegistry) Service {
	return &service{repo: repo, gateways: gateways}
}

func (s *service) Bundles() []Bundle { return Bundles }

func (s *service) Balance(ctx context.Context, sellerID string) (int, error) {
	return s.repo.Balance(ctx, sellerID)
}

func (s *service) TopUp(ctx context.Context, sellerID string, req TopUpRequest) (*TopUp, error) {
	var bundle *Bundle
	for i := range Bundles {
		if Bundles[i].Count == req.Count {
			bundle = &Bundles[i]
			break
		}
	}
	if bundle == nil {
		return nil, fmt.Errorf("no SMS bundle with %d messages", req.Count)
	}

	sid, err := uuid.Parse(sellerID)
	if err != nil {
		return nil, fmt.Errorf("invalid seller id: %w", err)
	}

	gw, ok := s.gateways[ProviderSeevCash]
	if !ok {
		return nil, fmt.Errorf("no gateway registered for provider: %s", ProviderSeevCash)
	}
	resp, err := gw.Charge(ctx, &ChargeRequest{
		PhoneNumber: req.Phone,
		Amount:      bundle.Price,
		Description: fmt.Sprintf("%d SMS bundle", bundle.Count),
	})
	if err != nil {
		return nil, fmt.Errorf("gateway charge failed: %w", err)
	}

	topup := &TopUp{
		ID:          uuid.New(),
		SellerID:    sid,
		SMSCount:    bundle.Count,
		Price:       bundle.Price,
		ProviderRef: resp.ProviderRef,
	}
	if err := s.repo.RecordTopUp(ctx, topup); err != nil {
		return nil, err
	}
	if err := s.repo.Credit(ctx, sellerID, bundle.Count); err != nil {
		return nil, fmt.Errorf("failed to credit balance: %w", err)
	}
	return topup, nil
}

func (s *service) ListTopUps(ctx context.Context, sellerID string) ([]*TopUp, error) {
	return s.repo.ListTopUps(ctx, sellerID)
}

func (s *service) Send(ctx context.Context, sellerID, phone, body string) error {
	if phone == "" {
		return fmt.Errorf("phone is required")
	}
	if err := s.repo.Debit(ctx, sellerID); err != nil {
		return err
	}

	sid, err := uuid.Parse(sellerID)
	if err != nil {
		return fmt.Errorf("invalid seller id: %w", err)
	}
	msg := &Message{
		ID:       uuid.New(),
		SellerID: sid,
		Phone:    phone,
		Body:     body,
	}
	if err := s.repo.LogMessage(ctx, msg); err != nil {
		log.Printf("sms to %s sent but not logged: %v", phone, err)
	}

	// ── PRODUCTION INTEGRATION POINT ──────────────────────────────────────────
	// Hand the message to the SMS provider here. The sandbox build only logs.
	// ──────────────────────────────────────────────────────────────────────────
	log.Printf("sms to %s: %s", phone, body)
	return nil
}

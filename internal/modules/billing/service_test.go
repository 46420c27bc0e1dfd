package billing

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── fakes ─────────────────────────────────────────────────────────────────────

type fakeRepo struct {
	balances map[string]int
	topups   []*TopUp
	messages []*Message
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{balances: make(map[string]int)}
}

func (f *fakeRepo) Balance(ctx context.Context, sellerID string) (int, error) {
	return f.balances[sellerID], nil
}

func (f *fakeRepo) Credit(ctx context.Context, sellerID string, n int) error {
	f.balances[sellerID] += n
	return nil
}

func (f *fakeRepo) Debit(ctx context.Context, sellerID string) error {
	if f.balances[sellerID] <= 0 {
		return ErrInsufficientCredit
	}
	f.balances[sellerID]--
	return nil
}

func (f *fakeRepo) RecordTopUp(ctx context.Context, t *TopUp) error {
	f.topups = append(f.topups, t)
	return nil
}

func (f *fakeRepo) ListTopUps(ctx context.Context, sellerID string) ([]*TopUp, error) {
	return f.topups, nil
}

func (f *fakeRepo) LogMessage(ctx context.Context, m *Message) error {
	f.messages = append(f.messages, m)
	return nil
}

type fakeGateway struct {
	charges []*ChargeRequest
	failErr error
}

func (f *fakeGateway) Charge(ctx context.Context, req *ChargeRequest) (*ChargeResponse, error) {
	if f.failErr != nil {
		return nil, f.failErr
	}
	f.charges = append(f.charges, req)
	return &ChargeResponse{ProviderRef: "SEEV-TEST-0001", ProviderStatus: "APPROVED"}, nil
}

func testService() (*fakeRepo, *fakeGateway, Service) {
	repo := newFakeRepo()
	gw := &fakeGateway{}
	svc := NewService(repo, GatewayRegistry{ProviderSeevCash: gw})
	return repo, gw, svc
}

// ── tests ─────────────────────────────────────────────────────────────────────

func TestTopUpCreditsBundle(t *testing.T) {
	repo, gw, svc := testService()
	sellerID := uuid.New().String()

	topup, err := svc.TopUp(context.Background(), sellerID, TopUpRequest{Count: 400, Phone: "0241234567"})

	require.NoError(t, err)
	assert.Equal(t, 400, topup.SMSCount)
	assert.Equal(t, 20.0, topup.Price)
	assert.Equal(t, "SEEV-TEST-0001", topup.ProviderRef)

	balance, err := svc.Balance(context.Background(), sellerID)
	require.NoError(t, err)
	assert.Equal(t, 400, balance)

	require.Len(t, gw.charges, 1)
	assert.Equal(t, 20.0, gw.charges[0].Amount)
	require.Len(t, repo.topups, 1)
}

func TestTopUpRejectsUnknownBundle(t *testing.T) {
	repo, gw, svc := testService()

	_, err := svc.TopUp(context.Background(), uuid.New().String(), TopUpRequest{Count: 123, Phone: "0241234567"})

	assert.Error(t, err)
	assert.Empty(t, gw.charges)
	assert.Empty(t, repo.topups)
}

func TestTopUpFailedChargeDoesNotCredit(t *testing.T) {
	repo, gw, svc := testService()
	gw.failErr = fmt.Errorf("gateway timeout")
	sellerID := uuid.New().String()

	_, err := svc.TopUp(context.Background(), sellerID, TopUpRequest{Count: 200, Phone: "0241234567"})

	assert.Error(t, err)
	assert.Equal(t, 0, repo.balances[sellerID])
	assert.Empty(t, repo.topups)
}

func TestSendDebitsOneCredit(t *testing.T) {
	repo, _, svc := testService()
	sellerID := uuid.New().String()
	repo.balances[sellerID] = 2

	err := svc.Send(context.Background(), sellerID, "0241234567", "Your order is confirmed")

	require.NoError(t, err)
	assert.Equal(t, 1, repo.balances[sellerID])
	require.Len(t, repo.messages, 1)
	assert.Equal(t, "0241234567", repo.messages[0].Phone)
}

func TestSendAtZeroBalance(t *testing.T) {
	repo, _, svc := testService()

	err := svc.Send(context.Background(), uuid.New().String(), "0241234567", "hello")

	assert.ErrorIs(t, err, ErrInsufficientCredit)
	assert.Empty(t, repo.messages)
}

func TestSendRequiresPhone(t *testing.T) {
	repo, _, svc := testService()
	sellerID := uuid.New().String()
	repo.balances[sellerID] = 1

	err := svc.Send(context.Background(), sellerID, "", "hello")

	assert.Error(t, err)
	assert.Equal(t, 1, repo.balances[sellerID])
}

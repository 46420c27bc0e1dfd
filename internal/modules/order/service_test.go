package order

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── fakes ─────────────────────────────────────────────────────────────────────

type fakeRepo struct {
	orders map[string]*Order
	phones map[string]string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{orders: make(map[string]*Order), phones: make(map[string]string)}
}

func (f *fakeRepo) CreateOrder(ctx context.Context, o *Order) error {
	f.orders[o.ID.String()] = o
	return nil
}

func (f *fakeRepo) GetOrderByID(ctx context.Context, id string) (*Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, fmt.Errorf("no rows")
	}
	return o, nil
}

func (f *fakeRepo) ListBySeller(ctx context.Context, sellerID, status string) ([]*Order, error) {
	var out []*Order
	for _, o := range f.orders {
		if o.SellerID.String() != sellerID {
			continue
		}
		if status != "" && string(o.Status) != status {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

func (f *fakeRepo) UpdateStatus(ctx context.Context, id string, status Status) error {
	f.orders[id].Status = status
	return nil
}

func (f *fakeRepo) MarkPaid(ctx context.Context, id string, paymentRef, screenshotURL string) error {
	o := f.orders[id]
	o.PaymentStatus = PaymentPaid
	o.PaymentRef = paymentRef
	o.ScreenshotURL = screenshotURL
	return nil
}

func (f *fakeRepo) CustomerPhone(ctx context.Context, customerID string) (string, error) {
	phone, ok := f.phones[customerID]
	if !ok {
		return "", fmt.Errorf("no rows")
	}
	return phone, nil
}

type fakeStock struct {
	decrements map[string]int
}

func (f *fakeStock) DecrementStock(ctx context.Context, productID string, qty int) error {
	if f.decrements == nil {
		f.decrements = make(map[string]int)
	}
	f.decrements[productID] += qty
	return nil
}

type fakeNotifier struct {
	sent []string
}

func (f *fakeNotifier) Send(ctx context.Context, sellerID, phone, body string) error {
	f.sent = append(f.sent, body)
	return nil
}

func placeTestOrder(t *testing.T, svc Service, sellerID uuid.UUID) *Order {
	t.Helper()
	o, err := svc.Place(context.Background(), PlaceRequest{
		SellerID:   sellerID,
		CustomerID: uuid.New(),
		Lines: []NewLine{
			{ProductID: uuid.New(), Quantity: 2, PriceEach: 250},
			{ProductID: uuid.New(), Quantity: 1, PriceEach: 180},
		},
	})
	require.NoError(t, err)
	return o
}

// ── tests ─────────────────────────────────────────────────────────────────────

func TestPlaceComputesTotalFromLines(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, &fakeStock{}, &fakeNotifier{})

	o := placeTestOrder(t, svc, uuid.New())

	assert.Equal(t, 680.0, o.TotalAmount)
	assert.Equal(t, StatusNew, o.Status)
	assert.Equal(t, PaymentPending, o.PaymentStatus)
	assert.True(t, strings.HasPrefix(o.OrderNumber, "QO-"))
	assert.Len(t, o.Items, 2)

	stored, err := repo.GetOrderByID(context.Background(), o.ID.String())
	require.NoError(t, err)
	assert.Equal(t, o.OrderNumber, stored.OrderNumber)
}

func TestPlaceRejectsEmptyAndInvalidLines(t *testing.T) {
	svc := NewService(newFakeRepo(), &fakeStock{}, &fakeNotifier{})

	_, err := svc.Place(context.Background(), PlaceRequest{SellerID: uuid.New()})
	assert.Error(t, err)

	_, err = svc.Place(context.Background(), PlaceRequest{
		SellerID: uuid.New(),
		Lines:    []NewLine{{ProductID: uuid.New(), Quantity: 0, PriceEach: 10}},
	})
	assert.Error(t, err)
}

func TestUpdateStatusFollowsTransitions(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, &fakeStock{}, &fakeNotifier{})
	sellerID := uuid.New()
	o := placeTestOrder(t, svc, sellerID)

	// new cannot skip straight to delivered
	_, err := svc.UpdateStatus(context.Background(), sellerID.String(), o.ID.String(), UpdateStatusRequest{Status: "delivered"})
	assert.Error(t, err)

	updated, err := svc.UpdateStatus(context.Background(), sellerID.String(), o.ID.String(), UpdateStatusRequest{Status: "confirmed"})
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, updated.Status)

	updated, err = svc.UpdateStatus(context.Background(), sellerID.String(), o.ID.String(), UpdateStatusRequest{Status: "delivered"})
	require.NoError(t, err)
	assert.Equal(t, StatusDelivered, updated.Status)

	// delivered is terminal
	_, err = svc.UpdateStatus(context.Background(), sellerID.String(), o.ID.String(), UpdateStatusRequest{Status: "confirmed"})
	assert.Error(t, err)
}

func TestUpdateStatusRejectsForeignOrder(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, &fakeStock{}, &fakeNotifier{})
	o := placeTestOrder(t, svc, uuid.New())

	_, err := svc.UpdateStatus(context.Background(), uuid.New().String(), o.ID.String(), UpdateStatusRequest{Status: "confirmed"})
	assert.Error(t, err)
}

func TestMarkPaidDecrementsStockAndNotifies(t *testing.T) {
	repo := newFakeRepo()
	stock := &fakeStock{}
	notifier := &fakeNotifier{}
	svc := NewService(repo, stock, notifier)
	sellerID := uuid.New()
	o := placeTestOrder(t, svc, sellerID)
	repo.phones[o.CustomerID.String()] = "0241234567"

	paid, err := svc.MarkPaid(context.Background(), sellerID.String(), o.ID.String(), MarkPaidRequest{PaymentRef: "SEEV-1"})
	require.NoError(t, err)
	assert.Equal(t, PaymentPaid, paid.PaymentStatus)
	assert.Equal(t, "SEEV-1", paid.PaymentRef)

	assert.Len(t, stock.decrements, 2)
	assert.Equal(t, 2, stock.decrements[o.Items[0].ProductID.String()])
	assert.Equal(t, 1, stock.decrements[o.Items[1].ProductID.String()])

	require.Len(t, notifier.sent, 1)
	assert.Contains(t, notifier.sent[0], o.OrderNumber)
}

func TestMarkPaidIsIdempotent(t *testing.T) {
	repo := newFakeRepo()
	stock := &fakeStock{}
	notifier := &fakeNotifier{}
	svc := NewService(repo, stock, notifier)
	sellerID := uuid.New()
	o := placeTestOrder(t, svc, sellerID)
	repo.phones[o.CustomerID.String()] = "0241234567"

	_, err := svc.MarkPaid(context.Background(), sellerID.String(), o.ID.String(), MarkPaidRequest{PaymentRef: "SEEV-1"})
	require.NoError(t, err)

	// double click: no second decrement, no second SMS
	paid, err := svc.MarkPaid(context.Background(), sellerID.String(), o.ID.String(), MarkPaidRequest{PaymentRef: "SEEV-2"})
	require.NoError(t, err)
	assert.Equal(t, "SEEV-1", paid.PaymentRef)
	assert.Equal(t, 2, stock.decrements[o.Items[0].ProductID.String()])
	assert.Len(t, notifier.sent, 1)
}

func TestListFiltersByStatus(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, &fakeStock{}, &fakeNotifier{})
	sellerID := uuid.New()
	a := placeTestOrder(t, svc, sellerID)
	placeTestOrder(t, svc, sellerID)

	_, err := svc.UpdateStatus(context.Background(), sellerID.String(), a.ID.String(), UpdateStatusRequest{Status: "confirmed"})
	require.NoError(t, err)

	confirmed, err := svc.List(context.Background(), sellerID.String(), "CONFIRMED")
	require.NoError(t, err)
	require.Len(t, confirmed, 1)
	assert.Equal(t, a.ID, confirmed[0].ID)

	all, err := svc.List(context.Background(), sellerID.String(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

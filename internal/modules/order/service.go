package order

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service defines the order management business logic.
type Service interface {
	// Place persists a new order with its line items atomically.
	Place(ctx context.Context, req PlaceRequest) (*Order, error)

	// Get retrieves a seller's order with its items.
	Get(ctx context.Context, sellerID, id string) (*Order, error)

	// List returns the seller's orders, optionally filtered by status.
	List(ctx context.Context, sellerID string, status string) ([]*Order, error)

	// UpdateStatus advances an order one step along new → confirmed → delivered.
	UpdateStatus(ctx context.Context, sellerID, id string, req UpdateStatusRequest) (*Order, error)

	// MarkPaid verifies the buyer's transfer: records the proof, decrements
	// stock, and notifies the customer. Idempotent for already-paid orders.
	MarkPaid(ctx context.Context, sellerID, id string, req MarkPaidRequest) (*Order, error)
}

// ProductStock is the slice of the catalog the order module needs.
type ProductStock interface {
	DecrementStock(ctx context.Context, productID string, qty int) error
}

// Notifier sends an SMS on the seller's credit; sends are best effort.
type Notifier interface {
	Send(ctx context.Context, sellerID, phone, body string) error
}

type service struct {
	repo     Repository
	stock    ProductStock
	notifier Notifier
}

// NewService creates a new order service.
func NewService(repo Repository, stock ProductStock, notifier Notifier) Service {
	return &service{repo: repo, stock: stock, notifier: notifier}
}

// validTransitions defines the allowed fulfilment state machine.
var validTransitions = map[Status][]Status{
	StatusNew:       {StatusConfirmed},
	StatusConfirmed: {StatusDelivered},
	StatusDelivered: {},
}

func (s *service) Place(ctx context.Context, req PlaceRequest) (*Order, error) {
	if len(req.Lines) == 0 {
		return nil, fmt.Errorf("order must contain at least one item")
	}

	var items []*Item
	var total float64
	for _, line := range req.Lines {
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("quantity must be > 0 for product %s", line.ProductID)
		}
		if line.PriceEach < 0 {
			return nil, fmt.Errorf("invalid price for product %s", line.ProductID)
		}
		total += line.PriceEach * float64(line.Quantity)
		items = append(items, &Item{
			ID:        uuid.New(),
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			PriceEach: line.PriceEach,
		})
	}

	o := &Order{
		ID:            uuid.New(),
		SellerID:      req.SellerID,
		CustomerID:    req.CustomerID,
		OrderNumber:   generateOrderNumber(),
		TotalAmount:   round2(total),
		PaymentStatus: PaymentPending,
		Status:        StatusNew,
		PaymentRef:    req.PaymentRef,
		ScreenshotURL: req.ScreenshotURL,
		Items:         items,
	}

	if err := s.repo.CreateOrder(ctx, o); err != nil {
		return nil, fmt.Errorf("failed to persist order: %w", err)
	}
	return o, nil
}

// owned fetches an order and verifies it belongs to the seller.
func (s *service) owned(ctx context.Context, sellerID, id string) (*Order, error) {
	o, err := s.repo.GetOrderByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("order not found: %w", err)
	}
	if o.SellerID.String() != sellerID {
		return nil, fmt.Errorf("order not found")
	}
	return o, nil
}

func (s *service) Get(ctx context.Context, sellerID, id string) (*Order, error) {
	return s.owned(ctx, sellerID, id)
}

func (s *service) List(ctx context.Context, sellerID string, status string) ([]*Order, error) {
	return s.repo.ListBySeller(ctx, sellerID, strings.ToLower(status))
}

func (s *service) UpdateStatus(ctx context.Context, sellerID, id string, req UpdateStatusRequest) (*Order, error) {
	o, err := s.owned(ctx, sellerID, id)
	if err != nil {
		return nil, err
	}

	newStatus := Status(strings.ToLower(req.Status))
	allowed, known := validTransitions[o.Status]
	if !known {
		return nil, fmt.Errorf("unknown order status %q", o.Status)
	}
	valid := false
	for _, st := range allowed {
		if st == newStatus {
			valid = true
			break
		}
	}
	if !valid {
		return nil, fmt.Errorf("cannot transition order from %s to %s", o.Status, newStatus)
	}

	if err := s.repo.UpdateStatus(ctx, id, newStatus); err != nil {
		return nil, err
	}
	return s.repo.GetOrderByID(ctx, id)
}

func (s *service) MarkPaid(ctx context.Context, sellerID, id string, req MarkPaidRequest) (*Order, error) {
	o, err := s.owned(ctx, sellerID, id)
	if err != nil {
		return nil, err
	}
	if o.PaymentStatus == PaymentPaid {
		// Double click on "Mark as Paid"; the first write already stands.
		return o, nil
	}

	if err := s.repo.MarkPaid(ctx, id, req.PaymentRef, req.ScreenshotURL); err != nil {
		return nil, err
	}

	for _, item := range o.Items {
		if err := s.stock.DecrementStock(ctx, item.ProductID.String(), item.Quantity); err != nil {
			log.Printf("order %s: stock decrement failed for product %s: %v", o.OrderNumber, item.ProductID, err)
		}
	}

	if phone, perr := s.repo.CustomerPhone(ctx, o.CustomerID.String()); perr == nil {
		body := fmt.Sprintf("Payment confirmed for order %s. Your items are on the way!", o.OrderNumber)
		if nerr := s.notifier.Send(ctx, sellerID, phone, body); nerr != nil {
			log.Printf("order %s: payment SMS not sent: %v", o.OrderNumber, nerr)
		}
	}

	return s.repo.GetOrderByID(ctx, id)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// generateOrderNumber creates a human-readable order number: QO-YYYYMMDD-XXXX
func generateOrderNumber() string {
	date := time.Now().UTC().Format("20060102")
	suffix := strings.ToUpper(uuid.New().String()[:4])
	return fmt.Sprintf("QO-%s-%s", date, suffix)
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}

package storefront

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/qwikorder/qwikorder-backend/internal/modules/catalog"
	"github.com/qwikorder/qwikorder-backend/internal/modules/customer"
	"github.com/qwikorder/qwikorder-backend/internal/modules/order"
	"github.com/qwikorder/qwikorder-backend/internal/modules/seller"
)

// View is everything the public store page needs. Seller is nil when the
// slug resolves to nothing; that renders as an empty storefront, not an
// error page.
type View struct {
	Seller   *seller.Seller     `json:"seller"`
	Products []*catalog.Product `json:"products"`
}

// LineRequest is one requested cart entry in a submission. Quantities are
// re-clamped against live stock; prices are never taken from the client.
type LineRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// SubmitRequest is the full checkout submission for one storefront.
type SubmitRequest struct {
	Details       Details       `json:"details"`
	Lines         []LineRequest `json:"lines"`
	PaymentRef    string        `json:"payment_ref"`
	ScreenshotURL string        `json:"screenshot_url"`
}

// Notifier sends an SMS on the seller's credit; sends are best effort.
type Notifier interface {
	Send(ctx context.Context, sellerID, phone, body string) error
}

// Service is the public storefront: catalog view and order submission.
type Service interface {
	Load(ctx context.Context, slug string) (*View, error)
	Submit(ctx context.Context, slug string, req SubmitRequest) (*order.Order, error)
}

type service struct {
	sellers   seller.Service
	products  catalog.Service
	customers customer.Repository
	orders    order.Service
	notifier  Notifier
}

func NewService(sellers seller.Service, products catalog.Service, customers customer.Repository, orders order.Service, notifier Notifier) Service {
	return &service{
		sellers:   sellers,
		products:  products,
		customers: customers,
		orders:    orders,
		notifier:  notifier,
	}
}

func (s *service) Load(ctx context.Context, slug string) (*View, error) {
	sl, err := s.sellers.GetBySlug(ctx, slug)
	if errors.Is(err, seller.ErrNotFound) {
		return &View{}, nil
	}
	if err != nil {
		return nil, err
	}

	products, err := s.products.ListStorefront(ctx, sl.ID.String())
	if err != nil {
		return nil, err
	}
	return &View{Seller: sl, Products: filterSellable(products)}, nil
}

// filterSellable keeps only sellable products, whatever the repository
// returned.
func filterSellable(products []*catalog.Product) []*catalog.Product {
	sellable := products[:0]
	for _, p := range products {
		if p.Sellable() {
			sellable = append(sellable, p)
		}
	}
	return sellable
}

// Submit runs the order submission sequence: revalidate the cart against
// the live catalog, upsert the customer, persist order + items in one
// transaction, then confirm. Any failure aborts before later steps run.
func (s *service) Submit(ctx context.Context, slug string, req SubmitRequest) (*order.Order, error) {
	sl, err := s.sellers.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	products, err := s.products.ListStorefront(ctx, sl.ID.String())
	if err != nil {
		return nil, err
	}

	cart := NewCart(filterSellable(products))
	for _, line := range req.Lines {
		pid, err := uuid.Parse(line.ProductID)
		if err != nil {
			return nil, fmt.Errorf("invalid product_id: %w", err)
		}
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("quantity must be > 0 for product %s", line.ProductID)
		}
		before := cart.Quantity(pid)
		cart.Add(pid, line.Quantity)
		if cart.Quantity(pid) == 0 {
			return nil, fmt.Errorf("product %s is not available in this store", line.ProductID)
		}
		if cart.Quantity(pid)-before < line.Quantity {
			return nil, fmt.Errorf("insufficient stock for product %s", line.ProductID)
		}
	}

	co := NewCheckout(cart)
	if err := co.EnterDetails(req.Details); err != nil {
		return nil, err
	}
	if err := co.ProceedToPayment(); err != nil {
		return nil, err
	}

	cust, err := s.customers.Upsert(ctx, &customer.Customer{
		ID:       uuid.New(),
		SellerID: sl.ID,
		Name:     req.Details.Name,
		Phone:    req.Details.Phone,
		Address:  req.Details.Address,
		Landmark: req.Details.Landmark,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save customer: %w", err)
	}

	var lines []order.NewLine
	for _, line := range cart.Lines() {
		lines = append(lines, order.NewLine{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			PriceEach: line.PriceEach,
		})
	}

	o, err := s.orders.Place(ctx, order.PlaceRequest{
		SellerID:      sl.ID,
		CustomerID:    cust.ID,
		Lines:         lines,
		PaymentRef:    req.PaymentRef,
		ScreenshotURL: req.ScreenshotURL,
	})
	if err != nil {
		return nil, err
	}

	if err := co.Confirm(); err != nil {
		return nil, err
	}

	body := fmt.Sprintf("New order %s from %s: GHS %.2f", o.OrderNumber, cust.Name, o.TotalAmount)
	if nerr := s.notifier.Send(ctx, sl.ID.String(), sl.Phone, body); nerr != nil {
		log.Printf("order %s: seller SMS not sent: %v", o.OrderNumber, nerr)
	}

	return o, nil
}

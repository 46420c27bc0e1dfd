package storefront

import (
	"fmt"
	"strings"
)

// Step is a stage of the storefront checkout flow.
type Step string

const (
	StepBrowse    Step = "browse"
	StepDetails   Step = "details"
	StepPayment   Step = "payment"
	StepConfirmed Step = "confirmed"
)

// Details is the delivery form a shopper fills in before paying.
type Details struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Address  string `json:"address_text"`
	Landmark string `json:"landmark"`
}

// Checkout walks a cart through browse → details → payment → confirmed.
// Confirmed is terminal; a new session starts over at browse.
type Checkout struct {
	cart    *Cart
	step    Step
	details Details
}

func NewCheckout(cart *Cart) *Checkout {
	return &Checkout{cart: cart, step: StepBrowse}
}

func (co *Checkout) Step() Step       { return co.step }
func (co *Checkout) Details() Details { return co.details }

// EnterDetails moves from browse to the delivery form. An empty cart
// cannot leave browse; name and phone are required because the customer
// upsert is keyed by phone.
func (co *Checkout) EnterDetails(d Details) error {
	if co.step != StepBrowse && co.step != StepDetails {
		return fmt.Errorf("cannot enter details from step %s", co.step)
	}
	if co.cart.Empty() {
		return fmt.Errorf("cart is empty")
	}
	if strings.TrimSpace(d.Name) == "" || strings.TrimSpace(d.Phone) == "" {
		return fmt.Errorf("name and phone are required")
	}
	co.details = d
	co.step = StepDetails
	return nil
}

// ProceedToPayment moves from the delivery form to the payment view.
func (co *Checkout) ProceedToPayment() error {
	if co.step != StepDetails {
		return fmt.Errorf("cannot proceed to payment from step %s", co.step)
	}
	co.step = StepPayment
	return nil
}

// Back steps toward browse. Confirmed sessions cannot go back.
func (co *Checkout) Back() error {
	switch co.step {
	case StepPayment:
		co.step = StepDetails
	case StepDetails:
		co.step = StepBrowse
	case StepBrowse:
		// already at the start
	default:
		return fmt.Errorf("cannot go back from step %s", co.step)
	}
	return nil
}

// Confirm finishes the session after a successful submission: the step
// becomes terminal and the cart is cleared.
func (co *Checkout) Confirm() error {
	if co.step != StepPayment {
		return fmt.Errorf("cannot confirm from step %s", co.step)
	}
	co.step = StepConfirmed
	co.cart.clear()
	return nil
}

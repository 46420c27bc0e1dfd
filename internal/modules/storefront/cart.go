package storefront

import (
	"github.com/google/uuid"
	"github.com/qwikorder/qwikorder-backend/internal/modules/catalog"
)

// Cart is the shopper's in-progress selection over one loaded catalog.
// It lives only for the session: nothing is persisted until submission.
type Cart struct {
	products map[uuid.UUID]*catalog.Product
	order    []uuid.UUID
	qty      map[uuid.UUID]int
}

// Line is one cart entry at the catalog's current price.
type Line struct {
	ProductID uuid.UUID `json:"product_id"`
	Title     string    `json:"title"`
	Quantity  int       `json:"quantity"`
	PriceEach float64   `json:"price_each"`
}

// NewCart builds an empty cart over the given storefront products.
func NewCart(products []*catalog.Product) *Cart {
	c := &Cart{
		products: make(map[uuid.UUID]*catalog.Product, len(products)),
		qty:      make(map[uuid.UUID]int),
	}
	for _, p := range products {
		c.products[p.ID] = p
		c.order = append(c.order, p.ID)
	}
	return c
}

// Add raises the quantity for a product by n, clamped at its stock.
// Unknown product ids and non-positive n are ignored. Cost is constant
// regardless of n.
func (c *Cart) Add(productID uuid.UUID, n int) {
	p, ok := c.products[productID]
	if !ok || n <= 0 {
		return
	}
	q := c.qty[productID] + n
	if q > p.Stock || q < 0 {
		q = p.Stock
	}
	c.qty[productID] = q
}

// AddOne increments the quantity for a product, clamped at its stock.
func (c *Cart) AddOne(productID uuid.UUID) { c.Add(productID, 1) }

// RemoveOne decrements the quantity for a product; the entry disappears
// at zero, it never goes negative.
func (c *Cart) RemoveOne(productID uuid.UUID) {
	n, ok := c.qty[productID]
	if !ok {
		return
	}
	if n <= 1 {
		delete(c.qty, productID)
		return
	}
	c.qty[productID] = n - 1
}

// Quantity returns the current quantity for a product, zero if absent.
func (c *Cart) Quantity(productID uuid.UUID) int { return c.qty[productID] }

// Count returns the total number of units in the cart.
func (c *Cart) Count() int {
	total := 0
	for _, n := range c.qty {
		total += n
	}
	return total
}

// Total returns the cart total computed from the loaded catalog prices.
func (c *Cart) Total() float64 {
	var total float64
	for id, n := range c.qty {
		total += c.products[id].Price * float64(n)
	}
	return total
}

// Lines returns the cart entries in catalog order.
func (c *Cart) Lines() []Line {
	var lines []Line
	for _, id := range c.order {
		n, ok := c.qty[id]
		if !ok {
			continue
		}
		p := c.products[id]
		lines = append(lines, Line{
			ProductID: id,
			Title:     p.Title,
			Quantity:  n,
			PriceEach: p.Price,
		})
	}
	return lines
}

// Empty reports whether the cart holds no units.
func (c *Cart) Empty() bool { return len(c.qty) == 0 }

func (c *Cart) clear() { c.qty = make(map[uuid.UUID]int) }

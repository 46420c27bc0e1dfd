package storefront

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/qwikorder/qwikorder-backend/internal/modules/catalog"
)

func testProducts() (*catalog.Product, *catalog.Product) {
	a := &catalog.Product{ID: uuid.New(), Title: "Ankara Dress", Price: 250, Stock: 3, IsVisible: true}
	b := &catalog.Product{ID: uuid.New(), Title: "Head Wrap", Price: 180, Stock: 5, IsVisible: true}
	return a, b
}

func TestCartAddOneClampsAtStock(t *testing.T) {
	a, b := testProducts()
	cart := NewCart([]*catalog.Product{a, b})

	for i := 0; i < 10; i++ {
		cart.AddOne(a.ID)
	}

	assert.Equal(t, 3, cart.Quantity(a.ID))
	assert.Equal(t, 3, cart.Count())
}

func TestCartAddClampsLargeQuantity(t *testing.T) {
	a, _ := testProducts()
	cart := NewCart([]*catalog.Product{a})

	cart.Add(a.ID, math.MaxInt)

	assert.Equal(t, 3, cart.Quantity(a.ID))

	cart.Add(a.ID, 0)
	cart.Add(a.ID, -5)
	assert.Equal(t, 3, cart.Quantity(a.ID))
}

func TestCartAddOneIgnoresUnknownProduct(t *testing.T) {
	a, _ := testProducts()
	cart := NewCart([]*catalog.Product{a})

	cart.AddOne(uuid.New())

	assert.True(t, cart.Empty())
	assert.Equal(t, 0, cart.Count())
}

func TestCartRemoveOneDeletesEntryAtZero(t *testing.T) {
	a, _ := testProducts()
	cart := NewCart([]*catalog.Product{a})

	cart.AddOne(a.ID)
	cart.RemoveOne(a.ID)

	assert.Equal(t, 0, cart.Quantity(a.ID))
	assert.True(t, cart.Empty())
	assert.Empty(t, cart.Lines())

	// removing again must not go negative
	cart.RemoveOne(a.ID)
	assert.Equal(t, 0, cart.Quantity(a.ID))
}

func TestCartTotal(t *testing.T) {
	a, b := testProducts()
	cart := NewCart([]*catalog.Product{a, b})

	cart.AddOne(a.ID)
	cart.AddOne(a.ID)
	cart.AddOne(b.ID)

	assert.Equal(t, 680.0, cart.Total())
	assert.Equal(t, 3, cart.Count())
}

func TestCartLinesKeepCatalogOrder(t *testing.T) {
	a, b := testProducts()
	cart := NewCart([]*catalog.Product{a, b})

	cart.AddOne(b.ID)
	cart.AddOne(a.ID)

	lines := cart.Lines()
	assert.Len(t, lines, 2)
	assert.Equal(t, a.ID, lines[0].ProductID)
	assert.Equal(t, b.ID, lines[1].ProductID)
	assert.Equal(t, 250.0, lines[0].PriceEach)
}

package tracking

import (
	"slices"

	"github.com/dmitrymomot/gatrack/pkg/validator"
)

// Item is a product line of a Transaction.
type Item struct {
	OrderID   string
	SKU       string
	Name      string
	Variation string
	Price     float64
	Quantity  int
}

// NewItem returns an item with a quantity of 1.
func NewItem() Item {
	return Item{Quantity: 1}
}

// Validate reports a missing SKU.
func (i Item) Validate() error {
	return validator.Apply(validator.RequiredString("sku", i.SKU))
}

// Transaction is an ecommerce order. It owns copies of its items and keeps
// their order IDs in sync with its own.
type Transaction struct {
	Affiliation string
	Total       float64
	Tax         float64
	Shipping    float64
	City        string
	State       string
	Country     string

	orderID string
	items   []Item
}

// NewTransaction returns an empty transaction for the given order.
func NewTransaction(orderID string) *Transaction {
	return &Transaction{orderID: orderID}
}

// OrderID returns the order ID.
func (t *Transaction) OrderID() string { return t.orderID }

// SetOrderID sets the order ID and propagates it to every held item.
func (t *Transaction) SetOrderID(orderID string) {
	t.orderID = orderID
	for i := range t.items {
		t.items[i].OrderID = orderID
	}
}

// AddItem stamps the transaction order ID onto a copy of item and appends it.
func (t *Transaction) AddItem(item Item) {
	item.OrderID = t.orderID
	t.items = append(t.items, item)
}

// Items returns a copy of the held items in insertion order.
func (t *Transaction) Items() []Item {
	return slices.Clone(t.items)
}

// Validate reports a transaction without items.
func (t *Transaction) Validate() error {
	return validator.Apply(validator.RequiredSlice("items", t.items))
}

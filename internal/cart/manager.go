// Package cart maintains a vendor's in-memory cart and its checkout path.
//
// The cart holds at most one line per product id, preserves insertion order,
// and keeps every line's total a pure function of quantity and unit price.
// It lives only as long as the session; nothing is persisted.
package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/streetbazaar/storefront/pkg/api"
	"github.com/streetbazaar/storefront/pkg/models"
)

// ErrEmptyCart is returned by Checkout when there is nothing to order
var ErrEmptyCart = errors.New("cart is empty")

// QuantityError reports a quantity outside the product's order range. The
// manager is authoritative here; input widgets constrain steppers, but a bad
// quantity is rejected regardless of where it came from.
type QuantityError struct {
	ProductName string
	Quantity    int
	MinQty      int
	MaxQty      int
}

func (e *QuantityError) Error() string {
	return fmt.Sprintf("quantity %d for %q is outside the order range %d-%d",
		e.Quantity, e.ProductName, e.MinQty, e.MaxQty)
}

// orderRange is the per-line bounds snapshot taken at add time
type orderRange struct {
	name     string
	min, max int
}

// Manager is the cart state manager. Calls arrive one user action at a time
// from the UI loop, so there is no locking.
type Manager struct {
	api    *api.Client
	lines  []models.CartLine
	bounds map[string]orderRange
}

func New(client *api.Client) *Manager {
	return &Manager{
		api:    client,
		bounds: make(map[string]orderRange),
	}
}

func (m *Manager) find(productID string) int {
	for i := range m.lines {
		if m.lines[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// AddItem puts quantity units of the product in the cart, merging into an
// existing line for the same product. The quantity, and for merges the
// combined quantity, must fall within the product's order range.
func (m *Manager) AddItem(p *models.Product, quantity int) error {
	if !p.ValidQuantity(quantity) {
		return &QuantityError{ProductName: p.Name, Quantity: quantity, MinQty: p.MinOrderQty, MaxQty: p.MaxOrderQty}
	}

	if i := m.find(p.ID); i >= 0 {
		merged := m.lines[i].Quantity + quantity
		if merged > p.MaxOrderQty {
			return &QuantityError{ProductName: p.Name, Quantity: merged, MinQty: p.MinOrderQty, MaxQty: p.MaxOrderQty}
		}
		m.lines[i].Quantity = merged
		m.lines[i].Recalculate()
		return nil
	}

	m.lines = append(m.lines, models.NewCartLine(p, quantity))
	m.bounds[p.ID] = orderRange{name: p.Name, min: p.MinOrderQty, max: p.MaxOrderQty}
	return nil
}

// UpdateQuantity sets the quantity of an existing line. A quantity of zero or
// less removes the line. Quantities above the product's maximum are rejected;
// positive quantities below the minimum are allowed so a stepper can walk a
// line down to removal. Unknown product ids are a no-op.
func (m *Manager) UpdateQuantity(productID string, quantity int) error {
	if quantity <= 0 {
		m.RemoveItem(productID)
		return nil
	}

	i := m.find(productID)
	if i < 0 {
		return nil
	}

	if r, ok := m.bounds[productID]; ok && quantity > r.max {
		return &QuantityError{ProductName: r.name, Quantity: quantity, MinQty: r.min, MaxQty: r.max}
	}

	m.lines[i].Quantity = quantity
	m.lines[i].Recalculate()
	return nil
}

// RemoveItem drops the line for productID. Absent lines are a no-op.
func (m *Manager) RemoveItem(productID string) {
	if i := m.find(productID); i >= 0 {
		m.lines = append(m.lines[:i], m.lines[i+1:]...)
		delete(m.bounds, productID)
	}
}

// Lines returns the cart lines in insertion order
func (m *Manager) Lines() []models.CartLine {
	out := make([]models.CartLine, len(m.lines))
	copy(out, m.lines)
	return out
}

// Len returns the number of distinct lines
func (m *Manager) Len() int {
	return len(m.lines)
}

// ItemCount returns the total number of units across all lines
func (m *Manager) ItemCount() int {
	var count int
	for i := range m.lines {
		count += m.lines[i].Quantity
	}
	return count
}

// Total sums all line totals, recomputed on demand
func (m *Manager) Total() float64 {
	var total float64
	for i := range m.lines {
		total += m.lines[i].TotalPrice
	}
	return total
}

// Clear empties the cart
func (m *Manager) Clear() {
	m.lines = nil
	m.bounds = make(map[string]orderRange)
}

// Checkout submits the cart as one order. On success the cart is cleared and
// the created order returned. On failure the cart is left exactly as it was;
// there is no retry.
func (m *Manager) Checkout(ctx context.Context, deliveryAddress string) (*models.Order, error) {
	if len(m.lines) == 0 {
		return nil, ErrEmptyCart
	}

	order, err := m.api.CreateOrder(ctx, models.CreateOrderRequest{
		Items:           m.Lines(),
		DeliveryAddress: deliveryAddress,
	})
	if err != nil {
		return nil, err
	}

	m.Clear()
	return order, nil
}

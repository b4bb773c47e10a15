// Package orders fetches and transitions the authenticated user's orders.
// After a successful status change the whole list is re-fetched rather than
// patched locally, trading a round trip for guaranteed consistency with the
// server.
package orders

import (
	"context"
	"errors"

	"github.com/streetbazaar/storefront/pkg/api"
	"github.com/streetbazaar/storefront/pkg/models"
)

var (
	// ErrUnknownOrder means the order id is not in the fetched list
	ErrUnknownOrder = errors.New("unknown order")
	// ErrNotPending means the order no longer accepts a transition
	ErrNotPending = errors.New("order is not pending")
)

type View struct {
	api    *api.Client
	orders []models.Order
}

func New(client *api.Client) *View {
	return &View{api: client}
}

// Refresh reloads the full order list from the server
func (v *View) Refresh(ctx context.Context) error {
	orders, err := v.api.Orders(ctx)
	if err != nil {
		return err
	}
	v.orders = orders
	return nil
}

// Orders returns the last fetched list
func (v *View) Orders() []models.Order {
	out := make([]models.Order, len(v.orders))
	copy(out, v.orders)
	return out
}

// Get returns the order with the given id from the last fetched list
func (v *View) Get(orderID string) (*models.Order, bool) {
	for i := range v.orders {
		if v.orders[i].ID == orderID {
			return &v.orders[i], true
		}
	}
	return nil, false
}

// Confirm transitions a pending order to confirmed
func (v *View) Confirm(ctx context.Context, orderID string) error {
	return v.transition(ctx, orderID, models.OrderStatusConfirmed)
}

// Cancel transitions a pending order to cancelled
func (v *View) Cancel(ctx context.Context, orderID string) error {
	return v.transition(ctx, orderID, models.OrderStatusCancelled)
}

func (v *View) transition(ctx context.Context, orderID, status string) error {
	order, ok := v.Get(orderID)
	if !ok {
		return ErrUnknownOrder
	}
	if !order.IsPending() {
		return ErrNotPending
	}

	if _, err := v.api.UpdateOrderStatus(ctx, orderID, status); err != nil {
		return err
	}
	return v.Refresh(ctx)
}

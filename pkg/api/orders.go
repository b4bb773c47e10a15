package api

import (
	"context"
	"net/http"

	"github.com/streetbazaar/storefront/pkg/models"
)

// CreateOrder submits the cart lines and delivery address as one order
func (c *Client) CreateOrder(ctx context.Context, req models.CreateOrderRequest) (*models.Order, error) {
	var order models.Order
	if err := c.do(ctx, http.MethodPost, "/orders", nil, req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// Orders lists the authenticated user's orders. Vendors see orders they
// placed, suppliers see orders placed against them.
func (c *Client) Orders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := c.do(ctx, http.MethodGet, "/orders", nil, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateOrderStatus requests a server-side status transition and returns the
// updated order. The server is authoritative over which transitions apply.
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID, status string) (*models.Order, error) {
	var order models.Order
	req := models.UpdateOrderStatusRequest{Status: status}
	if err := c.do(ctx, http.MethodPut, "/orders/"+orderID+"/status", nil, req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

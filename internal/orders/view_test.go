package orders

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streetbazaar/storefront/internal/mockapi"
	"github.com/streetbazaar/storefront/pkg/api"
	"github.com/streetbazaar/storefront/pkg/models"
)

// placeOrder seeds one pending order for the Delhi supplier and returns
// clients for both sides of it.
func placeOrder(t *testing.T) (vendor, supplier *api.Client, order *models.Order) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	srv := httptest.NewServer(mockapi.New().Engine())
	t.Cleanup(srv.Close)
	ctx := context.Background()

	login := func(email string) *api.Client {
		client := api.New(srv.URL + "/api")
		resp, err := client.Login(ctx, email, mockapi.DemoPassword)
		require.NoError(t, err)
		client.SetToken(resp.AccessToken)
		return client
	}

	vendor = login("rajesh.dosa@gmail.com")
	supplier = login("delhi.agro@gmail.com")

	products, err := vendor.Products(ctx, "spices", "turmeric")
	require.NoError(t, err)
	require.Len(t, products, 1)

	order, err = vendor.CreateOrder(ctx, models.CreateOrderRequest{
		Items:           []models.CartLine{models.NewCartLine(&products[0], 2)},
		DeliveryAddress: "Delhi, Delhi",
	})
	require.NoError(t, err)
	return vendor, supplier, order
}

func TestRefreshListsOwnOrders(t *testing.T) {
	vendor, supplier, order := placeOrder(t)
	ctx := context.Background()

	supplierView := New(supplier)
	require.NoError(t, supplierView.Refresh(ctx))
	require.Len(t, supplierView.Orders(), 1)

	got, ok := supplierView.Get(order.ID)
	require.True(t, ok)
	assert.Equal(t, models.OrderStatusPending, got.Status)
	assert.True(t, got.CanConfirm())
	assert.True(t, got.CanCancel())

	vendorView := New(vendor)
	require.NoError(t, vendorView.Refresh(ctx))
	assert.Len(t, vendorView.Orders(), 1)
}

func TestConfirmPendingOrder(t *testing.T) {
	_, supplier, order := placeOrder(t)
	ctx := context.Background()

	view := New(supplier)
	require.NoError(t, view.Refresh(ctx))
	require.NoError(t, view.Confirm(ctx, order.ID))

	// The transition re-fetched the list rather than patching locally
	got, ok := view.Get(order.ID)
	require.True(t, ok)
	assert.Equal(t, models.OrderStatusConfirmed, got.Status)
	assert.False(t, got.CanConfirm())
	assert.False(t, got.CanCancel())

	// A second transition is refused before any request is made
	assert.ErrorIs(t, view.Confirm(ctx, order.ID), ErrNotPending)
	assert.ErrorIs(t, view.Cancel(ctx, order.ID), ErrNotPending)
}

func TestCancelPendingOrder(t *testing.T) {
	_, supplier, order := placeOrder(t)
	ctx := context.Background()

	view := New(supplier)
	require.NoError(t, view.Refresh(ctx))
	require.NoError(t, view.Cancel(ctx, order.ID))

	got, ok := view.Get(order.ID)
	require.True(t, ok)
	assert.Equal(t, models.OrderStatusCancelled, got.Status)
}

func TestTransitionUnknownOrder(t *testing.T) {
	_, supplier, _ := placeOrder(t)
	ctx := context.Background()

	view := New(supplier)
	require.NoError(t, view.Refresh(ctx))
	assert.ErrorIs(t, view.Confirm(ctx, "no-such-order"), ErrUnknownOrder)
}

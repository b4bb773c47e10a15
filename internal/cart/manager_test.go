package cart

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streetbazaar/storefront/internal/mockapi"
	"github.com/streetbazaar/storefront/pkg/api"
	"github.com/streetbazaar/storefront/pkg/models"
)

func testProduct() *models.Product {
	return &models.Product{
		ID:           "p1",
		Name:         "Premium Basmati Rice",
		Category:     "grains",
		Price:        10.0,
		Unit:         "kg",
		Stock:        500,
		MinOrderQty:  1,
		MaxOrderQty:  100,
		SupplierID:   "s1",
		SupplierName: "Delhi Agro Supplies",
	}
}

func TestAddItemMergesLines(t *testing.T) {
	m := New(nil)
	p := testProduct()

	require.NoError(t, m.AddItem(p, 2))
	lines := m.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, 20.0, lines[0].TotalPrice)

	// A second add for the same product merges rather than duplicating
	require.NoError(t, m.AddItem(p, 3))
	lines = m.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity)
	assert.Equal(t, 50.0, lines[0].TotalPrice)
	assert.Equal(t, 50.0, m.Total())
}

func TestAddItemRejectsOutOfRange(t *testing.T) {
	m := New(nil)
	p := testProduct()
	p.MinOrderQty = 10
	p.MaxOrderQty = 20

	var qErr *QuantityError

	err := m.AddItem(p, 5)
	require.ErrorAs(t, err, &qErr)
	assert.Equal(t, 5, qErr.Quantity)

	err = m.AddItem(p, 25)
	require.ErrorAs(t, err, &qErr)
	assert.Zero(t, m.Len())

	// A merge that would exceed the maximum leaves the line untouched
	require.NoError(t, m.AddItem(p, 15))
	err = m.AddItem(p, 10)
	require.ErrorAs(t, err, &qErr)
	assert.Equal(t, 25, qErr.Quantity)
	assert.Equal(t, 15, m.Lines()[0].Quantity)
}

func TestUpdateQuantity(t *testing.T) {
	m := New(nil)
	p := testProduct()
	require.NoError(t, m.AddItem(p, 2))

	require.NoError(t, m.UpdateQuantity(p.ID, 7))
	assert.Equal(t, 7, m.Lines()[0].Quantity)
	assert.Equal(t, 70.0, m.Lines()[0].TotalPrice)

	var qErr *QuantityError
	err := m.UpdateQuantity(p.ID, 1000)
	require.ErrorAs(t, err, &qErr)
	assert.Equal(t, 7, m.Lines()[0].Quantity)

	// Unknown product ids are a no-op, not an error
	require.NoError(t, m.UpdateQuantity("nope", 3))
	assert.Equal(t, 1, m.Len())
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	m := New(nil)
	p := testProduct()
	require.NoError(t, m.AddItem(p, 2))

	require.NoError(t, m.UpdateQuantity(p.ID, 0))
	assert.Zero(t, m.Len())
	assert.Zero(t, m.Total())

	require.NoError(t, m.AddItem(p, 2))
	require.NoError(t, m.UpdateQuantity(p.ID, -3))
	assert.Zero(t, m.Len())
}

func TestUpdateQuantityBelowMinimumAllowed(t *testing.T) {
	m := New(nil)
	p := testProduct()
	p.MinOrderQty = 10

	require.NoError(t, m.AddItem(p, 10))
	// Stepping a line down below the product minimum is how a stepper
	// walks it to removal, so it is not rejected
	require.NoError(t, m.UpdateQuantity(p.ID, 9))
	assert.Equal(t, 9, m.Lines()[0].Quantity)
}

func TestRemoveItem(t *testing.T) {
	m := New(nil)
	first := testProduct()
	second := testProduct()
	second.ID = "p2"
	second.Name = "Pure Ghee"
	third := testProduct()
	third.ID = "p3"
	third.Name = "Cumin Seeds"

	require.NoError(t, m.AddItem(first, 1))
	require.NoError(t, m.AddItem(second, 1))
	require.NoError(t, m.AddItem(third, 1))

	m.RemoveItem(second.ID)
	lines := m.Lines()
	require.Len(t, lines, 2)
	// Insertion order survives removals
	assert.Equal(t, "p1", lines[0].ProductID)
	assert.Equal(t, "p3", lines[1].ProductID)

	m.RemoveItem("absent")
	assert.Len(t, m.Lines(), 2)
}

func TestTotalEmptyCart(t *testing.T) {
	m := New(nil)
	assert.Zero(t, m.Total())
	assert.Zero(t, m.ItemCount())
}

func newVendorClient(t *testing.T) *api.Client {
	t.Helper()
	gin.SetMode(gin.TestMode)
	srv := httptest.NewServer(mockapi.New().Engine())
	t.Cleanup(srv.Close)

	client := api.New(srv.URL + "/api")
	resp, err := client.Login(context.Background(), "rajesh.dosa@gmail.com", mockapi.DemoPassword)
	require.NoError(t, err)
	client.SetToken(resp.AccessToken)
	return client
}

func TestCheckoutClearsCart(t *testing.T) {
	client := newVendorClient(t)
	ctx := context.Background()

	products, err := client.Products(ctx, "grains", "")
	require.NoError(t, err)
	require.NotEmpty(t, products)

	m := New(client)
	p := products[0]
	require.NoError(t, m.AddItem(&p, p.MinOrderQty))
	want := m.Total()

	order, err := m.Checkout(ctx, "Delhi, Delhi")
	require.NoError(t, err)
	assert.Zero(t, m.Len())
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, want, order.TotalAmount)
	require.Len(t, order.Items, 1)
	assert.Equal(t, p.ID, order.Items[0].ProductID)

	orders, err := client.Orders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, order.ID, orders[0].ID)
}

func TestCheckoutFailureLeavesCartUntouched(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"detail": "order creation failed"}`))
	}))
	defer srv.Close()

	m := New(api.New(srv.URL))
	p := testProduct()
	require.NoError(t, m.AddItem(p, 2))
	before := m.Lines()

	_, err := m.Checkout(context.Background(), "Delhi, Delhi")
	require.Error(t, err)
	assert.Equal(t, "order creation failed", api.ErrorMessage(err, "fallback"))
	assert.Equal(t, before, m.Lines())
}

func TestCheckoutEmptyCart(t *testing.T) {
	m := New(nil)
	_, err := m.Checkout(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyCart)
}

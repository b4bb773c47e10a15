package shell

import (
	"bytes"
	"context"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streetbazaar/storefront/internal/mockapi"
	"github.com/streetbazaar/storefront/internal/session"
	"github.com/streetbazaar/storefront/pkg/api"
	"github.com/streetbazaar/storefront/pkg/models"
)

// runScript feeds the shell a fixed command script against a fresh seeded
// backend and returns everything it printed.
func runScript(t *testing.T, baseURL, script string) string {
	t.Helper()

	client := api.New(baseURL)
	tokens := session.NewFileTokenStore(filepath.Join(t.TempDir(), "token"))
	sess := session.New(client, tokens)

	var out bytes.Buffer
	sh := New(client, sess, strings.NewReader(script), &out)
	require.NoError(t, sh.Run(context.Background()))
	return out.String()
}

func newServer(t *testing.T) string {
	t.Helper()
	gin.SetMode(gin.TestMode)
	srv := httptest.NewServer(mockapi.New().Engine())
	t.Cleanup(srv.Close)
	return srv.URL + "/api"
}

func TestVendorPlacesOrder(t *testing.T) {
	script := strings.Join([]string{
		"login rajesh.dosa@gmail.com demo123",
		"search rice",
		"add 1 10",
		"cart",
		"checkout",
		"quit",
	}, "\n") + "\n"

	out := runScript(t, newServer(t), script)

	assert.Contains(t, out, "Welcome, Rajesh Kumar (vendor)")
	assert.Contains(t, out, "Premium Basmati Rice")
	assert.Contains(t, out, "Cart total: 450.00")
	assert.Contains(t, out, "Order placed: ORD")
}

func TestVendorQuantityRejected(t *testing.T) {
	// Basmati rice is seeded with an order range of 10-100
	script := strings.Join([]string{
		"login rajesh.dosa@gmail.com demo123",
		"search rice",
		"add 1 5",
		"cart",
		"quit",
	}, "\n") + "\n"

	out := runScript(t, newServer(t), script)

	assert.Contains(t, out, "outside the order range 10-100")
	assert.Contains(t, out, "Your cart is empty.")
}

func TestLoginFailureStaysInteractive(t *testing.T) {
	script := strings.Join([]string{
		"login rajesh.dosa@gmail.com wrongpass",
		"login rajesh.dosa@gmail.com demo123",
		"quit",
	}, "\n") + "\n"

	out := runScript(t, newServer(t), script)

	assert.Contains(t, out, "Invalid credentials")
	assert.Contains(t, out, "Welcome, Rajesh Kumar (vendor)")
}

func TestSupplierManagesOrders(t *testing.T) {
	baseURL := newServer(t)
	ctx := context.Background()

	// Seed one pending order against Delhi Agro Supplies
	vendor := api.New(baseURL)
	resp, err := vendor.Login(ctx, "rajesh.dosa@gmail.com", mockapi.DemoPassword)
	require.NoError(t, err)
	vendor.SetToken(resp.AccessToken)

	products, err := vendor.Products(ctx, "spices", "turmeric")
	require.NoError(t, err)
	require.Len(t, products, 1)
	_, err = vendor.CreateOrder(ctx, models.CreateOrderRequest{
		Items:           []models.CartLine{models.NewCartLine(&products[0], 2)},
		DeliveryAddress: "Delhi, Delhi",
	})
	require.NoError(t, err)

	script := strings.Join([]string{
		"login delhi.agro@gmail.com demo123",
		"tab orders",
		"confirm 1",
		"quit",
	}, "\n") + "\n"

	out := runScript(t, baseURL, script)

	assert.Contains(t, out, "Welcome, Amit Gupta (supplier)")
	assert.Contains(t, out, "pending")
	assert.Contains(t, out, "confirmed")
}

func TestSupplierHasNoCart(t *testing.T) {
	script := strings.Join([]string{
		"login delhi.agro@gmail.com demo123",
		"cart",
		"quit",
	}, "\n") + "\n"

	out := runScript(t, newServer(t), script)
	assert.Contains(t, out, "only vendors can use the cart")
}

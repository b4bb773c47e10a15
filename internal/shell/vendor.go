package shell

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/streetbazaar/storefront/internal/cart"
	"github.com/streetbazaar/storefront/pkg/global"
)

// requireCart gates vendor-only commands
func (s *Shell) requireCart() bool {
	if s.cart == nil {
		fmt.Fprintln(s.out, "only vendors can use the cart")
		return false
	}
	return true
}

func (s *Shell) cmdAdd(args []string) {
	if !s.requireCart() {
		return
	}
	if len(args) != 2 {
		fmt.Fprintln(s.out, "usage: add <product#> <qty>")
		return
	}

	products := s.catalog.Products()
	i, ok := s.parseIndex(args[0], len(products))
	if !ok {
		return
	}
	qty, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Fprintf(s.out, "invalid quantity %q\n", args[1])
		return
	}

	product := products[i]
	if err := s.cart.AddItem(&product, qty); err != nil {
		fmt.Fprintln(s.out, err)
		return
	}
	fmt.Fprintf(s.out, "Added %d %s of %s (%d items in cart)\n",
		qty, product.Unit, product.Name, s.cart.ItemCount())
}

func (s *Shell) cmdQty(args []string) {
	if !s.requireCart() {
		return
	}
	if len(args) != 2 {
		fmt.Fprintln(s.out, "usage: qty <line#> <qty>")
		return
	}

	lines := s.cart.Lines()
	i, ok := s.parseIndex(args[0], len(lines))
	if !ok {
		return
	}
	qty, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Fprintf(s.out, "invalid quantity %q\n", args[1])
		return
	}

	if err := s.cart.UpdateQuantity(lines[i].ProductID, qty); err != nil {
		fmt.Fprintln(s.out, err)
		return
	}
	s.renderCart()
}

func (s *Shell) cmdRemove(args []string) {
	if !s.requireCart() {
		return
	}
	if len(args) != 1 {
		fmt.Fprintln(s.out, "usage: rm <line#>")
		return
	}

	lines := s.cart.Lines()
	i, ok := s.parseIndex(args[0], len(lines))
	if !ok {
		return
	}
	s.cart.RemoveItem(lines[i].ProductID)
	s.renderCart()
}

// cmdCheckout submits the cart. The delivery address defaults to the
// vendor's own city and state, as the original storefront did.
func (s *Shell) cmdCheckout(args []string) {
	if !s.requireCart() {
		return
	}

	address := strings.Join(args, " ")
	if address == "" {
		address = s.session.User().Location()
	}

	ctx, cancel := global.GetDefaultTimer()
	defer cancel()

	order, err := s.cart.Checkout(ctx, address)
	if errors.Is(err, cart.ErrEmptyCart) {
		fmt.Fprintln(s.out, err)
		return
	}
	if err != nil {
		s.errorf(err, "Checkout failed")
		return
	}

	fmt.Fprintf(s.out, "Order placed: %s (total %.2f)\n", order.OrderNumber, order.TotalAmount)
	s.refreshOrders()
	s.tab = tabOrders
	s.renderOrders()
}

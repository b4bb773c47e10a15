package shell

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/streetbazaar/storefront/internal/orders"
	"github.com/streetbazaar/storefront/pkg/global"
	"github.com/streetbazaar/storefront/pkg/models"
)

func (s *Shell) requireSupplier() bool {
	if !s.session.User().IsSupplier() {
		fmt.Fprintln(s.out, "only suppliers can manage orders and products")
		return false
	}
	return true
}

// cmdTransition confirms or cancels a pending order by display index
func (s *Shell) cmdTransition(args []string, action string) {
	if !s.requireSupplier() {
		return
	}
	if len(args) != 1 {
		fmt.Fprintf(s.out, "usage: %s <order#>\n", action)
		return
	}

	list := s.orders.Orders()
	i, ok := s.parseIndex(args[0], len(list))
	if !ok {
		return
	}

	ctx, cancel := global.GetDefaultTimer()
	defer cancel()

	var err error
	if action == "confirm" {
		err = s.orders.Confirm(ctx, list[i].ID)
	} else {
		err = s.orders.Cancel(ctx, list[i].ID)
	}
	if errors.Is(err, orders.ErrNotPending) || errors.Is(err, orders.ErrUnknownOrder) {
		fmt.Fprintln(s.out, err)
		return
	}
	if err != nil {
		s.errorf(err, defaultErrMsg)
		return
	}
	s.renderOrders()
}

// cmdAddProduct walks the new-listing form one field at a time
func (s *Shell) cmdAddProduct() {
	if !s.requireSupplier() {
		return
	}

	var req models.CreateProductRequest
	text := []struct {
		label string
		dest  *string
	}{
		{"Name: ", &req.Name},
		{"Category: ", &req.Category},
		{"Description: ", &req.Description},
		{"Unit (kg/liter/...): ", &req.Unit},
	}
	for _, p := range text {
		value, ok := s.readLine(p.label)
		if !ok {
			return
		}
		*p.dest = value
	}

	numbers := []struct {
		label string
		dest  *int
	}{
		{"Stock: ", &req.Stock},
		{"Min order qty: ", &req.MinOrderQty},
		{"Max order qty: ", &req.MaxOrderQty},
	}
	for _, p := range numbers {
		value, ok := s.readLine(p.label)
		if !ok {
			return
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			fmt.Fprintf(s.out, "invalid number %q\n", value)
			return
		}
		*p.dest = n
	}

	priceText, ok := s.readLine("Price per unit: ")
	if !ok {
		return
	}
	price, err := strconv.ParseFloat(priceText, 64)
	if err != nil {
		fmt.Fprintf(s.out, "invalid price %q\n", priceText)
		return
	}
	req.Price = price

	ctx, cancel := global.GetDefaultTimer()
	defer cancel()

	product, err := s.api.CreateProduct(ctx, req)
	if err != nil {
		s.errorf(err, defaultErrMsg)
		return
	}
	fmt.Fprintf(s.out, "Listed %s at %.2f per %s\n", product.Name, product.Price, product.Unit)
}

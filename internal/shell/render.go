package shell

import (
	"fmt"
	"text/tabwriter"
)

func (s *Shell) renderProducts() {
	products := s.catalog.Products()
	if len(products) == 0 {
		fmt.Fprintln(s.out, "No products found.")
		return
	}

	w := tabwriter.NewWriter(s.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tNAME\tCATEGORY\tPRICE\tSTOCK\tORDER RANGE\tSUPPLIER")
	for i, p := range products {
		fmt.Fprintf(w, "%d\t%s\t%s\t%.2f/%s\t%d\t%d-%d\t%s\n",
			i+1, p.Name, p.Category, p.Price, p.Unit, p.Stock,
			p.MinOrderQty, p.MaxOrderQty, p.SupplierName)
	}
	w.Flush()
}

func (s *Shell) renderCart() {
	if !s.requireCart() {
		return
	}

	lines := s.cart.Lines()
	if len(lines) == 0 {
		fmt.Fprintln(s.out, "Your cart is empty.")
		return
	}

	w := tabwriter.NewWriter(s.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tPRODUCT\tQTY\tUNIT PRICE\tTOTAL")
	for i, l := range lines {
		fmt.Fprintf(w, "%d\t%s\t%d\t%.2f\t%.2f\n",
			i+1, l.ProductName, l.Quantity, l.UnitPrice, l.TotalPrice)
	}
	w.Flush()
	fmt.Fprintf(s.out, "Cart total: %.2f\n", s.cart.Total())
}

func (s *Shell) renderOrders() {
	list := s.orders.Orders()
	if len(list) == 0 {
		fmt.Fprintln(s.out, "No orders found.")
		return
	}

	supplier := s.session.User().IsSupplier()
	w := tabwriter.NewWriter(s.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tORDER\tSTATUS\tITEMS\tTOTAL\tPLACED")
	for i, o := range list {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%.2f\t%s\n",
			i+1, o.OrderNumber, o.Status, o.ItemCount(), o.TotalAmount,
			o.CreatedAt.Format("2006-01-02"))
	}
	w.Flush()

	if supplier {
		for _, o := range list {
			if o.IsPending() {
				fmt.Fprintln(s.out, "Pending orders can be confirmed or cancelled.")
				break
			}
		}
	}
}

package models

// CartLine is one product entry within a vendor's cart. It doubles as the
// wire shape of an order item, so price and supplier fields are snapshots
// taken when the line was added.
type CartLine struct {
	ProductID    string  `json:"productId"`
	ProductName  string  `json:"productName"`
	Quantity     int     `json:"quantity"`
	UnitPrice    float64 `json:"unitPrice"`
	TotalPrice   float64 `json:"totalPrice"`
	SupplierID   string  `json:"supplierId"`
	SupplierName string  `json:"supplierName"`
}

// Recalculate keeps TotalPrice a pure function of quantity and unit price
func (l *CartLine) Recalculate() {
	l.TotalPrice = float64(l.Quantity) * l.UnitPrice
}

// NewCartLine snapshots a product into a cart line with the given quantity
func NewCartLine(p *Product, quantity int) CartLine {
	line := CartLine{
		ProductID:    p.ID,
		ProductName:  p.Name,
		Quantity:     quantity,
		UnitPrice:    p.Price,
		SupplierID:   p.SupplierID,
		SupplierName: p.SupplierName,
	}
	line.Recalculate()
	return line
}

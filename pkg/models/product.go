package models

import "time"

// Product represents a supplier listing in the catalog. The client treats
// products as read-only: they are fetched fresh per query and never mutated.
type Product struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	Unit         string    `json:"unit"`
	Stock        int       `json:"stock"`
	MinOrderQty  int       `json:"minOrderQty"`
	MaxOrderQty  int       `json:"maxOrderQty"`
	SupplierID   string    `json:"supplierId"`
	SupplierName string    `json:"supplierName"`
	IsAvailable  bool      `json:"isAvailable"`
	CreatedAt    time.Time `json:"createdAt"`
}

// InStock reports whether the product can currently be ordered
func (p *Product) InStock() bool {
	return p.IsAvailable && p.Stock > 0
}

// ValidQuantity reports whether qty falls within the product's order range
func (p *Product) ValidQuantity(qty int) bool {
	return qty >= p.MinOrderQty && qty <= p.MaxOrderQty
}

type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Unit        string  `json:"unit" binding:"required"`
	Stock       int     `json:"stock" binding:"gte=0"`
	MinOrderQty int     `json:"minOrderQty"`
	MaxOrderQty int     `json:"maxOrderQty"`
}

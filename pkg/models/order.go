package models

import "time"

// Order statuses. The server owns the status value; the client only requests
// transitions and re-reads.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// Order represents a placed order. Read-only on the client after creation.
type Order struct {
	ID              string     `json:"id"`
	OrderNumber     string     `json:"orderNumber"`
	VendorID        string     `json:"vendorId"`
	VendorName      string     `json:"vendorName"`
	SupplierID      string     `json:"supplierId"`
	SupplierName    string     `json:"supplierName"`
	Items           []CartLine `json:"items"`
	TotalAmount     float64    `json:"totalAmount"`
	Status          string     `json:"status"`
	DeliveryAddress string     `json:"deliveryAddress"`
	CreatedAt       time.Time  `json:"createdAt"`
}

type CreateOrderRequest struct {
	Items           []CartLine `json:"items" binding:"required,min=1"`
	DeliveryAddress string     `json:"deliveryAddress"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// IsPending reports whether the order still accepts a status transition
func (o *Order) IsPending() bool {
	return o.Status == OrderStatusPending
}

// CanConfirm reports whether a confirm action should be offered
func (o *Order) CanConfirm() bool {
	return o.IsPending()
}

// CanCancel reports whether a cancel action should be offered
func (o *Order) CanCancel() bool {
	return o.IsPending()
}

// ItemCount returns the total number of units across all lines
func (o *Order) ItemCount() int {
	var count int
	for _, item := range o.Items {
		count += item.Quantity
	}
	return count
}

// CalculateTotal recomputes TotalAmount from the line totals
func (o *Order) CalculateTotal() {
	var total float64
	for _, item := range o.Items {
		total += item.TotalPrice
	}
	o.TotalAmount = total
}

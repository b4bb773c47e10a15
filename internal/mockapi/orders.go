package mockapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/streetbazaar/storefront/pkg/models"
)

var validStatuses = map[string]bool{
	models.OrderStatusPending:   true,
	models.OrderStatusConfirmed: true,
	models.OrderStatusDelivered: true,
	models.OrderStatusCancelled: true,
}

func (s *Server) createOrder(c *gin.Context) {
	user := currentUser(c)
	if !user.IsVendor() {
		c.JSON(http.StatusForbidden, gin.H{"detail": "Only vendors can create orders"})
		return
	}

	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	now := time.Now().UTC()
	order := &models.Order{
		ID:              uuid.NewString(),
		OrderNumber:     fmt.Sprintf("ORD%s", now.Format("20060102150405")),
		VendorID:        user.ID,
		VendorName:      user.BusinessName,
		SupplierID:      req.Items[0].SupplierID,
		SupplierName:    req.Items[0].SupplierName,
		Items:           req.Items,
		Status:          models.OrderStatusPending,
		DeliveryAddress: req.DeliveryAddress,
		CreatedAt:       now,
	}
	order.CalculateTotal()

	s.mu.Lock()
	s.orders = append(s.orders, order)
	s.mu.Unlock()

	c.JSON(http.StatusOK, order)
}

func (s *Server) listOrders(c *gin.Context) {
	user := currentUser(c)

	s.mu.Lock()
	defer s.mu.Unlock()

	results := make([]*models.Order, 0, len(s.orders))
	for _, o := range s.orders {
		if user.IsVendor() && o.VendorID == user.ID {
			results = append(results, o)
		}
		if user.IsSupplier() && o.SupplierID == user.ID {
			results = append(results, o)
		}
	}

	c.JSON(http.StatusOK, results)
}

func (s *Server) updateOrderStatus(c *gin.Context) {
	user := currentUser(c)
	if !user.IsSupplier() {
		c.JSON(http.StatusForbidden, gin.H{"detail": "Only suppliers can update order status"})
		return
	}

	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	if !validStatuses[req.Status] {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid status"})
		return
	}

	orderID := c.Param("id")

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range s.orders {
		if o.ID == orderID && o.SupplierID == user.ID {
			o.Status = req.Status
			c.JSON(http.StatusOK, o)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"detail": "Order not found"})
}

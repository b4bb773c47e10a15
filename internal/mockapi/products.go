package mockapi

import (
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/streetbazaar/storefront/pkg/models"
)

func (s *Server) listProducts(c *gin.Context) {
	category := c.Query("category")
	search := strings.ToLower(c.Query("search"))

	s.mu.Lock()
	defer s.mu.Unlock()

	results := make([]*models.Product, 0, len(s.products))
	for _, p := range s.products {
		if !p.IsAvailable {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		results = append(results, p)
	}

	c.JSON(http.StatusOK, results)
}

func (s *Server) listCategories(c *gin.Context) {
	s.mu.Lock()
	seen := make(map[string]bool)
	var categories []string
	for _, p := range s.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	s.mu.Unlock()

	sort.Strings(categories)
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (s *Server) getProduct(c *gin.Context) {
	id := c.Param("id")

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.products {
		if p.ID == id {
			c.JSON(http.StatusOK, p)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"detail": "Product not found"})
}

func (s *Server) createProduct(c *gin.Context) {
	user := currentUser(c)
	if !user.IsSupplier() {
		c.JSON(http.StatusForbidden, gin.H{"detail": "Only suppliers can create products"})
		return
	}

	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	if req.MinOrderQty <= 0 {
		req.MinOrderQty = 1
	}
	if req.MaxOrderQty <= 0 {
		req.MaxOrderQty = 1000
	}

	product := &models.Product{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Category:     req.Category,
		Description:  req.Description,
		Price:        req.Price,
		Unit:         req.Unit,
		Stock:        req.Stock,
		MinOrderQty:  req.MinOrderQty,
		MaxOrderQty:  req.MaxOrderQty,
		SupplierID:   user.ID,
		SupplierName: user.BusinessName,
		IsAvailable:  true,
		CreatedAt:    time.Now().UTC(),
	}

	s.mu.Lock()
	s.products = append(s.products, product)
	s.mu.Unlock()

	c.JSON(http.StatusOK, product)
}

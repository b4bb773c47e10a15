package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/streetbazaar/storefront/pkg/models"
)

// Products lists available products, optionally filtered by category and a
// free-text search over name and description. Empty strings mean no filter.
func (c *Client) Products(ctx context.Context, category, search string) ([]models.Product, error) {
	query := url.Values{}
	if category != "" {
		query.Set("category", category)
	}
	if search != "" {
		query.Set("search", search)
	}

	var products []models.Product
	if err := c.do(ctx, http.MethodGet, "/products", query, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Categories returns the distinct product categories
func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var resp struct {
		Categories []string `json:"categories"`
	}
	if err := c.do(ctx, http.MethodGet, "/products/categories", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Categories, nil
}

// Product fetches a single product by id
func (c *Client) Product(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := c.do(ctx, http.MethodGet, "/products/"+id, nil, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// CreateProduct lists a new product under the authenticated supplier
func (c *Client) CreateProduct(ctx context.Context, req models.CreateProductRequest) (*models.Product, error) {
	var product models.Product
	if err := c.do(ctx, http.MethodPost, "/products", nil, req, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Package catalog translates a (search, category) pair into a product list.
// It is a query cache of size one: only the latest issued query's result is
// kept, and responses to superseded queries are discarded rather than allowed
// to overwrite newer results.
package catalog

import (
	"context"
	"errors"
	"sync"

	"github.com/streetbazaar/storefront/pkg/api"
	"github.com/streetbazaar/storefront/pkg/models"
)

// ErrSuperseded means a newer query was issued while this one was in flight.
// The caller should drop the result; the catalog state was not touched.
var ErrSuperseded = errors.New("catalog query superseded by a newer one")

type Catalog struct {
	api *api.Client

	mu         sync.Mutex
	seq        uint64
	search     string
	category   string
	products   []models.Product
	categories []string
}

func New(client *api.Client) *Catalog {
	return &Catalog{api: client}
}

// Search issues a query for the given filters and commits the result only if
// no newer query was issued in the meantime. Each call gets the next sequence
// number; at commit time the response must still hold the latest one.
func (c *Catalog) Search(ctx context.Context, search, category string) ([]models.Product, error) {
	c.mu.Lock()
	c.seq++
	seq := c.seq
	c.search = search
	c.category = category
	c.mu.Unlock()

	products, err := c.api.Products(ctx, category, search)

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.seq {
		return nil, ErrSuperseded
	}
	if err != nil {
		return nil, err
	}
	c.products = products
	return products, nil
}

// Products returns the last committed result
func (c *Catalog) Products() []models.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Query returns the filters of the latest issued query
func (c *Catalog) Query() (search, category string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.search, c.category
}

// LoadCategories fetches and caches the category list
func (c *Catalog) LoadCategories(ctx context.Context) ([]string, error) {
	categories, err := c.api.Categories(ctx)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.categories = categories
	c.mu.Unlock()
	return categories, nil
}

// Categories returns the last loaded category list
func (c *Catalog) Categories() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.categories))
	copy(out, c.categories)
	return out
}

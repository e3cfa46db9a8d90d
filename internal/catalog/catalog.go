// Package catalog serves the static product records. The data ships embedded
// in the binary and is read-only; carts and wishlists reference it by
// product id and snapshot the fields they need.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/dmitrijs2005/shopkeeper/internal/common"
	"github.com/dmitrijs2005/shopkeeper/internal/models"
)

//go:embed products.json
var productsJSON []byte

type Catalog struct {
	products []models.Product
	byID     map[int64]models.Product
}

// Load parses the embedded product data.
func Load() (*Catalog, error) {
	var products []models.Product
	if err := json.Unmarshal(productsJSON, &products); err != nil {
		return nil, fmt.Errorf("failed to parse embedded catalog: %w", err)
	}

	byID := make(map[int64]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &Catalog{products: products, byID: byID}, nil
}

// All returns every product in catalog order.
func (c *Catalog) All() []models.Product {
	return c.products
}

// ByID looks a product up by id, returning ErrProductNotFound for unknown ids.
func (c *Catalog) ByID(id int64) (models.Product, error) {
	p, ok := c.byID[id]
	if !ok {
		return models.Product{}, common.ErrProductNotFound
	}
	return p, nil
}

// Categories returns the distinct product categories, sorted.
func (c *Catalog) Categories() []string {
	seen := make(map[string]struct{})
	var categories []string
	for _, p := range c.products {
		if _, ok := seen[p.Category]; !ok {
			seen[p.Category] = struct{}{}
			categories = append(categories, p.Category)
		}
	}
	sort.Strings(categories)
	return categories
}

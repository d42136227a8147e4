// Package memory provides map-backed implementations of the storefront
// collaborators. The demo binary and the agent tools run on them.
package memory

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/storefront-seo/microdata/internal/microdata/model"
)

// ErrNotFound is returned for unknown ids and codes.
var ErrNotFound = errors.New("not found")

// Catalog stores products, their category assignment and variants.
type Catalog struct {
	products   map[string]model.Product
	categories map[string]model.Category
	// category id -> product ids in listing order
	listings map[string][]string
	// parent id -> variant ids
	variants map[string][]string
}

func NewCatalog() *Catalog {
	return &Catalog{
		products:   make(map[string]model.Product),
		categories: make(map[string]model.Category),
		listings:   make(map[string][]string),
		variants:   make(map[string][]string),
	}
}

// AddCategory registers a category.
func (c *Catalog) AddCategory(category model.Category) {
	c.categories[category.ID] = category
}

// AddProduct registers a product and appends it to the given categories.
func (c *Catalog) AddProduct(product model.Product, categoryIDs ...string) {
	c.products[product.ID] = product
	for _, id := range categoryIDs {
		c.listings[id] = append(c.listings[id], product.ID)
	}
}

// AddVariants registers child products of a configurable parent.
func (c *Catalog) AddVariants(parentID string, children ...model.Product) {
	for _, child := range children {
		c.products[child.ID] = child
		c.variants[parentID] = append(c.variants[parentID], child.ID)
	}
}

// Category returns a registered category.
func (c *Catalog) Category(id string) (*model.Category, bool) {
	category, ok := c.categories[id]
	if !ok {
		return nil, false
	}
	return &category, true
}

// Product returns a registered product.
func (c *Catalog) Product(id string) (*model.Product, bool) {
	product, ok := c.products[id]
	if !ok {
		return nil, false
	}
	return &product, true
}

// ProductIDs returns all product ids, sorted.
func (c *Catalog) ProductIDs() []string {
	ids := make([]string, 0, len(c.products))
	for id := range c.products {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (c *Catalog) ProductsByCategory(ctx context.Context, categoryID string, page, pageSize int) ([]model.Product, error) {
	if _, ok := c.categories[categoryID]; !ok {
		return nil, fmt.Errorf("category %s: %w", categoryID, ErrNotFound)
	}
	if page < 1 {
		page = 1
	}
	ids := c.listings[categoryID]
	start := (page - 1) * pageSize
	if pageSize <= 0 || start >= len(ids) {
		return []model.Product{}, nil
	}
	end := min(start+pageSize, len(ids))

	out := make([]model.Product, 0, end-start)
	for _, id := range ids[start:end] {
		out = append(out, c.products[id])
	}
	return out, nil
}

func (c *Catalog) Variants(ctx context.Context, productID string) ([]model.Product, error) {
	if _, ok := c.products[productID]; !ok {
		return nil, fmt.Errorf("product %s: %w", productID, ErrNotFound)
	}
	ids := c.variants[productID]
	out := make([]model.Product, 0, len(ids))
	for _, id := range ids {
		out = append(out, c.products[id])
	}
	return out, nil
}

var _ model.ProductCatalog = (*Catalog)(nil)

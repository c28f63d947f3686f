package catalog

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jayramanidev/portfolio/internal/model"
)

// Catalog is the immutable set of products available on the storefront.
// It is built once at startup and never mutated afterwards, so reads need
// no locking.
type Catalog struct {
	byID    map[int]model.Product
	ordered []model.Product
}

// New builds a catalogue from a slice of products. Entries with a
// non-positive ID or a negative price are rejected; a duplicate ID is an
// error because cart entries key on it.
func New(products []model.Product) (*Catalog, error) {
	c := &Catalog{
		byID:    make(map[int]model.Product, len(products)),
		ordered: make([]model.Product, 0, len(products)),
	}

	for _, p := range products {
		if p.ID <= 0 {
			return nil, fmt.Errorf("invalid product id: %d", p.ID)
		}
		if p.Price < 0 {
			return nil, fmt.Errorf("product %d has negative price: %v", p.ID, p.Price)
		}
		if p.Stock < 0 {
			return nil, fmt.Errorf("product %d has negative stock: %d", p.ID, p.Stock)
		}
		if _, exists := c.byID[p.ID]; exists {
			return nil, fmt.Errorf("duplicate product id: %d", p.ID)
		}
		c.byID[p.ID] = p
		c.ordered = append(c.ordered, p)
	}

	return c, nil
}

// Parse decodes a JSON array of products.
func Parse(r io.Reader) ([]model.Product, error) {
	var products []model.Product
	if err := json.NewDecoder(r).Decode(&products); err != nil {
		return nil, fmt.Errorf("failed to decode catalogue JSON: %w", err)
	}
	return products, nil
}

// ByID returns the product with the given ID, or false if it is unknown.
func (c *Catalog) ByID(id int) (model.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// All returns the products in catalogue order. The returned slice is a copy.
func (c *Catalog) All() []model.Product {
	out := make([]model.Product, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// Len returns the number of products in the catalogue.
func (c *Catalog) Len() int {
	return len(c.ordered)
}

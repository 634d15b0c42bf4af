package catalog

import (
	"fmt"

	"github.com/NTGTECH2025/NTG-TECH-VENDAS/internal/models"
)

// Catalog is an immutable, ordered set of products keyed by display name.
// It is safe for concurrent use once built.
type Catalog struct {
	products []models.Product
	byName   map[string]int
}

// New validates the products and builds a catalog preserving their order.
// Duplicate names are rejected.
func New(products []models.Product) (*Catalog, error) {
	c := &Catalog{
		products: make([]models.Product, 0, len(products)),
		byName:   make(map[string]int, len(products)),
	}
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, exists := c.byName[p.Name]; exists {
			return nil, fmt.Errorf("duplicate product %q", p.Name)
		}
		c.byName[p.Name] = len(c.products)
		c.products = append(c.products, p)
	}
	return c, nil
}

// Get resolves a product key.
func (c *Catalog) Get(name string) (models.Product, bool) {
	i, ok := c.byName[name]
	if !ok {
		return models.Product{}, false
	}
	return c.products[i], true
}

// List returns a copy of all products in catalog order.
func (c *Catalog) List() []models.Product {
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) Len() int {
	return len(c.products)
}

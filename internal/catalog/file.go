package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/NTGTECH2025/NTG-TECH-VENDAS/internal/models"
	"github.com/pelletier/go-toml/v2"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type tomlFile struct {
	Products []tomlProduct `toml:"products"`
}

type tomlProduct struct {
	Name  string `toml:"name"`
	Price any    `toml:"price"`
	Link  string `toml:"link"`
}

// Load builds a catalog from a file. ".toml" files use [[products]] tables,
// anything else is read as the JSON array served by GET /products.
// An empty path yields the default catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading catalog file %s: %w", path, err)
	}

	var products []models.Product
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		products, err = parseTOML(data)
	} else {
		err = json.Unmarshal(data, &products)
	}
	if err != nil {
		return nil, fmt.Errorf("error parsing catalog file %s: %w", path, err)
	}

	c, err := New(products)
	if err != nil {
		return nil, err
	}
	logrus.Infof("Loaded %d products from %s", c.Len(), path)
	return c, nil
}

func parseTOML(data []byte) ([]models.Product, error) {
	var file tomlFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	products := make([]models.Product, 0, len(file.Products))
	for _, p := range file.Products {
		price, err := toDecimal(p.Price)
		if err != nil {
			return nil, fmt.Errorf("invalid price for product %q: %w", p.Name, err)
		}
		products = append(products, models.Product{Name: p.Name, Price: price, Link: p.Link})
	}
	return products, nil
}

func toDecimal(v any) (decimal.Decimal, error) {
	switch n := v.(type) {
	case string:
		return decimal.NewFromString(n)
	case float64:
		return decimal.NewFromFloat(n), nil
	case int64:
		return decimal.NewFromInt(n), nil
	default:
		return decimal.Zero, fmt.Errorf("unsupported price value %v", v)
	}
}

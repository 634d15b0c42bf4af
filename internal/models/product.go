package models

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry. Name is the catalog key and is matched exactly.
type Product struct {
	Name  string
	Price decimal.Decimal
	Link  string
}

type productJSON struct {
	Name  string      `json:"name"`
	Price json.Number `json:"price"`
	Link  string      `json:"link"`
}

// MarshalJSON renders the price as a plain number with two decimals.
func (p Product) MarshalJSON() ([]byte, error) {
	return json.Marshal(productJSON{
		Name:  p.Name,
		Price: json.Number(p.Price.StringFixed(2)),
		Link:  p.Link,
	})
}

func (p *Product) UnmarshalJSON(data []byte) error {
	var raw productJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	price, err := decimal.NewFromString(raw.Price.String())
	if err != nil {
		return fmt.Errorf("invalid price for product %q: %w", raw.Name, err)
	}
	p.Name = raw.Name
	p.Price = price
	p.Link = raw.Link
	return nil
}

func (p *Product) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("product name is required")
	}
	if !p.Price.IsPositive() {
		return fmt.Errorf("price must be greater than zero for product %q", p.Name)
	}
	if p.Link == "" {
		return fmt.Errorf("delivery link is required for product %q", p.Name)
	}
	return nil
}

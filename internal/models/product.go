package models

import (
	"strings"
	"time"
)

const UncategorizedCategory = "Uncategorized"

// Product is a sellable item. SellingPrice and MarketPrice are nil when unset;
// a nil selling price is derived from CostPrice and the active PricingConfig.
type Product struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	CostPrice    float64   `json:"costPrice"`
	SellingPrice *float64  `json:"sellingPrice,omitempty"`
	MarketPrice  *float64  `json:"marketPrice,omitempty"`
	Quantity     int       `json:"quantity"`
	IsActive     bool      `json:"isActive"`
	Description  *string   `json:"description,omitempty"`
	SKU          *string   `json:"sku,omitempty"`
	Supplier     *string   `json:"supplier,omitempty"`
	LastUpdated  time.Time `json:"lastUpdated"`
}

// ManualSellingPrice returns the stored selling price, or 0 when none is set.
func (p Product) ManualSellingPrice() float64 {
	if p.SellingPrice == nil {
		return 0
	}
	return *p.SellingPrice
}

// MarketPriceValue returns the stored market price, or 0 when none is set.
func (p Product) MarketPriceValue() float64 {
	if p.MarketPrice == nil {
		return 0
	}
	return *p.MarketPrice
}

func (p Product) HasDescription() bool {
	return p.Description != nil && strings.TrimSpace(*p.Description) != ""
}

func (p Product) HasSKU() bool {
	return p.SKU != nil && strings.TrimSpace(*p.SKU) != ""
}

// IsUncategorized reports whether the product lacks a usable category.
func (p Product) IsUncategorized() bool {
	return strings.TrimSpace(p.Category) == "" || p.Category == UncategorizedCategory
}

// Clone returns a deep copy so bundle snapshots never share pointers with live products.
func (p Product) Clone() Product {
	c := p
	if p.SellingPrice != nil {
		v := *p.SellingPrice
		c.SellingPrice = &v
	}
	if p.MarketPrice != nil {
		v := *p.MarketPrice
		c.MarketPrice = &v
	}
	if p.Description != nil {
		v := *p.Description
		c.Description = &v
	}
	if p.SKU != nil {
		v := *p.SKU
		c.SKU = &v
	}
	if p.Supplier != nil {
		v := *p.Supplier
		c.Supplier = &v
	}
	return c
}

// CloneProducts copies a product collection element by element.
func CloneProducts(products []Product) []Product {
	out := make([]Product, len(products))
	for i, p := range products {
		out[i] = p.Clone()
	}
	return out
}

// ProductUpdate carries a partial edit; nil fields are left untouched.
type ProductUpdate struct {
	Name         *string  `json:"name,omitempty"`
	Category     *string  `json:"category,omitempty"`
	CostPrice    *float64 `json:"costPrice,omitempty"`
	SellingPrice *float64 `json:"sellingPrice,omitempty"`
	MarketPrice  *float64 `json:"marketPrice,omitempty"`
	Quantity     *int     `json:"quantity,omitempty"`
	IsActive     *bool    `json:"isActive,omitempty"`
	Description  *string  `json:"description,omitempty"`
	SKU          *string  `json:"sku,omitempty"`
	Supplier     *string  `json:"supplier,omitempty"`
	// ClearSellingPrice drops a manual override so the derived price applies again.
	ClearSellingPrice bool `json:"clearSellingPrice,omitempty"`
}

// ProductFilter narrows product listings.
type ProductFilter struct {
	Query    string `json:"query,omitempty"`    // Matches name, category or SKU
	Category string `json:"category,omitempty"` // Exact category, empty means all
}

func Float64Ptr(v float64) *float64 { return &v }

func StringPtr(v string) *string { return &v }

// ProductCreate is a manual product entry. A blank category is detected from
// the name; quantity defaults to 1 and new products start active.
type ProductCreate struct {
	Name         string   `json:"name"`
	Category     string   `json:"category,omitempty"`
	CostPrice    float64  `json:"costPrice"`
	SellingPrice *float64 `json:"sellingPrice,omitempty"`
	MarketPrice  *float64 `json:"marketPrice,omitempty"`
	Quantity     *int     `json:"quantity,omitempty"`
	IsActive     *bool    `json:"isActive,omitempty"`
	Description  *string  `json:"description,omitempty"`
	SKU          *string  `json:"sku,omitempty"`
	Supplier     *string  `json:"supplier,omitempty"`
}

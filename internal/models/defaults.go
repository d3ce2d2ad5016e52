package models

import (
	"fmt"
	"time"
)

// DefaultPricingConfig is used until a workspace saves its own configuration.
func DefaultPricingConfig() PricingConfig {
	return PricingConfig{
		ProfitMargin: 30,
		AdCost:       20,
		DeliveryCost: 400,
		TaxRate:      0,
		GatewayFee:   3.5,
		Currency:     "LKR",
	}
}

var seedProducts = []struct {
	name     string
	category string
}{
	{"Premium Smartphone", "Electronics"},
	{"Designer Dress", "Fashion"},
	{"Luxury Furniture Set", "Home & Garden"},
	{"Professional Fitness Equipment", "Sports"},
	{"Premium Skincare Kit", "Beauty"},
	{"Educational Book Series", "Books"},
	{"Smart Toy Collection", "Toys"},
	{"Kitchen Appliance Set", "Kitchen"},
}

// DefaultProducts returns the placeholder catalogue for a fresh workspace:
// eight active products with no prices yet.
func DefaultProducts(now time.Time) []Product {
	out := make([]Product, 0, len(seedProducts))
	for i, s := range seedProducts {
		out = append(out, Product{
			ID:          fmt.Sprintf("%d", i+1),
			Name:        s.name,
			Category:    s.category,
			CostPrice:   0,
			Quantity:    1,
			IsActive:    true,
			LastUpdated: now,
		})
	}
	return out
}

package pricing

import (
	"math"
	"strings"

	"trustcart/internal/models"
)

// ApplyDynamicPricing adjusts a selling price for season, demand and competition,
// then rounds to a whole currency unit.
func ApplyDynamicPricing(sellingPrice float64, f models.PricingFactors) float64 {
	adjusted := sellingPrice

	if f.Season == "holiday" {
		adjusted *= 1.1
	}
	switch f.Demand {
	case "high":
		adjusted *= 1.05
	case "low":
		adjusted *= 0.95
	}
	if f.Competition == "high" {
		adjusted *= 0.98
	}
	return math.Round(adjusted)
}

// VolumeDiscount returns the per-unit price for an order of quantity units.
func VolumeDiscount(quantity int, basePrice float64) float64 {
	switch {
	case quantity >= 10:
		return basePrice * 0.85
	case quantity >= 5:
		return basePrice * 0.9
	case quantity >= 3:
		return basePrice * 0.95
	default:
		return basePrice
	}
}

var loyaltyDiscounts = map[string]float64{
	"bronze":   0.05,
	"silver":   0.1,
	"gold":     0.15,
	"platinum": 0.2,
}

// LoyaltyDiscount applies the tier discount; unknown tiers get none.
func LoyaltyDiscount(tier string, basePrice float64) float64 {
	return basePrice * (1 - loyaltyDiscounts[strings.ToLower(tier)])
}

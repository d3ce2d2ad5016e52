package jobs

import (
	"time"

	"trustcart/internal/models"
	"trustcart/internal/pricing"
)

// RecalculateFormulas returns a new collection where every product with a cost
// but no selling price gets the derived price. Existing prices are kept, so
// running it twice changes nothing. With force set, every product with a cost
// is repriced and manual prices are overwritten.
func RecalculateFormulas(products []models.Product, cfg models.PricingConfig, now time.Time, force bool) []models.Product {
	out := make([]models.Product, len(products))
	for i, p := range products {
		out[i] = p.Clone()
		if p.CostPrice <= 0 {
			continue
		}
		if !force && p.ManualSellingPrice() > 0 {
			continue
		}
		out[i].SellingPrice = models.Float64Ptr(pricing.CalculatePrice(p.CostPrice, cfg).SellingPrice)
		out[i].LastUpdated = now
	}
	return out
}

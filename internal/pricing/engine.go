// Package pricing turns cost prices into selling prices and profit figures.
// Every function is pure: configuration and products are explicit inputs.
package pricing

import (
	"math"

	"trustcart/internal/models"
)

// CalculatePrice prices a single cost price. A zero cost yields a zero result.
// The selling price is rounded half away from zero; profit and margin are not rounded.
// Callers must validate cfg first: a gateway fee of 100% or more divides by zero.
func CalculatePrice(costPrice float64, cfg models.PricingConfig) models.PriceCalculation {
	if costPrice == 0 {
		return models.PriceCalculation{}
	}

	basePrice := costPrice + costPrice*cfg.ProfitMargin/100 + cfg.AdCost + cfg.DeliveryCost
	priceWithTax := basePrice + basePrice*cfg.TaxRate/100
	sellingPrice := math.Round(priceWithTax / (1 - cfg.GatewayFee/100))

	netProfit := NetProfit(sellingPrice, costPrice, cfg)
	return models.PriceCalculation{
		SellingPrice: sellingPrice,
		NetProfit:    netProfit,
		ProfitMargin: netProfit / sellingPrice * 100,
	}
}

// NetProfit is the per-unit profit left after costs, tax and gateway fee at
// the given selling price.
func NetProfit(sellingPrice, costPrice float64, cfg models.PricingConfig) float64 {
	return sellingPrice - costPrice - cfg.AdCost - cfg.DeliveryCost -
		sellingPrice*cfg.TaxRate/100 - sellingPrice*cfg.GatewayFee/100
}

// Margin returns net profit as a percentage of sellingPrice, 0 when the price is not positive.
func Margin(sellingPrice, costPrice float64, cfg models.PricingConfig) float64 {
	if sellingPrice <= 0 {
		return 0
	}
	return NetProfit(sellingPrice, costPrice, cfg) / sellingPrice * 100
}

// EffectiveSellingPrice returns the manual price when one is set, otherwise the derived price.
func EffectiveSellingPrice(p models.Product, cfg models.PricingConfig) float64 {
	if manual := p.ManualSellingPrice(); manual > 0 {
		return manual
	}
	return CalculatePrice(p.CostPrice, cfg).SellingPrice
}

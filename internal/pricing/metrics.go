package pricing

import (
	"sort"

	"trustcart/internal/models"
)

// CalculateMetrics aggregates dashboard figures over active products. Net profit
// is recomputed from the price actually in effect for each product.
func CalculateMetrics(products []models.Product, cfg models.PricingConfig) models.DashboardMetrics {
	var m models.DashboardMetrics
	for _, p := range products {
		if !p.IsActive {
			continue
		}
		sellingPrice := EffectiveSellingPrice(p, cfg)
		qty := float64(p.Quantity)

		m.TotalInvestment += p.CostPrice * qty
		m.TotalRevenue += sellingPrice * qty
		m.TotalProfit += NetProfit(sellingPrice, p.CostPrice, cfg) * qty
		m.ProductCount++
	}

	if m.TotalInvestment > 0 {
		m.ROI = m.TotalProfit / m.TotalInvestment * 100
	}
	if m.ProductCount > 0 {
		m.AvgProfit = m.TotalProfit / float64(m.ProductCount)
	}
	if m.TotalRevenue > 0 {
		m.ProfitMargin = m.TotalProfit / m.TotalRevenue * 100
	}
	return m
}

// CategoryBreakdown groups active products by category, ordered by total profit descending.
// Categories with equal profit keep first-seen order.
func CategoryBreakdown(products []models.Product, cfg models.PricingConfig) []models.CategoryStats {
	index := map[string]int{}
	var stats []models.CategoryStats
	var marginSums []float64

	for _, p := range products {
		if !p.IsActive {
			continue
		}
		i, ok := index[p.Category]
		if !ok {
			i = len(stats)
			index[p.Category] = i
			stats = append(stats, models.CategoryStats{Category: p.Category})
			marginSums = append(marginSums, 0)
		}

		sellingPrice := EffectiveSellingPrice(p, cfg)
		qty := float64(p.Quantity)
		stats[i].Count++
		stats[i].TotalInvestment += p.CostPrice * qty
		stats[i].TotalProfit += NetProfit(sellingPrice, p.CostPrice, cfg) * qty
		marginSums[i] += Margin(sellingPrice, p.CostPrice, cfg)
	}

	for i := range stats {
		stats[i].AvgProfitMargin = marginSums[i] / float64(stats[i].Count)
	}
	sort.SliceStable(stats, func(a, b int) bool {
		return stats[a].TotalProfit > stats[b].TotalProfit
	})
	return stats
}

// ProfitDistributionOf buckets active products by their effective net margin.
func ProfitDistributionOf(products []models.Product, cfg models.PricingConfig) models.ProfitDistribution {
	var d models.ProfitDistribution
	for _, p := range products {
		if !p.IsActive {
			continue
		}
		margin := Margin(EffectiveSellingPrice(p, cfg), p.CostPrice, cfg)
		switch {
		case margin >= 25:
			d.High++
		case margin >= 15:
			d.Good++
		case margin >= 5:
			d.Fair++
		default:
			d.Low++
		}
	}
	return d
}

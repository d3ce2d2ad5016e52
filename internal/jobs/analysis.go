package jobs

import (
	"fmt"
	"math"

	"trustcart/internal/models"
	"trustcart/internal/pricing"
)

const (
	lowPriceLimit    = 1000
	mediumPriceLimit = 10000
	highPriceLimit   = 50000
	highCostLimit    = 50000
)

// GenerateAnalysis summarises a product collection. An empty collection
// yields a zero report with a quality score of 0.
func GenerateAnalysis(products []models.Product, cfg models.PricingConfig) models.AnalysisReport {
	report := models.AnalysisReport{
		CategoryDistribution: []models.CategoryCount{},
		Recommendations:      []string{},
	}
	if len(products) == 0 {
		return report
	}

	index := map[string]int{}
	var totalMargin float64
	for _, p := range products {
		i, ok := index[p.Category]
		if !ok {
			i = len(report.CategoryDistribution)
			index[p.Category] = i
			report.CategoryDistribution = append(report.CategoryDistribution, models.CategoryCount{Category: p.Category})
		}
		report.CategoryDistribution[i].Count++

		sellingPrice := pricing.EffectiveSellingPrice(p, cfg)
		switch {
		case sellingPrice < lowPriceLimit:
			report.PriceRanges.Low++
		case sellingPrice < mediumPriceLimit:
			report.PriceRanges.Medium++
		case sellingPrice < highPriceLimit:
			report.PriceRanges.High++
		default:
			report.PriceRanges.Premium++
		}

		qty := float64(p.Quantity)
		report.ProfitAnalysis.TotalInvestment += p.CostPrice * qty
		report.ProfitAnalysis.ProjectedRevenue += sellingPrice * qty
		report.ProfitAnalysis.ProjectedProfit += pricing.NetProfit(sellingPrice, p.CostPrice, cfg) * qty
		totalMargin += pricing.Margin(sellingPrice, p.CostPrice, cfg)
	}

	report.ProfitAnalysis.AvgMargin = totalMargin / float64(len(products))
	report.QualityScore = qualityScore(products, report.ProfitAnalysis.AvgMargin, cfg)
	report.Recommendations = analysisRecommendations(products, report.ProfitAnalysis.AvgMargin, report.CategoryDistribution)
	return report
}

// qualityScore starts at 100 and deducts for missing data, weak margins and
// inconsistent prices. The result is rounded and never below 0.
func qualityScore(products []models.Product, avgMargin float64, cfg models.PricingConfig) int {
	n := float64(len(products))
	var uncategorized, noDescription, noSKU, priceIssues float64
	for _, p := range products {
		if p.IsUncategorized() {
			uncategorized++
		}
		if !p.HasDescription() {
			noDescription++
		}
		if !p.HasSKU() {
			noSKU++
		}
		if hasPriceIssue(p, cfg) {
			priceIssues++
		}
	}

	score := 100.0
	score -= uncategorized / n * 20
	score -= noDescription / n * 15
	score -= noSKU / n * 10
	switch {
	case avgMargin < 10:
		score -= 20
	case avgMargin < 20:
		score -= 10
	}
	score -= priceIssues / n * 15

	return int(math.Max(0, math.Round(score)))
}

// hasPriceIssue flags loss-making prices and prices far above the market.
func hasPriceIssue(p models.Product, cfg models.PricingConfig) bool {
	sellingPrice := pricing.EffectiveSellingPrice(p, cfg)
	market := p.MarketPriceValue()
	return sellingPrice < p.CostPrice || (market > 0 && sellingPrice > market*1.2)
}

func analysisRecommendations(products []models.Product, avgMargin float64, dist []models.CategoryCount) []string {
	n := float64(len(products))
	recs := []string{}

	if avgMargin < 15 {
		recs = append(recs, "Consider increasing profit margins - current average is below recommended 15%")
	}

	for _, c := range dist {
		if c.Category == models.UncategorizedCategory && float64(c.Count) > n*0.2 {
			recs = append(recs, "Many products lack proper categorization - consider manual review")
			break
		}
	}

	var noDescription float64
	highCost := false
	for _, p := range products {
		if !p.HasDescription() {
			noDescription++
		}
		if p.CostPrice > highCostLimit {
			highCost = true
		}
	}
	if noDescription > n*0.5 {
		recs = append(recs, "Add product descriptions to improve customer experience")
	}
	if highCost {
		recs = append(recs, "Review high-cost products for inventory optimization")
	}

	var top *models.CategoryCount
	for i := range dist {
		if top == nil || dist[i].Count > top.Count {
			top = &dist[i]
		}
	}
	if top != nil && float64(top.Count) > n*0.4 {
		recs = append(recs, fmt.Sprintf("Consider diversifying beyond %s category (%d products)", top.Category, top.Count))
	}
	return recs
}

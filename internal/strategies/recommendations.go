package strategies

import (
	"fmt"

	"trustcart/internal/models"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const lowMarginThreshold = 15

var amountPrinter = message.NewPrinter(language.English)

// formatAmount renders an amount with grouped thousands and up to three decimals.
func formatAmount(v float64) string {
	return amountPrinter.Sprint(number.Decimal(v, number.MaxFractionDigits(3)))
}

// GenerateRecommendations returns pricing alerts for each priced product, followed
// by one bundle opportunity per eligible category. Order is generation order.
func GenerateRecommendations(products []models.Product, cfg models.PricingConfig) []models.Recommendation {
	var recs []models.Recommendation

	for _, p := range products {
		sellingPrice := p.ManualSellingPrice()
		if p.CostPrice <= 0 || sellingPrice <= 0 {
			continue
		}

		margin := (sellingPrice - p.CostPrice) / sellingPrice * 100
		if margin < lowMarginThreshold {
			recs = append(recs, models.Recommendation{
				Type:        models.RecommendationPricing,
				Title:       "Low Margin Alert: " + p.Name,
				Description: fmt.Sprintf("Current margin is %.1f%%. Consider increasing price or reducing costs.", margin),
				Impact:      models.ImpactHigh,
				Action:      "Increase selling price or optimize costs",
			})
		}

		if NeedsPsychologicalPrice(sellingPrice) {
			psych := PsychologicalPrice(sellingPrice)
			recs = append(recs, models.Recommendation{
				Type:  models.RecommendationPricing,
				Title: "Psychological Pricing: " + p.Name,
				Description: fmt.Sprintf("Consider pricing at %s %s instead of %s %s",
					cfg.Currency, formatAmount(psych), cfg.Currency, formatAmount(sellingPrice)),
				Impact: models.ImpactMedium,
				Action: "Apply psychological pricing",
			})
		}
	}

	for _, g := range groupBundleCandidates(products) {
		bc, ok := BundleConfigFor(g.category)
		if !ok || len(g.products) < minBundleProducts {
			continue
		}
		recs = append(recs, models.Recommendation{
			Type:        models.RecommendationBundle,
			Title:       bc.Name + " Opportunity",
			Description: fmt.Sprintf("Create a bundle with %d %s products for increased sales", len(g.products), g.category),
			Impact:      models.ImpactHigh,
			Action:      "Create bundle offer",
			Data:        &models.RecommendationData{Category: g.category, Products: g.products},
		})
	}
	return recs
}

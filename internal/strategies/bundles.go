// Package strategies holds the rule-based pricing suggestions: charm prices,
// generated bundles and recommendations.
package strategies

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
	"time"

	"trustcart/internal/models"
)

const (
	minBundleProducts       = 2
	preferredBundleProducts = 3
	maxBundleProducts       = 4
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// BundleID builds the id of a generated bundle from its category and creation time.
func BundleID(category string, now time.Time) string {
	slug := whitespaceRun.ReplaceAllString(strings.ToLower(category), "_")
	return fmt.Sprintf("bundle_%s_%d", slug, now.UnixMilli())
}

// BundlePrice applies a percentage discount and rounds to a whole unit.
func BundlePrice(originalPrice, discount float64) float64 {
	return math.Round(originalPrice * (1 - discount/100))
}

// GenerateAutoBundles proposes one bundle per eligible category. A category is
// eligible when it has a bundle template and at least two active, priced products.
// The cheapest three or four products go into the bundle.
func GenerateAutoBundles(products []models.Product, now time.Time) []models.BundleOffer {
	var bundles []models.BundleOffer
	for _, g := range groupBundleCandidates(products) {
		cfg, ok := BundleConfigFor(g.category)
		if !ok || len(g.products) < minBundleProducts {
			continue
		}

		sorted := g.products
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].ManualSellingPrice() < sorted[j].ManualSellingPrice()
		})
		take := min(maxBundleProducts, max(preferredBundleProducts, len(sorted)))
		take = min(take, len(sorted))
		selected := sorted[:take]

		bundles = append(bundles, NewBundle(BundleID(g.category, now), cfg.Name, g.category, selected, cfg.Discount, cfg.Color))
	}
	return bundles
}

// NewBundle snapshots products into an active bundle and prices it.
func NewBundle(id, name, category string, products []models.Product, discount float64, color string) models.BundleOffer {
	snapshot := models.CloneProducts(products)
	var original float64
	for _, p := range snapshot {
		original += p.ManualSellingPrice()
	}
	return models.BundleOffer{
		ID:            id,
		Name:          name,
		Category:      category,
		Products:      snapshot,
		OriginalPrice: original,
		BundlePrice:   BundlePrice(original, discount),
		Discount:      discount,
		Color:         color,
		IsActive:      true,
	}
}

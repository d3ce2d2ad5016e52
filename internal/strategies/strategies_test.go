package strategies

import (
	"fmt"
	"testing"
	"time"

	"trustcart/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func priced(id, name, category string, cost, sell float64) models.Product {
	return models.Product{
		ID:           id,
		Name:         name,
		Category:     category,
		CostPrice:    cost,
		SellingPrice: models.Float64Ptr(sell),
		Quantity:     1,
		IsActive:     true,
	}
}

func TestPsychologicalPrice(t *testing.T) {
	assert.InDelta(t, 44.99, PsychologicalPrice(45.5), 1e-9)
	assert.Equal(t, 149.0, PsychologicalPrice(150))
	assert.Equal(t, 989.0, PsychologicalPrice(999))
	assert.Equal(t, 1695.0, PsychologicalPrice(1782))
	assert.Equal(t, 11901.0, PsychologicalPrice(12345))

	assert.True(t, NeedsPsychologicalPrice(1782))
	assert.False(t, NeedsPsychologicalPrice(1000))
}

func TestGenerateAutoBundles_TwoElectronics(t *testing.T) {
	products := []models.Product{
		priced("1", "Phone", "Electronics", 1500, 2000),
		priced("2", "Charger", "Electronics", 500, 1000),
	}

	bundles := GenerateAutoBundles(products, now)

	require.Len(t, bundles, 1)
	b := bundles[0]
	assert.Equal(t, fmt.Sprintf("bundle_electronics_%d", now.UnixMilli()), b.ID)
	assert.Equal(t, "Tech Bundle", b.Name)
	assert.Equal(t, "#3B82F6", b.Color)
	assert.Equal(t, 15.0, b.Discount)
	assert.Equal(t, 3000.0, b.OriginalPrice)
	assert.Equal(t, 2550.0, b.BundlePrice)
	assert.True(t, b.IsActive)
	require.Len(t, b.Products, 2)
	assert.Equal(t, "Charger", b.Products[0].Name, "products sorted by price ascending")
}

func TestGenerateAutoBundles_Eligibility(t *testing.T) {
	inactive := priced("3", "Old Case", "Electronics", 100, 300)
	inactive.IsActive = false
	unpriced := models.Product{ID: "4", Name: "Cable", Category: "Electronics", CostPrice: 100, Quantity: 1, IsActive: true}

	products := []models.Product{
		priced("1", "Phone", "Electronics", 1500, 2000),
		inactive,
		unpriced,
		priced("5", "Widget A", "Gadgets", 10, 20),
		priced("6", "Widget B", "Gadgets", 10, 20),
	}

	assert.Empty(t, GenerateAutoBundles(products, now))
}

func TestGenerateAutoBundles_CapsAtFourCheapest(t *testing.T) {
	products := []models.Product{
		priced("1", "Sofa", "Home & Garden", 100, 500),
		priced("2", "Lamp", "Home & Garden", 100, 100),
		priced("3", "Rug", "Home & Garden", 100, 400),
		priced("4", "Vase", "Home & Garden", 100, 200),
		priced("5", "Chair", "Home & Garden", 100, 300),
	}

	bundles := GenerateAutoBundles(products, now)

	require.Len(t, bundles, 1)
	b := bundles[0]
	assert.Equal(t, fmt.Sprintf("bundle_home_&_garden_%d", now.UnixMilli()), b.ID)
	require.Len(t, b.Products, 4)
	assert.Equal(t, []string{"Lamp", "Vase", "Chair", "Rug"}, names(b.Products))
	assert.Equal(t, 1000.0, b.OriginalPrice)
	assert.Equal(t, 780.0, b.BundlePrice)
}

func TestGenerateAutoBundles_SnapshotsAreIndependent(t *testing.T) {
	products := []models.Product{
		priced("1", "Phone", "Electronics", 1500, 2000),
		priced("2", "Charger", "Electronics", 500, 1000),
	}

	bundles := GenerateAutoBundles(products, now)
	*products[0].SellingPrice = 9999

	require.Len(t, bundles, 1)
	assert.Equal(t, 3000.0, bundles[0].OriginalPrice)
	assert.Equal(t, 2000.0, bundles[0].Products[1].ManualSellingPrice())
}

func TestGenerateRecommendations_Order(t *testing.T) {
	cfg := models.DefaultPricingConfig()
	products := []models.Product{
		priced("1", "Cheap", "Electronics", 900, 1000),
		priced("2", "Phone", "Electronics", 500, 1782),
		{ID: "3", Name: "Unpriced", Category: "Electronics", CostPrice: 100, Quantity: 1, IsActive: true},
	}

	recs := GenerateRecommendations(products, cfg)

	require.Len(t, recs, 3)

	assert.Equal(t, models.RecommendationPricing, recs[0].Type)
	assert.Equal(t, "Low Margin Alert: Cheap", recs[0].Title)
	assert.Equal(t, "Current margin is 10.0%. Consider increasing price or reducing costs.", recs[0].Description)
	assert.Equal(t, models.ImpactHigh, recs[0].Impact)

	assert.Equal(t, "Psychological Pricing: Phone", recs[1].Title)
	assert.Equal(t, "Consider pricing at LKR 1,695 instead of LKR 1,782", recs[1].Description)
	assert.Equal(t, models.ImpactMedium, recs[1].Impact)
	assert.Equal(t, "Apply psychological pricing", recs[1].Action)

	assert.Equal(t, models.RecommendationBundle, recs[2].Type)
	assert.Equal(t, "Tech Bundle Opportunity", recs[2].Title)
	assert.Equal(t, "Create a bundle with 2 Electronics products for increased sales", recs[2].Description)
	require.NotNil(t, recs[2].Data)
	assert.Equal(t, "Electronics", recs[2].Data.Category)
	assert.Len(t, recs[2].Data.Products, 2)
}

func TestGenerateRecommendations_NoPricedProducts(t *testing.T) {
	recs := GenerateRecommendations(models.DefaultProducts(now), models.DefaultPricingConfig())
	assert.Empty(t, recs)
}

func TestBundleID_CollapsesWhitespace(t *testing.T) {
	assert.Equal(t, fmt.Sprintf("bundle_mobile_phones_&_accessories_%d", now.UnixMilli()),
		BundleID("Mobile Phones  &\tAccessories", now))
}

func names(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Name
	}
	return out
}

package pricing

import (
	"testing"

	"trustcart/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProducts() []models.Product {
	return []models.Product{
		{ID: "a", Name: "Phone", Category: "Electronics", CostPrice: 1000, Quantity: 2, IsActive: true},
		{ID: "b", Name: "Cable", Category: "Electronics", CostPrice: 500, SellingPrice: models.Float64Ptr(1000), Quantity: 1, IsActive: true},
		{ID: "c", Name: "Dress", Category: "Fashion", CostPrice: 2000, Quantity: 5, IsActive: false},
	}
}

func TestCalculateMetrics(t *testing.T) {
	cfg := models.DefaultPricingConfig()

	m := CalculateMetrics(sampleProducts(), cfg)

	profitA := (1782 - 1000 - 20 - 400 - 1782*0.035) * 2
	profitB := 1000 - 500 - 20 - 400 - 1000*0.035
	totalProfit := profitA + profitB

	assert.Equal(t, 2, m.ProductCount)
	assert.InDelta(t, 2500.0, m.TotalInvestment, 1e-9)
	assert.InDelta(t, 4564.0, m.TotalRevenue, 1e-9)
	assert.InDelta(t, totalProfit, m.TotalProfit, 1e-9)
	assert.InDelta(t, totalProfit/2500*100, m.ROI, 1e-9)
	assert.InDelta(t, totalProfit/2, m.AvgProfit, 1e-9)
	assert.InDelta(t, totalProfit/4564*100, m.ProfitMargin, 1e-9)
}

func TestCalculateMetrics_NoActiveProducts(t *testing.T) {
	products := []models.Product{{Name: "Off", CostPrice: 100, Quantity: 1, IsActive: false}}

	m := CalculateMetrics(products, models.DefaultPricingConfig())

	assert.Equal(t, models.DashboardMetrics{}, m)
}

func TestCalculateMetrics_SeedProductsHaveNoDivisionByZero(t *testing.T) {
	m := CalculateMetrics(models.DefaultProducts(fixedTime), models.DefaultPricingConfig())

	assert.Equal(t, 8, m.ProductCount)
	assert.Equal(t, 0.0, m.TotalInvestment)
	assert.Equal(t, 0.0, m.ROI)
	assert.Equal(t, 0.0, m.ProfitMargin)
	assert.InDelta(t, -420.0, m.AvgProfit, 1e-9)
}

func TestCategoryBreakdown_SortedByProfit(t *testing.T) {
	cfg := models.DefaultPricingConfig()
	products := append(sampleProducts(),
		models.Product{ID: "d", Name: "Sofa", Category: "Furniture", CostPrice: 50000, Quantity: 1, IsActive: true},
	)

	stats := CategoryBreakdown(products, cfg)

	require.Len(t, stats, 2)
	assert.Equal(t, "Furniture", stats[0].Category)
	assert.Equal(t, "Electronics", stats[1].Category)
	assert.Equal(t, 2, stats[1].Count)
	assert.InDelta(t, 2500.0, stats[1].TotalInvestment, 1e-9)

	marginA := Margin(1782, 1000, cfg)
	marginB := Margin(1000, 500, cfg)
	assert.InDelta(t, (marginA+marginB)/2, stats[1].AvgProfitMargin, 1e-9)
}

func TestProfitDistributionOf(t *testing.T) {
	cfg := models.DefaultPricingConfig()
	products := append(sampleProducts(),
		models.Product{Name: "Premium", Category: "Fashion", CostPrice: 100, SellingPrice: models.Float64Ptr(10000), Quantity: 1, IsActive: true},
		models.Product{Name: "Fair", Category: "Fashion", CostPrice: 700, SellingPrice: models.Float64Ptr(1300), Quantity: 1, IsActive: true},
	)

	d := ProfitDistributionOf(products, cfg)

	assert.Equal(t, models.ProfitDistribution{High: 1, Good: 1, Fair: 1, Low: 1}, d)
}

package pricing

import (
	"testing"

	"trustcart/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestApplyDynamicPricing(t *testing.T) {
	tests := []struct {
		name    string
		factors models.PricingFactors
		want    float64
	}{
		{"no factors", models.PricingFactors{}, 1000},
		{"holiday", models.PricingFactors{Season: "holiday"}, 1100},
		{"high demand", models.PricingFactors{Demand: "high"}, 1050},
		{"low demand", models.PricingFactors{Demand: "low"}, 950},
		{"high competition", models.PricingFactors{Competition: "high"}, 980},
		{"all up", models.PricingFactors{Season: "holiday", Demand: "high", Competition: "high"}, 1132},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ApplyDynamicPricing(1000, tt.factors))
		})
	}
}

func TestVolumeDiscount(t *testing.T) {
	assert.Equal(t, 1000.0, VolumeDiscount(1, 1000))
	assert.InDelta(t, 950.0, VolumeDiscount(3, 1000), 1e-9)
	assert.InDelta(t, 900.0, VolumeDiscount(5, 1000), 1e-9)
	assert.InDelta(t, 850.0, VolumeDiscount(10, 1000), 1e-9)
}

func TestLoyaltyDiscount(t *testing.T) {
	assert.InDelta(t, 950.0, LoyaltyDiscount("bronze", 1000), 1e-9)
	assert.InDelta(t, 900.0, LoyaltyDiscount("silver", 1000), 1e-9)
	assert.InDelta(t, 850.0, LoyaltyDiscount("Gold", 1000), 1e-9)
	assert.InDelta(t, 800.0, LoyaltyDiscount("platinum", 1000), 1e-9)
	assert.Equal(t, 1000.0, LoyaltyDiscount("diamond", 1000))
}

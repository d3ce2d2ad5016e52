package pricing

import (
	"fmt"
	"math"
	"strings"

	"trustcart/internal/models"
)

// ValidateConfig rejects configurations that would corrupt every price, and
// normalizes the currency code to upper case.
func ValidateConfig(cfg *models.PricingConfig) error {
	fields := []struct {
		name  string
		value float64
	}{
		{"profitMargin", cfg.ProfitMargin},
		{"adCost", cfg.AdCost},
		{"deliveryCost", cfg.DeliveryCost},
		{"taxRate", cfg.TaxRate},
		{"gatewayFee", cfg.GatewayFee},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s must be a finite number", models.ErrInvalidConfig, f.name)
		}
	}

	if cfg.GatewayFee < 0 || cfg.GatewayFee >= 100 {
		return fmt.Errorf("%w: gatewayFee must be in [0, 100), got %v", models.ErrInvalidConfig, cfg.GatewayFee)
	}
	if cfg.AdCost < 0 {
		return fmt.Errorf("%w: adCost cannot be negative", models.ErrInvalidConfig)
	}
	if cfg.DeliveryCost < 0 {
		return fmt.Errorf("%w: deliveryCost cannot be negative", models.ErrInvalidConfig)
	}
	if cfg.TaxRate < 0 {
		return fmt.Errorf("%w: taxRate cannot be negative", models.ErrInvalidConfig)
	}

	cfg.Currency = strings.ToUpper(strings.TrimSpace(cfg.Currency))
	if cfg.Currency == "" {
		return fmt.Errorf("%w: currency is required", models.ErrInvalidConfig)
	}
	return nil
}

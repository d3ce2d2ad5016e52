package config

import (
	"fmt"

	"trustcart/internal/models"
	"trustcart/internal/pricing"

	"github.com/BurntSushi/toml"
)

// pricingDefaultsFile is the on-disk shape of a pricing defaults file:
//
//	[pricing]
//	profit_margin = 30
//	gateway_fee = 3.5
//	currency = "LKR"
type pricingDefaultsFile struct {
	Pricing models.PricingConfig `toml:"pricing"`
}

// LoadPricingDefaults returns the configuration new workspaces start from.
// Keys missing from the file keep their built-in values. An empty filename
// returns the built-in defaults.
func LoadPricingDefaults(filename string) (models.PricingConfig, error) {
	file := pricingDefaultsFile{Pricing: models.DefaultPricingConfig()}
	if filename == "" {
		return file.Pricing, nil
	}

	if _, err := toml.DecodeFile(filename, &file); err != nil {
		return models.PricingConfig{}, fmt.Errorf("failed to load pricing defaults file: %w", err)
	}
	if err := pricing.ValidateConfig(&file.Pricing); err != nil {
		return models.PricingConfig{}, fmt.Errorf("invalid pricing defaults in %s: %w", filename, err)
	}
	return file.Pricing, nil
}

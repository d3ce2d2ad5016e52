package models

// PricingConfig holds the global pricing inputs for a workspace.
type PricingConfig struct {
	ProfitMargin float64 `json:"profitMargin" toml:"profit_margin"` // %
	AdCost       float64 `json:"adCost" toml:"ad_cost"`             // currency units per product
	DeliveryCost float64 `json:"deliveryCost" toml:"delivery_cost"` // currency units per product
	TaxRate      float64 `json:"taxRate" toml:"tax_rate"`           // %
	GatewayFee   float64 `json:"gatewayFee" toml:"gateway_fee"`     // %, must stay below 100
	Currency     string  `json:"currency" toml:"currency"`
}

// PriceCalculation is the result of pricing a single cost price.
type PriceCalculation struct {
	SellingPrice float64 `json:"sellingPrice"`
	NetProfit    float64 `json:"netProfit"`
	ProfitMargin float64 `json:"profitMargin"`
}

type DashboardMetrics struct {
	TotalInvestment float64 `json:"totalInvestment"`
	TotalRevenue    float64 `json:"totalRevenue"`
	TotalProfit     float64 `json:"totalProfit"`
	ROI             float64 `json:"roi"`
	AvgProfit       float64 `json:"avgProfit"`
	ProfitMargin    float64 `json:"profitMargin"`
	ProductCount    int     `json:"productCount"`
}

type CategoryStats struct {
	Category        string  `json:"category"`
	Count           int     `json:"count"`
	TotalInvestment float64 `json:"totalInvestment"`
	TotalProfit     float64 `json:"totalProfit"`
	AvgProfitMargin float64 `json:"avgProfitMargin"`
}

// ProfitDistribution buckets active products by net margin.
type ProfitDistribution struct {
	High int `json:"high"` // >= 25%
	Good int `json:"good"` // >= 15%
	Fair int `json:"fair"` // >= 5%
	Low  int `json:"low"`
}

// Dashboard bundles everything the overview screen renders.
type Dashboard struct {
	Metrics            DashboardMetrics   `json:"metrics"`
	CategoryStats      []CategoryStats    `json:"categoryStats"`
	ProfitDistribution ProfitDistribution `json:"profitDistribution"`
	Currency           string             `json:"currency"`
}

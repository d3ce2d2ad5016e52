package models

type RecommendationType string

const (
	RecommendationPricing  RecommendationType = "pricing"
	RecommendationBundle   RecommendationType = "bundle"
	RecommendationStrategy RecommendationType = "strategy"
)

type Impact string

const (
	ImpactHigh   Impact = "high"
	ImpactMedium Impact = "medium"
	ImpactLow    Impact = "low"
)

// Recommendation is a rule-generated suggestion shown on the strategies screen.
type Recommendation struct {
	Type        RecommendationType  `json:"type"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Impact      Impact              `json:"impact"`
	Action      string              `json:"action"`
	Data        *RecommendationData `json:"data,omitempty"`
}

// RecommendationData carries the products behind a bundle opportunity.
type RecommendationData struct {
	Category string    `json:"category"`
	Products []Product `json:"products"`
}

// PricingFactors drives dynamic price adjustment.
type PricingFactors struct {
	Season      string `json:"season"`      // "holiday" raises prices
	Demand      string `json:"demand"`      // "high" or "low"
	Competition string `json:"competition"` // "high" lowers prices
}

package models

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// ValidationError is a single import diagnostic. Row 1 is the header row,
// row 0 marks a file-level failure.
type ValidationError struct {
	Row      int      `json:"row"`
	Field    string   `json:"field"`
	Value    string   `json:"value"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

type ImportStats struct {
	TotalRows   int `json:"totalRows"`
	ValidRows   int `json:"validRows"`
	InvalidRows int `json:"invalidRows"`
	Duplicates  int `json:"duplicates"`
}

// ProcessingResult is the structured outcome of an import. Diagnostics are
// data, never returned as Go errors.
type ProcessingResult struct {
	Success  bool              `json:"success"`
	Data     []Product         `json:"data"`
	Errors   []ValidationError `json:"errors"`
	Warnings []ValidationError `json:"warnings"`
	Stats    ImportStats       `json:"stats"`
}

type PriceRanges struct {
	Low     int `json:"low"`     // < 1,000
	Medium  int `json:"medium"`  // < 10,000
	High    int `json:"high"`    // < 50,000
	Premium int `json:"premium"` // >= 50,000
}

type ProfitAnalysis struct {
	AvgMargin        float64 `json:"avgMargin"`
	TotalInvestment  float64 `json:"totalInvestment"`
	ProjectedRevenue float64 `json:"projectedRevenue"`
	ProjectedProfit  float64 `json:"projectedProfit"`
}

// CategoryCount keeps category distribution in first-seen order.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type AnalysisReport struct {
	CategoryDistribution []CategoryCount `json:"categoryDistribution"`
	PriceRanges          PriceRanges     `json:"priceRanges"`
	ProfitAnalysis       ProfitAnalysis  `json:"profitAnalysis"`
	QualityScore         int             `json:"qualityScore"`
	Recommendations      []string        `json:"recommendations"`
}

// ImportMode selects how imported products join the existing collection.
type ImportMode string

const (
	ImportModeAppend  ImportMode = "append"
	ImportModeReplace ImportMode = "replace"
)

package jobs

import (
	"fmt"
	"time"

	"trustcart/internal/models"
	"trustcart/internal/pricing"

	"github.com/xuri/excelize/v2"
)

const (
	sheetProducts      = "Products"
	sheetBundles       = "Bundle Offers"
	sheetAnalysis      = "Analysis"
	sheetConfiguration = "Configuration"
)

// ExportXLSX builds the four-sheet workbook: products, bundle offers, the
// analysis report and the pricing configuration. Missing selling prices are
// filled in before anything is written.
func ExportXLSX(products []models.Product, bundles []models.BundleOffer, cfg models.PricingConfig, now time.Time) ([]byte, error) {
	calculated := RecalculateFormulas(products, cfg, now, false)
	analysis := GenerateAnalysis(calculated, cfg)

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetProducts); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	for _, name := range []string{sheetBundles, sheetAnalysis, sheetConfiguration} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("failed to create sheet %q: %w", name, err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	productRows := make([][]interface{}, len(calculated))
	for i, p := range calculated {
		productRows[i] = productRow(p, cfg)
	}
	if err := writeTable(f, sheetProducts, productHeaders, productRows, headerStyle); err != nil {
		return nil, err
	}

	bundleRows := make([][]interface{}, len(bundles))
	for i, b := range bundles {
		bundleRows[i] = bundleRow(b)
	}
	if err := writeTable(f, sheetBundles, bundleHeaders, bundleRows, headerStyle); err != nil {
		return nil, err
	}

	if err := writeTable(f, sheetAnalysis, []string{"Metric", "Value"}, analysisRows(calculated, analysis), headerStyle); err != nil {
		return nil, err
	}
	if err := writeTable(f, sheetConfiguration, []string{"Setting", "Value"}, configurationRows(cfg), headerStyle); err != nil {
		return nil, err
	}

	f.SetActiveSheet(0)
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeTable(f *excelize.File, sheet string, headers []string, rows [][]interface{}, headerStyle int) error {
	header := make([]interface{}, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", sheet, err)
	}
	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("failed to style %s header: %w", sheet, err)
	}

	for i := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+2, err)
		}
	}

	lastCol, _ := excelize.ColumnNumberToName(len(headers))
	return f.SetColWidth(sheet, "A", lastCol, 18)
}

func analysisRows(products []models.Product, a models.AnalysisReport) [][]interface{} {
	active := 0
	for _, p := range products {
		if p.IsActive {
			active++
		}
	}

	rows := [][]interface{}{
		{"Total Products", len(products)},
		{"Active Products", active},
		{"Total Investment", a.ProfitAnalysis.TotalInvestment},
		{"Projected Revenue", a.ProfitAnalysis.ProjectedRevenue},
		{"Projected Profit", a.ProfitAnalysis.ProjectedProfit},
		{"Average Margin %", pricing.FormatPercent(a.ProfitAnalysis.AvgMargin)},
		{"Data Quality Score", a.QualityScore},
		{""},
		{"Category Distribution", ""},
	}
	for _, c := range a.CategoryDistribution {
		rows = append(rows, []interface{}{c.Category, c.Count})
	}
	rows = append(rows,
		[]interface{}{""},
		[]interface{}{"Price Ranges", ""},
		[]interface{}{"Low (< 1K)", a.PriceRanges.Low},
		[]interface{}{"Medium (1K-10K)", a.PriceRanges.Medium},
		[]interface{}{"High (10K-50K)", a.PriceRanges.High},
		[]interface{}{"Premium (50K+)", a.PriceRanges.Premium},
		[]interface{}{""},
		[]interface{}{"Recommendations", ""},
	)
	for _, r := range a.Recommendations {
		rows = append(rows, []interface{}{"", r})
	}
	return rows
}

func configurationRows(cfg models.PricingConfig) [][]interface{} {
	return [][]interface{}{
		{"Profit Margin %", cfg.ProfitMargin},
		{"Ad Cost per Product", cfg.AdCost},
		{"Delivery Cost", cfg.DeliveryCost},
		{"Tax Rate %", cfg.TaxRate},
		{"Gateway Fee %", cfg.GatewayFee},
		{"Currency", cfg.Currency},
	}
}

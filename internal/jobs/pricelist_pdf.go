package jobs

import (
	"bytes"
	"fmt"
	"time"

	"trustcart/internal/models"
	"trustcart/internal/pricing"

	"github.com/jung-kurt/gofpdf"
)

// ExportPriceListPDF renders the active products as a printable A4 price list.
func ExportPriceListPDF(products []models.Product, cfg models.PricingConfig, now time.Time) ([]byte, error) {
	calculated := RecalculateFormulas(products, cfg, now, false)

	pdf := gofpdf.New("P", "mm", "A4", "")
	marginX, marginY := 15.0, 15.0
	pdf.SetMargins(marginX, marginY, marginX)
	pdf.SetAutoPageBreak(true, marginY)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Arial", "B", 16)
	pdf.SetTextColor(33, 37, 41)
	pdf.Cell(0, 10, "PRICE LIST")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Generated: %s", now.Format("02-Jan-2006")))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Currency: %s", cfg.Currency))
	pdf.Ln(10)

	headers := []string{"Product", "Category", "Cost", "Selling Price", "Margin %"}
	colWidths := []float64{60, 45, 25, 30, 20}
	aligns := []string{"L", "L", "R", "R", "R"}

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(240, 240, 240)
	for i, header := range headers {
		pdf.CellFormat(colWidths[i], 8, header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 9)
	var listed int
	for _, p := range calculated {
		if !p.IsActive {
			continue
		}
		sellingPrice := pricing.EffectiveSellingPrice(p, cfg)
		cells := []string{
			tr(truncate(p.Name, 34)),
			tr(truncate(p.Category, 26)),
			pricing.FormatAmount(pricing.RoundAmount(p.CostPrice)),
			pricing.FormatAmount(sellingPrice),
			pricing.FormatPercent(pricing.Margin(sellingPrice, p.CostPrice, cfg)),
		}
		for i, c := range cells {
			pdf.CellFormat(colWidths[i], 7, c, "1", 0, aligns[i], false, 0, "")
		}
		pdf.Ln(7)
		listed++
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Products listed: %d", listed))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render price list: %w", err)
	}
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

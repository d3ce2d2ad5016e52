package jobs

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"trustcart/internal/common"
	"trustcart/internal/models"
	"trustcart/internal/pricing"
)

var productHeaders = []string{
	"Product Name", "Category", "SKU", "Supplier", "Description",
	"Cost Price", "Market Price", "Selling Price", "Quantity",
	"Net Profit", "Profit Margin %", "Total Investment", "Total Revenue",
	"Status", "Last Updated",
}

// marginColumn is the index of "Profit Margin %" in productHeaders.
const marginColumn = 10

var bundleHeaders = []string{
	"Bundle Name", "Category", "Products", "Product Count", "Original Price",
	"Bundle Price", "Discount %", "Savings", "Status",
}

// productRow resolves every derived value for export. The margin is returned
// as a number; CSV output renders it with two decimals.
func productRow(p models.Product, cfg models.PricingConfig) []interface{} {
	sellingPrice := pricing.EffectiveSellingPrice(p, cfg)
	netProfit := pricing.NetProfit(sellingPrice, p.CostPrice, cfg)
	margin := pricing.Margin(sellingPrice, p.CostPrice, cfg)
	qty := float64(p.Quantity)

	var market interface{} = ""
	if v := p.MarketPriceValue(); v > 0 {
		market = v
	}
	lastUpdated := ""
	if !p.LastUpdated.IsZero() {
		lastUpdated = p.LastUpdated.Format("2006-01-02")
	}

	return []interface{}{
		p.Name,
		p.Category,
		common.SafeString(p.SKU),
		common.SafeString(p.Supplier),
		common.SafeString(p.Description),
		p.CostPrice,
		market,
		sellingPrice,
		p.Quantity,
		pricing.RoundAmount(netProfit),
		pricing.RoundPercent(margin),
		p.CostPrice * qty,
		sellingPrice * qty,
		statusLabel(p.IsActive),
		lastUpdated,
	}
}

func bundleRow(b models.BundleOffer) []interface{} {
	names := make([]string, len(b.Products))
	for i, p := range b.Products {
		names[i] = p.Name
	}
	return []interface{}{
		b.Name,
		b.Category,
		strings.Join(names, "; "),
		len(b.Products),
		b.OriginalPrice,
		b.BundlePrice,
		b.Discount,
		b.Savings(),
		statusLabel(b.IsActive),
	}
}

func statusLabel(active bool) string {
	if active {
		return "Active"
	}
	return "Inactive"
}

// ExportCSV renders products and bundles as two CSV documents. Missing
// selling prices are filled in first so no blank prices reach the output.
func ExportCSV(products []models.Product, bundles []models.BundleOffer, cfg models.PricingConfig, now time.Time) (productsCSV, bundlesCSV []byte, err error) {
	calculated := RecalculateFormulas(products, cfg, now, false)

	productRows := make([][]interface{}, len(calculated))
	for i, p := range calculated {
		row := productRow(p, cfg)
		row[marginColumn] = pricing.FormatPercent(row[marginColumn].(float64))
		productRows[i] = row
	}
	if productsCSV, err = writeCSV(productHeaders, productRows); err != nil {
		return nil, nil, fmt.Errorf("failed to write products CSV: %w", err)
	}

	bundleRows := make([][]interface{}, len(bundles))
	for i, b := range bundles {
		bundleRows[i] = bundleRow(b)
	}
	if bundlesCSV, err = writeCSV(bundleHeaders, bundleRows); err != nil {
		return nil, nil, fmt.Errorf("failed to write bundles CSV: %w", err)
	}
	return productsCSV, bundlesCSV, nil
}

func writeCSV(headers []string, rows [][]interface{}) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(headers); err != nil {
		return nil, err
	}
	for _, row := range rows {
		record := make([]string, len(row))
		for i, cell := range row {
			record[i] = formatCell(cell)
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func formatCell(v interface{}) string {
	switch x := v.(type) {
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case float64:
		return pricing.FormatAmount(x)
	default:
		return fmt.Sprint(x)
	}
}

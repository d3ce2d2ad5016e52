// Package jobs holds the product import/export pipeline: tabular parsing with
// per-row diagnostics, price recalculation, analysis and the export writers.
package jobs

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"trustcart/internal/categories"
	"trustcart/internal/models"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const preferredSheet = "Products"

// Processor validates imported product tables. It is safe for concurrent use.
type Processor struct {
	logger *zap.Logger
	now    func() time.Time
	detect func(name string) string
}

type ProcessorOption func(*Processor)

// WithClock overrides the time source used for ids and timestamps.
func WithClock(now func() time.Time) ProcessorOption {
	return func(p *Processor) { p.now = now }
}

// WithCategoryDetector overrides category auto-detection for rows without a category.
func WithCategoryDetector(detect func(name string) string) ProcessorOption {
	return func(p *Processor) { p.detect = detect }
}

func NewProcessor(logger *zap.Logger, opts ...ProcessorOption) *Processor {
	if logger == nil {
		logger = zap.NewNop()
	}
	p := &Processor{
		logger: logger,
		now:    time.Now,
		detect: categories.Detect,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Import dispatches on the file extension. Unsupported or unreadable files
// produce a failed result carrying a single file-level diagnostic.
func (p *Processor) Import(filename string, r io.Reader) models.ProcessingResult {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv", ".txt", "":
		return p.ParseCSV(filename, r)
	case ".xlsx", ".xlsm":
		return p.ParseXLSX(filename, r)
	default:
		return fileFailure(filename, models.ErrUnsupportedFormat)
	}
}

// ParseCSV reads comma-separated input with double-quoted fields. A stray
// quote inside an unquoted field, as in `Monitor 27"`, is kept as text.
func (p *Processor) ParseCSV(filename string, r io.Reader) models.ProcessingResult {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		p.logger.Warn("csv import failed", zap.String("file", filename), zap.Error(err))
		return fileFailure(filename, fmt.Errorf("failed to parse CSV: %w", err))
	}
	return p.processRecords(filename, records)
}

// ParseXLSX reads the "Products" sheet when present, otherwise the first sheet.
func (p *Processor) ParseXLSX(filename string, r io.Reader) models.ProcessingResult {
	f, err := excelize.OpenReader(r)
	if err != nil {
		p.logger.Warn("xlsx import failed", zap.String("file", filename), zap.Error(err))
		return fileFailure(filename, fmt.Errorf("failed to open workbook: %w", err))
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	for _, name := range f.GetSheetList() {
		if strings.EqualFold(name, preferredSheet) {
			sheet = name
			break
		}
	}
	if sheet == "" {
		return fileFailure(filename, errors.New("workbook has no sheets"))
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		p.logger.Warn("xlsx import failed", zap.String("file", filename), zap.String("sheet", sheet), zap.Error(err))
		return fileFailure(filename, fmt.Errorf("failed to read sheet %q: %w", sheet, err))
	}
	return p.processRecords(filename, rows)
}

// ParseBytes is a convenience wrapper for in-memory uploads.
func (p *Processor) ParseBytes(filename string, data []byte) models.ProcessingResult {
	return p.Import(filename, bytes.NewReader(data))
}

func (p *Processor) processRecords(filename string, records [][]string) models.ProcessingResult {
	start := time.Now()
	if len(records) == 0 {
		return fileFailure(filename, errors.New("file is empty"))
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = normalizeHeader(h)
	}

	var rows []sourceRow
	for n, rec := range records[1:] {
		if isBlankRecord(rec) {
			continue
		}
		row := rawRow{}
		for i, h := range headers {
			if h == "" || i >= len(rec) {
				continue
			}
			if _, seen := row[h]; !seen {
				row[h] = rec[i]
			}
		}
		rows = append(rows, sourceRow{number: n + 2, values: row})
	}

	result := p.process(headers, rows)
	p.logger.Info("product import processed",
		zap.String("file", filename),
		zap.Int("total_rows", result.Stats.TotalRows),
		zap.Int("valid_rows", result.Stats.ValidRows),
		zap.Int("invalid_rows", result.Stats.InvalidRows),
		zap.Int("duplicates", result.Stats.Duplicates),
		zap.Int("errors", len(result.Errors)),
		zap.Int("warnings", len(result.Warnings)),
		zap.Duration("duration", time.Since(start)),
	)
	return result
}

// process validates raw rows against the resolved header layout. Missing
// required columns abort the whole import; anything else is reported per row.
func (p *Processor) process(headers []string, rows []sourceRow) models.ProcessingResult {
	result := models.ProcessingResult{
		Data:     []models.Product{},
		Errors:   []models.ValidationError{},
		Warnings: []models.ValidationError{},
	}

	cols := resolveColumns(headers)
	headerErrs, headerWarns := validateHeaders(headers, cols)
	result.Errors = append(result.Errors, headerErrs...)
	result.Warnings = append(result.Warnings, headerWarns...)
	if len(headerErrs) > 0 {
		return result
	}

	now := p.now()
	seen := map[string]bool{}
	for _, src := range rows {
		row, rowNumber := src.values, src.number
		errs, warns := validateRow(cols, row, rowNumber)
		result.Errors = append(result.Errors, errs...)
		result.Warnings = append(result.Warnings, warns...)
		if len(errs) > 0 {
			continue
		}

		product := p.buildProduct(cols, row, rowNumber, now)
		key := strings.ToLower(product.Name)
		if seen[key] {
			result.Stats.Duplicates++
			result.Warnings = append(result.Warnings, warning(rowNumber, "name", product.Name, "Duplicate product name detected"))
		} else {
			seen[key] = true
		}
		result.Data = append(result.Data, product)
	}

	result.Stats.TotalRows = len(rows)
	result.Stats.ValidRows = len(result.Data)
	result.Stats.InvalidRows = result.Stats.TotalRows - result.Stats.ValidRows
	result.Success = len(result.Errors) == 0
	return result
}

func validateHeaders(headers []string, cols columnMap) (errs, warns []models.ValidationError) {
	joined := strings.Join(headers, ", ")
	if !cols.has(fieldName) {
		errs = append(errs, models.ValidationError{Row: 1, Field: "headers", Value: joined, Message: `Missing required "Product Name" column`, Severity: models.SeverityError})
	}
	if !cols.has(fieldCostPrice) {
		errs = append(errs, models.ValidationError{Row: 1, Field: "headers", Value: joined, Message: `Missing required "Cost Price" column`, Severity: models.SeverityError})
	}
	if !cols.has(fieldCategory) {
		warns = append(warns, warning(1, "headers", joined, `Missing "Category" column - will auto-detect categories`))
	}
	if !cols.has(fieldQuantity) {
		warns = append(warns, warning(1, "headers", joined, `Missing "Quantity" column - will default to 1`))
	}
	return errs, warns
}

func validateRow(cols columnMap, row rawRow, rowNumber int) (errs, warns []models.ValidationError) {
	name := cols.value(row, fieldName)
	costRaw := cols.value(row, fieldCostPrice)
	marketRaw := cols.value(row, fieldMarketPrice)
	sellingRaw := cols.value(row, fieldSellingPrice)
	quantityRaw := cols.value(row, fieldQuantity)

	if name == "" {
		errs = append(errs, models.ValidationError{Row: rowNumber, Field: "name", Value: name, Message: "Product name is required", Severity: models.SeverityError})
	}

	cost, costOK := parseNumber(costRaw)
	if !costOK || cost <= 0 {
		errs = append(errs, models.ValidationError{Row: rowNumber, Field: "costPrice", Value: costRaw, Message: "Valid cost price is required (must be > 0)", Severity: models.SeverityError})
	}

	market, marketOK := parseNumber(marketRaw)
	if marketRaw != "" && (!marketOK || market < 0) {
		warns = append(warns, warning(rowNumber, "marketPrice", marketRaw, "Invalid market price - will be ignored"))
	}

	selling, sellingOK := parseNumber(sellingRaw)
	if sellingRaw != "" && (!sellingOK || selling <= 0) {
		warns = append(warns, warning(rowNumber, "sellingPrice", sellingRaw, "Invalid selling price - will be calculated automatically"))
	}

	if quantityRaw != "" {
		if _, ok := parseQuantity(quantityRaw); !ok {
			warns = append(warns, warning(rowNumber, "quantity", quantityRaw, "Invalid quantity - will default to 1"))
		}
	}

	if !costOK {
		cost = 0
	}
	if !marketOK {
		market = 0
	}
	if !sellingOK {
		selling = 0
	}
	if market > 0 && cost > market {
		warns = append(warns, warning(rowNumber, "costPrice", costRaw, "Cost price is higher than market price - check for errors"))
	}
	if selling > 0 && selling < cost {
		warns = append(warns, warning(rowNumber, "sellingPrice", sellingRaw, "Selling price is lower than cost price - will result in loss"))
	}
	return errs, warns
}

func (p *Processor) buildProduct(cols columnMap, row rawRow, rowNumber int, now time.Time) models.Product {
	name := cols.value(row, fieldName)
	category := cols.value(row, fieldCategory)
	if category == "" {
		category = p.safeDetect(name)
	}

	cost, _ := parseNumber(cols.value(row, fieldCostPrice))
	product := models.Product{
		ID:          fmt.Sprintf("imported_%d_%d", now.UnixMilli(), rowNumber),
		Name:        name,
		Category:    category,
		CostPrice:   cost,
		Quantity:    1,
		IsActive:    true,
		Description: optionalString(cols.value(row, fieldDescription)),
		SKU:         optionalString(cols.value(row, fieldSKU)),
		Supplier:    optionalString(cols.value(row, fieldSupplier)),
		LastUpdated: now,
	}
	if v, ok := parseNumber(cols.value(row, fieldMarketPrice)); ok && v > 0 {
		product.MarketPrice = models.Float64Ptr(v)
	}
	if v, ok := parseNumber(cols.value(row, fieldSellingPrice)); ok && v > 0 {
		product.SellingPrice = models.Float64Ptr(v)
	}
	if q, ok := parseQuantity(cols.value(row, fieldQuantity)); ok {
		product.Quantity = q
	}
	return product
}

// safeDetect never lets a classifier failure abort an import.
func (p *Processor) safeDetect(name string) (category string) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Warn("category detection failed", zap.String("name", name), zap.Any("panic", r))
			category = models.UncategorizedCategory
		}
	}()
	category = p.detect(name)
	if category == "" {
		category = models.UncategorizedCategory
	}
	return category
}

// parseNumber accepts plain decimals with optional thousands separators.
// Empty input is reported as not ok.
func parseNumber(raw string) (float64, bool) {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// parseQuantity truncates decimal input and requires a positive result.
func parseQuantity(raw string) (int, bool) {
	v, ok := parseNumber(raw)
	if !ok {
		return 0, false
	}
	q := int(math.Trunc(v))
	if q <= 0 {
		return 0, false
	}
	return q, true
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func isBlankRecord(rec []string) bool {
	for _, c := range rec {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func warning(row int, field, value, message string) models.ValidationError {
	return models.ValidationError{Row: row, Field: field, Value: value, Message: message, Severity: models.SeverityWarning}
}

func fileFailure(filename string, err error) models.ProcessingResult {
	return models.ProcessingResult{
		Success: false,
		Data:    []models.Product{},
		Errors: []models.ValidationError{{
			Row:      0,
			Field:    "file",
			Value:    filename,
			Message:  err.Error(),
			Severity: models.SeverityError,
		}},
		Warnings: []models.ValidationError{},
	}
}

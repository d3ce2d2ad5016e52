package jobs

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"trustcart/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var importTime = time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC)

func newTestProcessor(opts ...ProcessorOption) *Processor {
	opts = append([]ProcessorOption{WithClock(func() time.Time { return importTime })}, opts...)
	return NewProcessor(nil, opts...)
}

func TestParseCSV_HeaderOnly(t *testing.T) {
	result := newTestProcessor().ParseCSV("empty.csv", strings.NewReader("Product Name,Cost Price,Category,Quantity\n"))

	assert.True(t, result.Success)
	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Warnings)
	assert.Empty(t, result.Data)
	assert.Equal(t, models.ImportStats{}, result.Stats)
}

func TestParseCSV_MissingRequiredHeaders(t *testing.T) {
	result := newTestProcessor().ParseCSV("bad.csv", strings.NewReader("Category,Quantity\nFood,1\nFood,2\n"))

	assert.False(t, result.Success)
	require.Len(t, result.Errors, 2)
	for _, e := range result.Errors {
		assert.Equal(t, 1, e.Row)
		assert.Equal(t, "headers", e.Field)
		assert.Equal(t, models.SeverityError, e.Severity)
	}
	assert.Equal(t, `Missing required "Product Name" column`, result.Errors[0].Message)
	assert.Equal(t, `Missing required "Cost Price" column`, result.Errors[1].Message)
	assert.Empty(t, result.Data)
	assert.Equal(t, 0, result.Stats.TotalRows)
}

func TestParseCSV_MissingOptionalHeadersWarn(t *testing.T) {
	result := newTestProcessor().ParseCSV("min.csv", strings.NewReader("Name,Cost\nBanana,100\n"))

	assert.True(t, result.Success)
	require.Len(t, result.Warnings, 2)
	assert.Equal(t, `Missing "Category" column - will auto-detect categories`, result.Warnings[0].Message)
	assert.Equal(t, `Missing "Quantity" column - will default to 1`, result.Warnings[1].Message)
	require.Len(t, result.Data, 1)
	assert.Equal(t, "Food & Beverages", result.Data[0].Category)
	assert.Equal(t, 1, result.Data[0].Quantity)
}

func TestParseCSV_RowValidation(t *testing.T) {
	input := strings.Join([]string{
		"Product Name,Category,Cost Price,Market Price,Selling Price,Quantity,Description,SKU",
		"Phone,Electronics,1000,1500,1400,2,Nice,PH-1",
		",Electronics,500,,,1,,",
		"Cable,,abc,,,1,,",
		`phone,Electronics,"1,200",1000,900,x,,`,
		"Laptop Stand,,300,,-5,2.7,,",
	}, "\n")

	result := newTestProcessor().ParseCSV("products.csv", strings.NewReader(input))

	assert.False(t, result.Success)
	assert.Equal(t, models.ImportStats{TotalRows: 5, ValidRows: 3, InvalidRows: 2, Duplicates: 1}, result.Stats)

	require.Len(t, result.Errors, 2)
	assert.Equal(t, models.ValidationError{Row: 3, Field: "name", Value: "", Message: "Product name is required", Severity: models.SeverityError}, result.Errors[0])
	assert.Equal(t, models.ValidationError{Row: 4, Field: "costPrice", Value: "abc", Message: "Valid cost price is required (must be > 0)", Severity: models.SeverityError}, result.Errors[1])

	messages := map[int][]string{}
	for _, w := range result.Warnings {
		messages[w.Row] = append(messages[w.Row], w.Message)
	}
	assert.Equal(t, []string{
		"Invalid quantity - will default to 1",
		"Cost price is higher than market price - check for errors",
		"Selling price is lower than cost price - will result in loss",
		"Duplicate product name detected",
	}, messages[5])
	assert.Equal(t, []string{"Invalid selling price - will be calculated automatically"}, messages[6])

	require.Len(t, result.Data, 3)

	phone := result.Data[0]
	assert.Equal(t, fmt.Sprintf("imported_%d_2", importTime.UnixMilli()), phone.ID)
	assert.Equal(t, "Phone", phone.Name)
	assert.Equal(t, 1000.0, phone.CostPrice)
	assert.Equal(t, 1400.0, phone.ManualSellingPrice())
	assert.Equal(t, 1500.0, phone.MarketPriceValue())
	assert.Equal(t, 2, phone.Quantity)
	assert.Equal(t, "Nice", *phone.Description)
	assert.Equal(t, "PH-1", *phone.SKU)
	assert.Nil(t, phone.Supplier)
	assert.True(t, phone.IsActive)
	assert.Equal(t, importTime, phone.LastUpdated)

	dup := result.Data[1]
	assert.Equal(t, 1200.0, dup.CostPrice)
	assert.Equal(t, 1, dup.Quantity)

	stand := result.Data[2]
	assert.Equal(t, "Computers & Laptops", stand.Category)
	assert.Nil(t, stand.SellingPrice)
	assert.Equal(t, 2, stand.Quantity)
}

func TestParseCSV_CategoryDetectorPanicFallsBack(t *testing.T) {
	p := newTestProcessor(WithCategoryDetector(func(string) string { panic("boom") }))

	result := p.ParseCSV("p.csv", strings.NewReader("Name,Cost,Category,Qty\nMystery,10,,1\n"))

	require.Len(t, result.Data, 1)
	assert.Equal(t, models.UncategorizedCategory, result.Data[0].Category)
}

func TestParseCSV_FileLevelFailures(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		input    string
	}{
		{"empty file", "empty.csv", ""},
		{"unsupported format", "products.pdf", "Name,Cost\nA,1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := newTestProcessor().Import(tt.filename, strings.NewReader(tt.input))

			assert.False(t, result.Success)
			require.Len(t, result.Errors, 1)
			assert.Equal(t, 0, result.Errors[0].Row)
			assert.Equal(t, "file", result.Errors[0].Field)
			assert.Equal(t, tt.filename, result.Errors[0].Value)
			assert.Empty(t, result.Data)
			assert.Equal(t, models.ImportStats{}, result.Stats)
		})
	}
}

func TestParseCSV_SkipsBlankLinesAndBOM(t *testing.T) {
	input := "\ufeffName *,Cost *,Category,Quantity\n\nRice,100,Food & Beverages,3\n,,,\n"

	result := newTestProcessor().ParseCSV("bom.csv", strings.NewReader(input))

	assert.True(t, result.Success)
	assert.Equal(t, 1, result.Stats.TotalRows)
	require.Len(t, result.Data, 1)
	assert.Equal(t, "Rice", result.Data[0].Name)
	assert.Equal(t, 3, result.Data[0].Quantity)
}

func TestParseCSV_BareQuoteInName(t *testing.T) {
	input := "Name,Cost,Category\nMonitor 27\",45000,Electronics\nHDMI Cable,800,Electronics\n"

	result := newTestProcessor().ParseCSV("monitors.csv", strings.NewReader(input))

	assert.True(t, result.Success, "%v", result.Errors)
	require.Len(t, result.Data, 2)
	assert.Equal(t, `Monitor 27"`, result.Data[0].Name)
	assert.Equal(t, 45000.0, result.Data[0].CostPrice)
}

func TestParseCSV_RowNumbersCountSkippedRecords(t *testing.T) {
	input := "Name,Cost\n,,\nGood,100\n,5\n"

	result := newTestProcessor().ParseCSV("gaps.csv", strings.NewReader(input))

	require.Len(t, result.Data, 1)
	assert.Equal(t, fmt.Sprintf("imported_%d_3", importTime.UnixMilli()), result.Data[0].ID)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 4, result.Errors[0].Row)
	assert.Equal(t, "name", result.Errors[0].Field)
	assert.Equal(t, 2, result.Stats.TotalRows)
}

func TestSampleCSV_ImportsCleanly(t *testing.T) {
	result := newTestProcessor().ParseBytes("sample.csv", SampleCSV())

	assert.True(t, result.Success)
	assert.Empty(t, result.Warnings)
	assert.Equal(t, 10, result.Stats.ValidRows)
	assert.Equal(t, `MacBook Pro 14"`, result.Data[3].Name)
}

func TestParseXLSX_PrefersProductsSheet(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"Notes"}))
	_, err := f.NewSheet("Products")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("Products", "A1", &[]interface{}{"Item Name", "Buy Price", "Price", "Dept", "Qty"}))
	require.NoError(t, f.SetSheetRow("Products", "A2", &[]interface{}{"Yoga Mat", 1200, 2500, "Sports", 4}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	result := newTestProcessor().Import("catalog.xlsx", bytes.NewReader(buf.Bytes()))

	assert.True(t, result.Success)
	require.Len(t, result.Data, 1)
	p := result.Data[0]
	assert.Equal(t, "Yoga Mat", p.Name)
	assert.Equal(t, 1200.0, p.CostPrice)
	assert.Equal(t, 2500.0, p.ManualSellingPrice())
	assert.Equal(t, "Sports", p.Category)
	assert.Equal(t, 4, p.Quantity)
}

func TestParseXLSX_Corrupt(t *testing.T) {
	result := newTestProcessor().ParseXLSX("broken.xlsx", strings.NewReader("not a zip"))

	assert.False(t, result.Success)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "file", result.Errors[0].Field)
}

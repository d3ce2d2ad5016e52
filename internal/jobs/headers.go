package jobs

import "strings"

type field string

const (
	fieldName         field = "name"
	fieldCategory     field = "category"
	fieldCostPrice    field = "costPrice"
	fieldMarketPrice  field = "marketPrice"
	fieldSellingPrice field = "sellingPrice"
	fieldQuantity     field = "quantity"
	fieldDescription  field = "description"
	fieldSKU          field = "sku"
	fieldSupplier     field = "supplier"
)

// headerSynonyms lists the accepted column names per field, in resolution order.
// Cost and market prices resolve before the selling price so that a loose
// "price" synonym never claims a "cost price" column.
var headerSynonyms = []struct {
	field    field
	synonyms []string
}{
	{fieldName, []string{"name", "product name", "product", "title", "item name"}},
	{fieldCostPrice, []string{"cost price", "cost", "buy price", "purchase price", "wholesale price"}},
	{fieldMarketPrice, []string{"market price", "mrp", "retail price", "list price", "msrp"}},
	{fieldSellingPrice, []string{"selling price", "sell price", "price", "sale price"}},
	{fieldCategory, []string{"category", "dept", "department", "type", "group"}},
	{fieldQuantity, []string{"quantity", "qty", "stock", "amount", "units"}},
	{fieldDescription, []string{"description", "desc", "details", "info"}},
	{fieldSKU, []string{"sku", "code", "item code", "product code", "barcode"}},
	{fieldSupplier, []string{"supplier", "vendor", "brand", "manufacturer"}},
}

// normalizeHeader trims, lowercases and drops a trailing required-marker ("*").
func normalizeHeader(h string) string {
	h = strings.TrimPrefix(h, "\ufeff")
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.TrimSpace(strings.TrimSuffix(h, "*"))
	return h
}

// columnMap maps each resolved field to its normalized header.
type columnMap map[field]string

// resolveColumns claims one header per field. Exact synonym matches are
// claimed first for every field; remaining fields then take the first
// unclaimed header that contains one of their synonyms.
func resolveColumns(headers []string) columnMap {
	cols := columnMap{}
	claimed := map[string]bool{}

	for _, hs := range headerSynonyms {
		for _, h := range headers {
			if claimed[h] || !containsString(hs.synonyms, h) {
				continue
			}
			cols[hs.field] = h
			claimed[h] = true
			break
		}
	}

	for _, hs := range headerSynonyms {
		if _, ok := cols[hs.field]; ok {
			continue
		}
	search:
		for _, h := range headers {
			if claimed[h] || h == "" {
				continue
			}
			for _, s := range hs.synonyms {
				if strings.Contains(h, s) {
					cols[hs.field] = h
					claimed[h] = true
					break search
				}
			}
		}
	}
	return cols
}

func (c columnMap) has(f field) bool {
	_, ok := c[f]
	return ok
}

// rawRow is a data row keyed by normalized header, before any coercion.
type rawRow map[string]string

// sourceRow is a raw row with its 1-based record number in the file, header
// included, so diagnostics still point at the right record after blank
// records are dropped.
type sourceRow struct {
	number int
	values rawRow
}

func (c columnMap) value(row rawRow, f field) string {
	h, ok := c[f]
	if !ok {
		return ""
	}
	return strings.TrimSpace(row[h])
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

package jobs

import (
	"bytes"
	"encoding/csv"
)

var sampleRows = [][]string{
	{"Product Name", "Category", "Cost Price", "Market Price", "Selling Price", "Quantity", "Description", "SKU", "Supplier"},
	{"iPhone 15 Pro Max", "Mobile Phones & Accessories", "120000", "180000", "165000", "5", "Latest iPhone with advanced features", "IPH15PM-256", "Apple Inc"},
	{"Samsung Galaxy Buds Pro", "Audio & Headphones", "8000", "15000", "13500", "10", "Premium wireless earbuds", "SGBP-BLK", "Samsung"},
	{"Nike Air Max 270", "Shoes & Footwear", "15000", "25000", "22000", "8", "Comfortable running shoes", "NAM270-42", "Nike"},
	{"MacBook Pro 14\"", "Computers & Laptops", "250000", "350000", "320000", "2", "Professional laptop for creators", "MBP14-M3", "Apple Inc"},
	{"Sony WH-1000XM5", "Audio & Headphones", "35000", "50000", "45000", "6", "Noise cancelling headphones", "WH1000XM5", "Sony"},
	{"Adidas Ultraboost 22", "Shoes & Footwear", "18000", "28000", "25000", "12", "Premium running shoes", "UB22-BLK-43", "Adidas"},
	{"iPad Air 5th Gen", "Tablets & E-readers", "80000", "120000", "110000", "4", "Powerful tablet for work and play", "IPAD-AIR5-256", "Apple Inc"},
	{"Dell XPS 13", "Computers & Laptops", "180000", "250000", "230000", "3", "Ultra-portable business laptop", "XPS13-I7-512", "Dell"},
	{"Banana (1kg)", "Food & Beverages", "200", "400", "350", "100", "Fresh organic bananas", "BAN-ORG-1KG", "Local Farm"},
	{"Office Chair Ergonomic", "Office Supplies", "25000", "40000", "36000", "15", "Comfortable ergonomic office chair", "OFC-ERG-BLK", "Office Pro"},
}

// SampleCSV returns a ready-to-import template with ten example products.
func SampleCSV() []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.WriteAll(sampleRows)
	return buf.Bytes()
}

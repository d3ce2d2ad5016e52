package categories

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"quick match", "Banana Chips", "Food & Beverages"},
		{"quick match is case insensitive", "LAPTOP Stand", "Computers & Laptops"},
		{"quick match wins over scoring", "Designer Dress", "Fashion"},
		{"keyword scoring", "Yoga Mat", "Yoga & Pilates"},
		{"longer keywords score higher", "Leather Handbag", "Bags & Luggage"},
		{"exact name bonus", "Kindle", "Tablets & E-readers"},
		{"tie goes to first declared category", "gym", "Fitness & Nutrition"},
		{"tie between supplements and nutrition", "Protein", "Vitamins & Supplements"},
		{"literal category fallback", "Software License", "Software"},
		{"unknown", "Zxq", "Uncategorized"},
		{"empty", "", "Uncategorized"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Detect(tt.input))
		})
	}
}

func TestDetect_Deterministic(t *testing.T) {
	names := []string{"Wireless Speaker", "Dog Food Bowl", "Car Seat Cover", "Green Tea", "Puzzle Box"}
	for _, n := range names {
		first := Detect(n)
		for i := 0; i < 20; i++ {
			assert.Equal(t, first, Detect(n), n)
		}
		assert.NotEmpty(t, first)
	}
}

func TestSuggestions(t *testing.T) {
	assert.Equal(t, Taxonomy[:5], Suggestions("", 0))
	assert.Equal(t, []string{"Mobile Phones & Accessories", "Audio & Headphones"}, Suggestions("PHONE", 5))
	assert.Equal(t, []string{"Kids & Baby Clothing", "Baby Food", "Baby & Toddler Toys"}, Suggestions("baby", 3))
	assert.Empty(t, Suggestions("zzz", 5))
}

func TestPopular(t *testing.T) {
	p := Popular()
	assert.Len(t, p, 12)
	assert.Equal(t, "Electronics", p[0])

	p[0] = "mutated"
	assert.Equal(t, "Electronics", Popular()[0])
}

func TestTaxonomyIsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range Taxonomy {
		assert.False(t, seen[c], "duplicate category %q", c)
		seen[c] = true
	}
	for _, set := range categoryKeywords {
		assert.True(t, seen[set.category], "keyword category %q missing from taxonomy", set.category)
	}
	assert.True(t, IsKnown("electronics"))
	assert.False(t, IsKnown("Uncategorized"))
}

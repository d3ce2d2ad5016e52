// Package categories classifies free-text product names into the storefront taxonomy.
package categories

import (
	"strings"

	"trustcart/internal/models"
)

const DefaultSuggestionLimit = 5

// Detect maps a product name to a category. It never returns an empty string.
//
// Matching is case-insensitive and runs in three stages: a quick lookup of
// common items, keyword scoring, then a literal match on category names.
// Keyword scores add twice the keyword length per hit plus 10 when the whole
// name equals the keyword. Equal scores resolve to the category declared first.
func Detect(name string) string {
	n := strings.ToLower(name)

	for _, q := range quickMatches {
		if strings.Contains(n, q.term) {
			return q.category
		}
	}

	best, bestScore := "", 0
	for _, set := range categoryKeywords {
		score := 0
		for _, kw := range set.keywords {
			kw = strings.ToLower(kw)
			if strings.Contains(n, kw) {
				score += len(kw) * 2
				if n == kw {
					score += 10
				}
			}
		}
		if score > bestScore {
			best, bestScore = set.category, score
		}
	}
	if bestScore > 0 {
		return best
	}

	for _, category := range Taxonomy {
		if strings.Contains(n, strings.ToLower(category)) {
			return category
		}
	}
	return models.UncategorizedCategory
}

// Suggestions returns up to limit taxonomy entries containing input, in taxonomy order.
// Blank input returns the first limit entries.
func Suggestions(input string, limit int) []string {
	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}
	term := strings.ToLower(strings.TrimSpace(input))

	out := make([]string, 0, limit)
	for _, category := range Taxonomy {
		if len(out) == limit {
			break
		}
		if term == "" || strings.Contains(strings.ToLower(category), term) {
			out = append(out, category)
		}
	}
	return out
}

// Popular returns the quick-pick categories.
func Popular() []string {
	out := make([]string, len(popular))
	copy(out, popular)
	return out
}

// IsKnown reports whether category is part of the taxonomy.
func IsKnown(category string) bool {
	for _, c := range Taxonomy {
		if strings.EqualFold(c, category) {
			return true
		}
	}
	return false
}

package strategies

import "trustcart/internal/models"

type categoryGroup struct {
	category string
	products []models.Product
}

// groupBundleCandidates groups active products that have both a cost and a
// manual selling price, keeping categories in first-seen order.
func groupBundleCandidates(products []models.Product) []categoryGroup {
	index := map[string]int{}
	var groups []categoryGroup
	for _, p := range products {
		if !p.IsActive || p.CostPrice <= 0 || p.ManualSellingPrice() <= 0 {
			continue
		}
		i, ok := index[p.Category]
		if !ok {
			i = len(groups)
			index[p.Category] = i
			groups = append(groups, categoryGroup{category: p.Category})
		}
		groups[i].products = append(groups[i].products, p.Clone())
	}
	return groups
}

package service

import (
	"strings"

	"go-stock-admin/internal/model"
)

// CategoryAll is the category selector sentinel meaning "all categories".
const CategoryAll = "all"

// FilterProducts narrows the snapshot to products whose name contains the
// query as a case-insensitive substring AND whose category equals the
// selector. An empty query matches everything; an empty selector is treated
// as CategoryAll. The filter is stable: output preserves snapshot order.
func FilterProducts(products []model.Product, query, category string) []model.Product {
	query = strings.ToLower(strings.TrimSpace(query))
	allCategories := category == "" || category == CategoryAll

	filtered := make([]model.Product, 0, len(products))
	for _, p := range products {
		if query != "" && !strings.Contains(strings.ToLower(p.Name), query) {
			continue
		}
		if !allCategories && p.Category != category {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

package catalog

import "strings"

// Filter returns the items matching both constraints, preserving catalog
// order. The category constraint is either CategoryAll (no constraint) or
// an exact match; the search term matches case-insensitively as a
// substring of either the title or the description. An empty term matches
// everything.
func Filter(items []FoodItem, term string, category Category) []FoodItem {
	term = strings.ToLower(strings.TrimSpace(term))

	out := make([]FoodItem, 0, len(items))
	for _, item := range items {
		if category != CategoryAll && item.Category != category {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(item.Title), term) &&
			!strings.Contains(strings.ToLower(item.Description), term) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// internal/core/domain/stats.go
package domain

import "math"

// Statistics is the summary of the full, unfiltered collection.
type Statistics struct {
	Total              int `json:"total"`
	PurchasedCount     int `json:"purchased_count"`
	Remaining          int `json:"remaining"`
	DistinctCategories int `json:"distinct_categories"`
	Percentage         int `json:"percentage"`
}

// Summarize aggregates the collection. The completion percentage is
// round(purchased/total*100), or 0 for an empty collection.
func Summarize(items []ShoppingItem) Statistics {
	stats := Statistics{Total: len(items)}

	seen := make(map[Category]struct{})
	for _, item := range items {
		if item.Purchased {
			stats.PurchasedCount++
		}
		seen[item.Category] = struct{}{}
	}

	stats.Remaining = stats.Total - stats.PurchasedCount
	stats.DistinctCategories = len(seen)
	if stats.Total > 0 {
		ratio := float64(stats.PurchasedCount) / float64(stats.Total)
		stats.Percentage = int(math.Round(ratio * 100))
	}
	return stats
}

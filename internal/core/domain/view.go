// internal/core/domain/view.go
package domain

import (
	"sort"
	"strings"
)

// CategoryGroup is one render-ready group of the derived view: a category
// and its filtered, sorted members.
type CategoryGroup struct {
	Category Category       `json:"category"`
	Items    []ShoppingItem `json:"items"`
}

// DeriveView computes the grouped view from a repository snapshot and the
// current view parameters: filter by purchased status, search by
// case-insensitive substring, group by category with group keys in
// lexicographic order, then sort within each group. The function is pure;
// identical inputs always produce structurally identical output.
func DeriveView(items []ShoppingItem, filter FilterMode, search string, sortMode SortMode) []CategoryGroup {
	query := strings.ToLower(strings.TrimSpace(search))

	groups := make(map[Category][]ShoppingItem)
	for _, item := range items {
		if !matchesFilter(item, filter) {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(item.Name), query) {
			continue
		}
		groups[item.Category] = append(groups[item.Category], item)
	}

	keys := make([]string, 0, len(groups))
	for cat := range groups {
		keys = append(keys, string(cat))
	}
	sort.Strings(keys)

	view := make([]CategoryGroup, 0, len(keys))
	for _, key := range keys {
		members := groups[Category(key)]
		sortGroup(members, sortMode)
		view = append(view, CategoryGroup{Category: Category(key), Items: members})
	}
	return view
}

func matchesFilter(item ShoppingItem, filter FilterMode) bool {
	switch filter {
	case FilterToBuy:
		return !item.Purchased
	case FilterPurchased:
		return item.Purchased
	default:
		return true
	}
}

// sortGroup orders one group's members in place. Ascending ID first makes
// the result independent of input order, then a stable pass applies the
// requested key so equal keys keep default order.
func sortGroup(members []ShoppingItem, mode SortMode) {
	sort.Slice(members, func(i, j int) bool {
		return members[i].ID < members[j].ID
	})

	switch mode {
	case SortName:
		sort.SliceStable(members, func(i, j int) bool {
			return strings.ToLower(members[i].Name) < strings.ToLower(members[j].Name)
		})
	case SortQuantity:
		sort.SliceStable(members, func(i, j int) bool {
			return members[i].Quantity > members[j].Quantity
		})
	case SortCategory:
		// All members of a group share one category, so this never reorders.
		// Kept for parity with the mode set; flagged as a product question.
		sort.SliceStable(members, func(i, j int) bool {
			return members[i].Category < members[j].Category
		})
	}
}

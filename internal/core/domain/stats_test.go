package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/klerys/shoplist-be/internal/core/domain"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name     string
		items    []domain.ShoppingItem
		expected domain.Statistics
	}{
		{
			name:     "empty_collection",
			items:    nil,
			expected: domain.Statistics{},
		},
		{
			name: "one_of_three_purchased_rounds_to_33",
			items: []domain.ShoppingItem{
				{ID: 1, Name: "Milk", Category: domain.CategoryDairy, Purchased: true},
				{ID: 2, Name: "Apples", Category: domain.CategoryProduce},
				{ID: 3, Name: "Bread", Category: domain.CategoryBakery},
			},
			expected: domain.Statistics{
				Total:              3,
				PurchasedCount:     1,
				Remaining:          2,
				DistinctCategories: 3,
				Percentage:         33,
			},
		},
		{
			name: "two_of_three_purchased_rounds_to_67",
			items: []domain.ShoppingItem{
				{ID: 1, Name: "Milk", Category: domain.CategoryDairy, Purchased: true},
				{ID: 2, Name: "Eggs", Category: domain.CategoryDairy, Purchased: true},
				{ID: 3, Name: "Bread", Category: domain.CategoryBakery},
			},
			expected: domain.Statistics{
				Total:              3,
				PurchasedCount:     2,
				Remaining:          1,
				DistinctCategories: 2,
				Percentage:         67,
			},
		},
		{
			name: "all_purchased",
			items: []domain.ShoppingItem{
				{ID: 1, Name: "Milk", Category: domain.CategoryDairy, Purchased: true},
				{ID: 2, Name: "Steak", Category: domain.CategoryMeat, Purchased: true},
			},
			expected: domain.Statistics{
				Total:              2,
				PurchasedCount:     2,
				Remaining:          0,
				DistinctCategories: 2,
				Percentage:         100,
			},
		},
		{
			name: "none_purchased",
			items: []domain.ShoppingItem{
				{ID: 1, Name: "Milk", Category: domain.CategoryDairy},
			},
			expected: domain.Statistics{
				Total:              1,
				PurchasedCount:     0,
				Remaining:          1,
				DistinctCategories: 1,
				Percentage:         0,
			},
		},
		{
			name: "half_rounds_to_50",
			items: []domain.ShoppingItem{
				{ID: 1, Name: "Milk", Category: domain.CategoryDairy, Purchased: true},
				{ID: 2, Name: "Eggs", Category: domain.CategoryDairy},
			},
			expected: domain.Statistics{
				Total:              2,
				PurchasedCount:     1,
				Remaining:          1,
				DistinctCategories: 1,
				Percentage:         50,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, domain.Summarize(tt.items))
		})
	}
}

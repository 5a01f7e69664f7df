// internal/core/domain/item.go
package domain

import (
	"errors"
	"strconv"
	"strings"
)

// Category represents the fixed set of shopping list categories
type Category string

// Category constants
const (
	CategoryProduce Category = "produce"
	CategoryDairy   Category = "dairy"
	CategoryMeat    Category = "meat"
	CategoryBakery  Category = "bakery"
	CategoryOther   Category = "other"
)

// ParseCategory maps raw input onto the closed category set. Anything
// outside the set, including the empty string, lands in CategoryOther;
// the engine never rejects a category.
func ParseCategory(raw string) Category {
	switch Category(strings.ToLower(strings.TrimSpace(raw))) {
	case CategoryProduce:
		return CategoryProduce
	case CategoryDairy:
		return CategoryDairy
	case CategoryMeat:
		return CategoryMeat
	case CategoryBakery:
		return CategoryBakery
	default:
		return CategoryOther
	}
}

// FilterMode selects which subset of items, by purchased status, a view shows
type FilterMode string

const (
	FilterAll       FilterMode = "all"
	FilterToBuy     FilterMode = "to_buy"
	FilterPurchased FilterMode = "purchased"
)

// ParseFilterMode rejects unknown filter tags at the boundary so that
// downstream switches stay exhaustive.
func ParseFilterMode(raw string) (FilterMode, error) {
	switch FilterMode(strings.ToLower(strings.TrimSpace(raw))) {
	case FilterAll:
		return FilterAll, nil
	case FilterToBuy:
		return FilterToBuy, nil
	case FilterPurchased:
		return FilterPurchased, nil
	default:
		return "", ErrUnknownFilterMode
	}
}

// SortMode is the within-group ordering rule applied after grouping
type SortMode string

const (
	SortDefault  SortMode = "default"
	SortName     SortMode = "name"
	SortQuantity SortMode = "quantity"
	SortCategory SortMode = "category"
)

// ParseSortMode rejects unknown sort tags at the boundary.
func ParseSortMode(raw string) (SortMode, error) {
	switch SortMode(strings.ToLower(strings.TrimSpace(raw))) {
	case SortDefault:
		return SortDefault, nil
	case SortName:
		return SortName, nil
	case SortQuantity:
		return SortQuantity, nil
	case SortCategory:
		return SortCategory, nil
	default:
		return "", ErrUnknownSortMode
	}
}

// ShoppingItem represents a single tracked entry on the list. Items are
// value-like: mutations replace fields and preserve ID.
type ShoppingItem struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Quantity  int      `json:"quantity"`
	Category  Category `json:"category"`
	Purchased bool     `json:"purchased"`
	Favorite  bool     `json:"favorite"`
}

// Domain errors
var (
	ErrEmptyName         = errors.New("item name is empty")
	ErrUnknownFilterMode = errors.New("unknown filter mode")
	ErrUnknownSortMode   = errors.New("unknown sort mode")
)

// NewItem builds a ShoppingItem from raw user input. The name is trimmed
// and ErrEmptyName is the only possible rejection; a quantity that fails
// to parse falls back to 1 rather than erroring. The ID is left unset for
// the repository to assign.
func NewItem(rawName, rawQuantity, rawCategory string) (ShoppingItem, error) {
	name := strings.TrimSpace(rawName)
	if name == "" {
		return ShoppingItem{}, ErrEmptyName
	}

	return ShoppingItem{
		Name:     name,
		Quantity: ParseQuantity(rawQuantity),
		Category: ParseCategory(rawCategory),
	}, nil
}

// ParseQuantity parses free-form quantity text. Absent, malformed, or
// non-positive input coerces to the default quantity 1.
func ParseQuantity(raw string) int {
	q, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || q <= 0 {
		return 1
	}
	return q
}

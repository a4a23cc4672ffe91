package domain

import "strings"

// Category enumerates the menu sections the backend recognizes.
type Category string

const (
	CategoryFood  Category = "food"
	CategoryDrink Category = "drink"
	CategoryWine  Category = "wine"
)

// Categories lists every menu section.
func Categories() []Category {
	return []Category{CategoryFood, CategoryDrink, CategoryWine}
}

// ParseCategory normalizes a category string. Unknown or empty values
// return ok=false; callers treat that as "all categories".
func ParseCategory(s string) (Category, bool) {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case CategoryFood:
		return CategoryFood, true
	case CategoryDrink:
		return CategoryDrink, true
	case CategoryWine:
		return CategoryWine, true
	}
	return "", false
}

// MenuItem is a catalog entry owned by the external backend. Price is an
// integer currency value with no minor units.
type MenuItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Image       string `json:"image"`
	Category    string `json:"category"`
	CreatedAt   string `json:"createdAt,omitempty"`
}

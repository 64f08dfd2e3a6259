package enum

import (
	"database/sql/driver"
	"encoding/json"
	"strings"
)

// MenuCategory represents the category of a menu item
type MenuCategory string

const (
	MenuCategoryDrinks MenuCategory = "drinks"
	MenuCategorySnacks MenuCategory = "snacks"
	MenuCategoryMeals  MenuCategory = "meals"
)

// ParseMenuCategory parses a category string, case-insensitively
func ParseMenuCategory(s string) (MenuCategory, bool) {
	switch MenuCategory(strings.ToLower(s)) {
	case MenuCategoryDrinks:
		return MenuCategoryDrinks, true
	case MenuCategorySnacks:
		return MenuCategorySnacks, true
	case MenuCategoryMeals:
		return MenuCategoryMeals, true
	}
	return "", false
}

func (c MenuCategory) String() string {
	return string(c)
}

// IsDrink reports whether the category uses per-size pricing and recipes
func (c MenuCategory) IsDrink() bool {
	return c == MenuCategoryDrinks
}

func (c MenuCategory) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(c))
}

func (c *MenuCategory) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*c = MenuCategory(strings.ToLower(str))
	return nil
}

func (c MenuCategory) Value() (driver.Value, error) {
	return string(c), nil
}

func (c *MenuCategory) Scan(value interface{}) error {
	if value == nil {
		*c = MenuCategorySnacks
		return nil
	}
	switch v := value.(type) {
	case string:
		*c = MenuCategory(v)
	case []byte:
		*c = MenuCategory(string(v))
	}
	return nil
}

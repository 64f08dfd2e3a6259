package request

import "github.com/google/uuid"

// RecipeEntryRequest represents one ingredient requirement on a menu item
type RecipeEntryRequest struct {
	IngredientID uuid.UUID `json:"ingredient_id" binding:"required"`
	QtyPerUnit   float64   `json:"qty_per_unit" binding:"min=0"`
	QtyOz12      *float64  `json:"qty_oz12" binding:"omitempty,min=0"`
	QtyOz16      *float64  `json:"qty_oz16" binding:"omitempty,min=0"`
}

// CreateMenuItemRequest represents a menu item creation request
type CreateMenuItemRequest struct {
	Name      string               `json:"name" binding:"required,min=2,max=255"`
	Category  string               `json:"category" binding:"required,oneof=drinks snacks meals"`
	Price     *float64             `json:"price" binding:"omitempty,min=0"`
	PriceOz12 *float64             `json:"price_oz12" binding:"omitempty,min=0"`
	PriceOz16 *float64             `json:"price_oz16" binding:"omitempty,min=0"`
	Available     *bool                `json:"available"`
	Recipe        []RecipeEntryRequest `json:"recipe"`
	IngredientIDs []uuid.UUID          `json:"ingredient_ids"`
	AddOnIDs      []uuid.UUID          `json:"addon_ids"`
}

// UpdateMenuItemRequest represents a menu item update request
type UpdateMenuItemRequest struct {
	Name          *string     `json:"name" binding:"omitempty,min=2,max=255"`
	Category      *string     `json:"category" binding:"omitempty,oneof=drinks snacks meals"`
	Price         *float64    `json:"price" binding:"omitempty,min=0"`
	PriceOz12     *float64    `json:"price_oz12" binding:"omitempty,min=0"`
	PriceOz16     *float64    `json:"price_oz16" binding:"omitempty,min=0"`
	Available     *bool       `json:"available"`
	IngredientIDs []uuid.UUID `json:"ingredient_ids"`
	AddOnIDs      []uuid.UUID `json:"addon_ids"`
}

// ReplaceRecipeRequest represents a full recipe replacement
type ReplaceRecipeRequest struct {
	Recipe []RecipeEntryRequest `json:"recipe" binding:"required"`
}

// SetAvailabilityRequest flags a menu item as sellable or sold out
type SetAvailabilityRequest struct {
	Available *bool `json:"available" binding:"required"`
}

// MenuItemFilterRequest represents menu item filter parameters
type MenuItemFilterRequest struct {
	Search        string `form:"search"`
	Category      string `form:"category"`
	AvailableOnly bool   `form:"available_only"`
	SortBy        string `form:"sort_by"`
	SortOrder     string `form:"sort_order"`
	Page          int    `form:"page"`
	PerPage       int    `form:"per_page"`
}

// CreateAddOnRequest represents an add-on creation request
type CreateAddOnRequest struct {
	Name     string  `json:"name" binding:"required,min=2,max=255"`
	Price    float64 `json:"price" binding:"min=0"`
	Category string  `json:"category" binding:"omitempty,oneof=drinks snacks meals"`
}

// UpdateAddOnRequest represents an add-on update request
type UpdateAddOnRequest struct {
	Name     *string  `json:"name" binding:"omitempty,min=2,max=255"`
	Price    *float64 `json:"price" binding:"omitempty,min=0"`
	Active   *bool    `json:"active"`
	Category *string  `json:"category" binding:"omitempty,oneof=drinks snacks meals"`
}

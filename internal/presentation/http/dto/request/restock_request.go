package request

import "github.com/google/uuid"

// RestockItemRequest represents one ingredient line in a restock request
type RestockItemRequest struct {
	IngredientID uuid.UUID `json:"ingredient_id" binding:"required"`
	Quantity     float64   `json:"quantity" binding:"required,gt=0"`
	UnitCost     float64   `json:"unit_cost" binding:"min=0"`
}

// CreateRestockRequest represents a restock creation request
type CreateRestockRequest struct {
	SupplierID *uuid.UUID           `json:"supplier_id"`
	Date       *string              `json:"date"` // YYYY-MM-DD, defaults to today
	Items      []RestockItemRequest `json:"items" binding:"required,min=1"`
}

// RestockFilterRequest represents restock filter parameters
type RestockFilterRequest struct {
	Search     string `form:"search"`
	Status     *int   `form:"status"`
	SupplierID string `form:"supplier_id"`
	StartDate  string `form:"start_date"`
	EndDate    string `form:"end_date"`
	SortBy     string `form:"sort_by"`
	SortOrder  string `form:"sort_order"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}

// CreateSupplierRequest represents a supplier creation request
type CreateSupplierRequest struct {
	Name    string  `json:"name" binding:"required,min=2,max=255"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Phone   *string `json:"phone" binding:"omitempty,max=50"`
	Address *string `json:"address" binding:"omitempty,max=500"`
}

// UpdateSupplierRequest represents a supplier update request
type UpdateSupplierRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=2,max=255"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Phone   *string `json:"phone" binding:"omitempty,max=50"`
	Address *string `json:"address" binding:"omitempty,max=500"`
}

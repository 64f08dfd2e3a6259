package request

// CreateIngredientRequest represents an ingredient creation request
type CreateIngredientRequest struct {
	Name              string  `json:"name" binding:"required,min=2,max=255"`
	Quantity          float64 `json:"quantity" binding:"min=0"`
	Unit              string  `json:"unit" binding:"required,max=50"`
	Price             float64 `json:"price" binding:"min=0"`
	LowStockThreshold float64 `json:"low_stock_threshold" binding:"min=0"`
}

// UpdateIngredientRequest represents an ingredient update request
type UpdateIngredientRequest struct {
	Name              *string  `json:"name" binding:"omitempty,min=2,max=255"`
	Unit              *string  `json:"unit" binding:"omitempty,max=50"`
	Price             *float64 `json:"price" binding:"omitempty,min=0"`
	LowStockThreshold *float64 `json:"low_stock_threshold" binding:"omitempty,min=0"`
}

// AdjustStockRequest represents a manual stock correction request
type AdjustStockRequest struct {
	Delta  float64 `json:"delta" binding:"required"`
	Reason string  `json:"reason" binding:"max=255"`
}

// IngredientFilterRequest represents ingredient filter parameters
type IngredientFilterRequest struct {
	Search    string `form:"search"`
	LowStock  bool   `form:"low_stock"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}

package request

import "github.com/google/uuid"

// CheckoutItemRequest represents one cart line in a checkout request
type CheckoutItemRequest struct {
	MenuItemID uuid.UUID   `json:"menu_item_id" binding:"required"`
	Quantity   int         `json:"quantity"`
	Size       *string     `json:"size"` // validated case-insensitively by enum.ParseDrinkSize
	AddOnIDs   []uuid.UUID `json:"addon_ids"`
}

// CreateCheckoutRequest represents a checkout creation request
type CreateCheckoutRequest struct {
	CustomerID    *uuid.UUID            `json:"customer_id"`
	OrderType     string                `json:"order_type" binding:"omitempty,oneof=dinein takeout"`
	PaymentMethod string                `json:"payment_method" binding:"required,oneof=cash gcash"`
	Tendered      float64               `json:"tendered" binding:"min=0"`
	ReferenceID   *string               `json:"reference_id" binding:"omitempty,max=100"`
	Status        string                `json:"status" binding:"omitempty,oneof=pending completed"`
	RedeemPoints  bool                  `json:"redeem_points"`
	Items         []CheckoutItemRequest `json:"items" binding:"required"`
}

// UpdatePaymentRequest represents a payment settlement on a pending checkout
type UpdatePaymentRequest struct {
	PaymentMethod *string  `json:"payment_method" binding:"omitempty,oneof=cash gcash"`
	Tendered      *float64 `json:"tendered" binding:"omitempty,min=0"`
	ReferenceID   *string  `json:"reference_id" binding:"omitempty,max=100"`
}

// CheckoutFilterRequest represents checkout filter parameters
type CheckoutFilterRequest struct {
	Search        string `form:"search"`
	Status        string `form:"status"`
	PaymentMethod string `form:"payment_method"`
	CustomerID    string `form:"customer_id"`
	StartDate     string `form:"start_date"`
	EndDate       string `form:"end_date"`
	SortBy        string `form:"sort_by"`
	SortOrder     string `form:"sort_order"`
	Page          int    `form:"page"`
	PerPage       int    `form:"per_page"`
}

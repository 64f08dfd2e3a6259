package request

// CreateCustomerRequest represents a customer enrollment request
type CreateCustomerRequest struct {
	Name  string  `json:"name" binding:"required,min=2,max=255"`
	Email *string `json:"email" binding:"omitempty,email"`
	Phone *string `json:"phone" binding:"omitempty,max=50"`
}

// UpdateCustomerRequest represents a customer update request
type UpdateCustomerRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=2,max=255"`
	Email *string `json:"email" binding:"omitempty,email"`
	Phone *string `json:"phone" binding:"omitempty,max=50"`
}

// GrantPointsRequest represents a manual loyalty point adjustment
type GrantPointsRequest struct {
	Delta int `json:"delta" binding:"required"`
}

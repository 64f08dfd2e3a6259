package request

// CreateStaffRequest represents a staff account creation request
type CreateStaffRequest struct {
	FirstName string `json:"first_name" binding:"required,min=2,max=255"`
	LastName  string `json:"last_name" binding:"required,min=2,max=255"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	Role      string `json:"role" binding:"required,oneof=manager barista"`
}

// UpdateStaffRequest represents a staff update request
type UpdateStaffRequest struct {
	FirstName *string `json:"first_name" binding:"omitempty,min=2,max=255"`
	LastName  *string `json:"last_name" binding:"omitempty,min=2,max=255"`
	Role      *string `json:"role" binding:"omitempty,oneof=manager barista"`
	Photo     *string `json:"photo" binding:"omitempty,max=255"`
}

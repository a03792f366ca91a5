package request

// CreateEmployeeRequest represents a create staff member request
type CreateEmployeeRequest struct {
	LocationID string  `json:"location_id" binding:"required,uuid"`
	FirstName  string  `json:"first_name" binding:"required,min=1,max=255"`
	LastName   string  `json:"last_name" binding:"required,min=1,max=255"`
	Role       string  `json:"role" binding:"max=100"`
	Email      *string `json:"email" binding:"omitempty,email"`
	Photo      *string `json:"photo"`
}

// UpdateEmployeeRequest represents an update staff member request
type UpdateEmployeeRequest struct {
	FirstName *string `json:"first_name" binding:"omitempty,min=1,max=255"`
	LastName  *string `json:"last_name" binding:"omitempty,min=1,max=255"`
	Role      *string `json:"role" binding:"omitempty,max=100"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Photo     *string `json:"photo"`
	Active    *bool   `json:"active"`
}

// ConnectPOSRequest links a staff member to a POS staff identifier
type ConnectPOSRequest struct {
	POSStaffID string `json:"pos_staff_id" binding:"required,min=1,max=100"`
}

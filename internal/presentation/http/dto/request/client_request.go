package request

// CreateClientRequest represents a create client request
type CreateClientRequest struct {
	Name  string  `json:"name" binding:"required,min=1,max=255"`
	Email *string `json:"email" binding:"omitempty,email"`
	Phone *string `json:"phone" binding:"omitempty,max=50"`
	Notes *string `json:"notes"`
}

// UpdateClientRequest represents an update client request
type UpdateClientRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=1,max=255"`
	Email *string `json:"email" binding:"omitempty,email"`
	Phone *string `json:"phone" binding:"omitempty,max=50"`
	Notes *string `json:"notes"`
}

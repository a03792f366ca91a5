package request

// CreateAppointmentRequest represents a create appointment request
type CreateAppointmentRequest struct {
	LocationID         string  `json:"location_id" binding:"required,uuid"`
	StaffID            string  `json:"staff_id" binding:"required,uuid"`
	ClientID           *string `json:"client_id" binding:"omitempty,uuid"`
	ServiceName        string  `json:"service_name" binding:"required,max=255"`
	AppointmentDate    string  `json:"appointment_date" binding:"required,datetime=2006-01-02"`
	TotalPrice         string  `json:"total_price"`
	TipAmount          string  `json:"tip_amount"`
	Status             string  `json:"status" binding:"required,max=50"`
	RebookedAtCheckout bool    `json:"rebooked_at_checkout"`
}

// UpdateAppointmentRequest represents an update appointment request
type UpdateAppointmentRequest struct {
	ServiceName        *string `json:"service_name" binding:"omitempty,max=255"`
	AppointmentDate    *string `json:"appointment_date" binding:"omitempty,datetime=2006-01-02"`
	TotalPrice         *string `json:"total_price"`
	TipAmount          *string `json:"tip_amount"`
	Status             *string `json:"status" binding:"omitempty,max=50"`
	RebookedAtCheckout *bool   `json:"rebooked_at_checkout"`
}

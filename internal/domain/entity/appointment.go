package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/nywele/salon-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Appointment represents one booked visit. Rows are created by the
// booking subsystem; the reporting engine only ever reads them.
type Appointment struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	LocationID         uuid.UUID       `gorm:"type:uuid;not null;index" json:"location_id"`
	StaffID            uuid.UUID       `gorm:"type:uuid;not null;index" json:"staff_id"`
	ClientID           *uuid.UUID      `gorm:"type:uuid;index" json:"client_id,omitempty"`
	ServiceName        string          `gorm:"size:255" json:"service_name"`
	AppointmentDate    time.Time       `gorm:"type:date;not null;index" json:"appointment_date"`
	TotalPrice         decimal.Decimal `gorm:"type:numeric(12,2);default:0" json:"total_price"`
	TipAmount          decimal.Decimal `gorm:"type:numeric(12,2);default:0" json:"tip_amount"`
	Status             string          `gorm:"size:50;not null" json:"status"`
	RebookedAtCheckout bool            `gorm:"default:false" json:"rebooked_at_checkout"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
	DeletedAt          gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Staff  Employee `gorm:"foreignKey:StaffID" json:"-"`
	Client *Client  `gorm:"foreignKey:ClientID" json:"client,omitempty"`
}

// NormalizedStatus returns the canonical status for the raw column value.
func (a *Appointment) NormalizedStatus() enum.AppointmentStatus {
	return enum.NormalizeAppointmentStatus(a.Status)
}

// BeforeCreate generates a UUID before creating a new appointment
func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Appointment model
func (Appointment) TableName() string {
	return "appointments"
}

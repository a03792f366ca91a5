package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Employee represents a staff member (stylist, barber, front desk)
type Employee struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	LocationID uuid.UUID      `gorm:"type:uuid;not null;index" json:"location_id"`
	FirstName  string         `gorm:"size:255;not null" json:"first_name"`
	LastName   string         `gorm:"size:255;not null" json:"last_name"`
	Role       string         `gorm:"size:100" json:"role"`
	Email      *string        `gorm:"size:255" json:"email,omitempty"`
	Photo      *string        `gorm:"size:255" json:"photo,omitempty"`
	Active     bool           `gorm:"default:true" json:"active"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Location     Location      `gorm:"foreignKey:LocationID" json:"-"`
	Appointments []Appointment `gorm:"foreignKey:StaffID" json:"-"`
}

// FullName returns the employee's display name.
func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// BeforeCreate generates a UUID before creating a new employee
func (e *Employee) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Employee model
func (Employee) TableName() string {
	return "employees"
}

// StaffPOSLink maps an internal employee to the staff identifier the
// point-of-sale system stamps on its transactions. An employee with no
// active link has never been connected to the POS; the reporting engine
// treats that as a "no data yet" state, not an error.
type StaffPOSLink struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	EmployeeID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"employee_id"`
	POSStaffID string         `gorm:"size:100;not null;index" json:"pos_staff_id"`
	Active     bool           `gorm:"default:true" json:"active"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	Employee Employee `gorm:"foreignKey:EmployeeID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new link
func (l *StaffPOSLink) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the StaffPOSLink model
func (StaffPOSLink) TableName() string {
	return "staff_pos_links"
}

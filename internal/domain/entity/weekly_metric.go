package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// StaffWeeklyMetric is a precomputed weekly performance rollup produced
// by an upstream aggregation job. The reporting engine only reads these
// rows and averages them across the weeks overlapping a period.
type StaffWeeklyMetric struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	StaffID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"staff_id"`
	WeekStart     time.Time       `gorm:"type:date;not null;index" json:"week_start"`
	RebookingRate float64         `gorm:"default:0" json:"rebooking_rate"`
	RetentionRate float64         `gorm:"default:0" json:"retention_rate"`
	NewClients    int             `gorm:"default:0" json:"new_clients"`
	RetailSales   decimal.Decimal `gorm:"type:numeric(12,2);default:0" json:"retail_sales"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	DeletedAt     gorm.DeletedAt  `gorm:"index" json:"-"`

	Staff Employee `gorm:"foreignKey:StaffID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new metric row
func (m *StaffWeeklyMetric) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the StaffWeeklyMetric model
func (StaffWeeklyMetric) TableName() string {
	return "staff_weekly_metrics"
}

package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CommissionTier is one band of the tiered commission schedule. A staff
// member qualifies for the tier with the highest ThresholdRevenue not
// exceeding their total (service + product) revenue for the period.
// ServiceRate and ProductRate are fractions (0.15 = 15%).
type CommissionTier struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name             string          `gorm:"size:100;not null" json:"name"`
	ThresholdRevenue decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"threshold_revenue"`
	ServiceRate      decimal.Decimal `gorm:"type:numeric(6,4);not null" json:"service_rate"`
	ProductRate      decimal.Decimal `gorm:"type:numeric(6,4);not null" json:"product_rate"`
	Active           bool            `gorm:"default:true" json:"active"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
	DeletedAt        gorm.DeletedAt  `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new tier
func (t *CommissionTier) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CommissionTier model
func (CommissionTier) TableName() string {
	return "commission_tiers"
}

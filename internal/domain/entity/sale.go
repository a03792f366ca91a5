package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/nywele/salon-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SaleLineItem is one line of a point-of-sale transaction, synced from
// the POS system. Items sharing a TransactionID were purchased together;
// that grouping drives the retail attachment-rate calculation.
type SaleLineItem struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	POSStaffID      string          `gorm:"size:100;not null;index" json:"pos_staff_id"`
	TransactionID   string          `gorm:"size:100;not null;index" json:"transaction_id"`
	TransactionDate time.Time       `gorm:"type:date;not null;index" json:"transaction_date"`
	ItemName        string          `gorm:"size:255;not null" json:"item_name"`
	ItemType        string          `gorm:"size:100" json:"item_type"`
	Quantity        int             `gorm:"default:1" json:"quantity"`
	TotalAmount     decimal.Decimal `gorm:"type:numeric(12,2);default:0" json:"total_amount"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	DeletedAt       gorm.DeletedAt  `gorm:"index" json:"-"`
}

// NormalizedType returns the canonical item type for the raw column value.
func (i *SaleLineItem) NormalizedType() enum.LineItemType {
	return enum.NormalizeLineItemType(i.ItemType)
}

// EffectiveQuantity treats missing or invalid quantities as one unit.
func (i *SaleLineItem) EffectiveQuantity() int {
	if i.Quantity < 1 {
		return 1
	}
	return i.Quantity
}

// BeforeCreate generates a UUID before creating a new line item
func (i *SaleLineItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SaleLineItem model
func (SaleLineItem) TableName() string {
	return "sale_line_items"
}

package repository

import (
	"context"
	"time"

	"github.com/nywele/salon-api/internal/domain/entity"
	domainRepo "github.com/nywele/salon-api/internal/domain/repository"
	"gorm.io/gorm"
)

type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository
func NewSaleRepository(db *gorm.DB) domainRepo.SaleRepository {
	return &saleRepository{db: db}
}

func (r *saleRepository) ListLineItemsForPOSStaffBetween(ctx context.Context, posStaffID string, from, to time.Time) ([]entity.SaleLineItem, error) {
	var items []entity.SaleLineItem
	err := r.db.WithContext(ctx).
		Where("pos_staff_id = ? AND transaction_date BETWEEN ? AND ?", posStaffID, from, to).
		Order("transaction_date ASC").
		Find(&items).Error
	return items, err
}

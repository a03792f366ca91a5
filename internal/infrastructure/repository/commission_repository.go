package repository

import (
	"context"

	"github.com/nywele/salon-api/internal/domain/entity"
	domainRepo "github.com/nywele/salon-api/internal/domain/repository"
	"gorm.io/gorm"
)

type commissionTierRepository struct {
	db *gorm.DB
}

// NewCommissionTierRepository creates a new commission tier repository
func NewCommissionTierRepository(db *gorm.DB) domainRepo.CommissionTierRepository {
	return &commissionTierRepository{db: db}
}

func (r *commissionTierRepository) ListActive(ctx context.Context) ([]entity.CommissionTier, error) {
	var tiers []entity.CommissionTier
	err := r.db.WithContext(ctx).
		Where("active = true").
		Order("threshold_revenue ASC").
		Find(&tiers).Error
	return tiers, err
}

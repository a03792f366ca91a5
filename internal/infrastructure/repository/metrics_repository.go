package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nywele/salon-api/internal/domain/entity"
	domainRepo "github.com/nywele/salon-api/internal/domain/repository"
	"gorm.io/gorm"
)

type weeklyMetricRepository struct {
	db *gorm.DB
}

// NewWeeklyMetricRepository creates a new weekly metric repository
func NewWeeklyMetricRepository(db *gorm.DB) domainRepo.WeeklyMetricRepository {
	return &weeklyMetricRepository{db: db}
}

// overlapStart widens the lower bound so that a week straddling the
// period start is still included.
func overlapStart(from time.Time) time.Time {
	return from.AddDate(0, 0, -6)
}

func (r *weeklyMetricRepository) ListForStaffBetween(ctx context.Context, staffID uuid.UUID, from, to time.Time) ([]entity.StaffWeeklyMetric, error) {
	var metrics []entity.StaffWeeklyMetric
	err := r.db.WithContext(ctx).
		Where("staff_id = ? AND week_start BETWEEN ? AND ?", staffID, overlapStart(from), to).
		Order("week_start ASC").
		Find(&metrics).Error
	return metrics, err
}

func (r *weeklyMetricRepository) ListAllBetween(ctx context.Context, from, to time.Time) ([]entity.StaffWeeklyMetric, error) {
	var metrics []entity.StaffWeeklyMetric
	err := r.db.WithContext(ctx).
		Where("week_start BETWEEN ? AND ?", overlapStart(from), to).
		Order("week_start ASC").
		Find(&metrics).Error
	return metrics, err
}

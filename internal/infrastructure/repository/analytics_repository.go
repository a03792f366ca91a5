package repository

import (
	"context"
	"time"

	"github.com/nywele/salon-api/internal/domain/entity"
	domainRepo "github.com/nywele/salon-api/internal/domain/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) GetRevenueBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	var revenue decimal.Decimal
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total_price), 0)
		FROM appointments
		WHERE LOWER(status) = 'completed'
		  AND appointment_date BETWEEN ? AND ?
		  AND deleted_at IS NULL
	`, from, to).Scan(&revenue).Error
	if err != nil {
		return decimal.Zero, err
	}
	return revenue, nil
}

func (r *analyticsRepository) GetDailyRevenue(ctx context.Context, days int) ([]domainRepo.DailyRevenueResult, error) {
	var results []domainRepo.DailyRevenueResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			appointment_date as date,
			COALESCE(SUM(total_price), 0) as revenue
		FROM appointments
		WHERE LOWER(status) = 'completed'
		  AND appointment_date >= CURRENT_DATE - ?::int
		  AND deleted_at IS NULL
		GROUP BY appointment_date
		ORDER BY appointment_date ASC
	`, days-1).Scan(&results).Error

	if err != nil {
		return nil, err
	}

	return results, nil
}

func (r *analyticsRepository) GetBusiestStaff(ctx context.Context, from, to time.Time, limit int) ([]domainRepo.BusiestStaffResult, error) {
	var results []domainRepo.BusiestStaffResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			e.id as staff_id,
			e.first_name || ' ' || e.last_name as staff_name,
			COUNT(a.id) as appointment_count,
			COALESCE(SUM(a.total_price), 0) as revenue
		FROM appointments a
		JOIN employees e ON e.id = a.staff_id
		WHERE a.appointment_date BETWEEN ? AND ?
		  AND a.deleted_at IS NULL
		GROUP BY e.id, e.first_name, e.last_name
		ORDER BY appointment_count DESC, staff_name ASC
		LIMIT ?
	`, from, to, limit).Scan(&results).Error

	if err != nil {
		return nil, err
	}

	return results, nil
}

func (r *analyticsRepository) GetStatusCounts(ctx context.Context, from, to time.Time) ([]domainRepo.StatusCountResult, error) {
	var results []domainRepo.StatusCountResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*) as count
		FROM appointments
		WHERE appointment_date BETWEEN ? AND ?
		  AND deleted_at IS NULL
		GROUP BY status
	`, from, to).Scan(&results).Error

	if err != nil {
		return nil, err
	}

	return results, nil
}

func (r *analyticsRepository) CountClients(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Client{}).Count(&count).Error
	return count, err
}

func (r *analyticsRepository) CountActiveEmployees(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Employee{}).Where("active = true").Count(&count).Error
	return count, err
}

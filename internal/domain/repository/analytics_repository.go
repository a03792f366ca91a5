package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BusiestStaffResult represents one staff member's appointment volume
type BusiestStaffResult struct {
	StaffID          uuid.UUID
	StaffName        string
	AppointmentCount int
	Revenue          decimal.Decimal
}

// DailyRevenueResult represents completed-appointment revenue for one day
type DailyRevenueResult struct {
	Date    time.Time
	Revenue decimal.Decimal
}

// StatusCountResult represents appointment counts grouped by raw status
type StatusCountResult struct {
	Status string
	Count  int64
}

// AnalyticsRepository defines the interface for the salon-wide
// aggregation queries behind the dashboard overview. These run as SQL
// aggregates; the per-staff report engine aggregates in memory instead
// because it needs row-level data for its derived metrics.
type AnalyticsRepository interface {
	// GetRevenueBetween returns total completed-appointment revenue in
	// [from, to].
	GetRevenueBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error)

	// GetDailyRevenue returns per-day completed revenue for the last N days
	GetDailyRevenue(ctx context.Context, days int) ([]DailyRevenueResult, error)

	// GetBusiestStaff returns staff ranked by appointment count in [from, to]
	GetBusiestStaff(ctx context.Context, from, to time.Time, limit int) ([]BusiestStaffResult, error)

	// GetStatusCounts returns appointment counts by status in [from, to]
	GetStatusCounts(ctx context.Context, from, to time.Time) ([]StatusCountResult, error)

	// CountClients returns the total number of clients
	CountClients(ctx context.Context) (int64, error)

	// CountActiveEmployees returns the number of active staff members
	CountActiveEmployees(ctx context.Context) (int64, error)
}

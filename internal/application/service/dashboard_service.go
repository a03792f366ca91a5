package service

import (
	"context"
	"strings"
	"time"

	"github.com/nywele/salon-api/internal/domain/enum"
	"github.com/nywele/salon-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// DashboardService provides the salon-wide overview numbers shown on
// the dashboard landing page.
type DashboardService struct {
	analyticsRepo repository.AnalyticsRepository
	now           func() time.Time
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(analyticsRepo repository.AnalyticsRepository) *DashboardService {
	return &DashboardService{
		analyticsRepo: analyticsRepo,
		now:           time.Now,
	}
}

// DashboardStats represents the salon-wide overview
type DashboardStats struct {
	TotalClients      int64                           `json:"total_clients"`
	ActiveStaff       int64                           `json:"active_staff"`
	TodayAppointments int64                           `json:"today_appointments"`
	TodayCompleted    int64                           `json:"today_completed"`
	TodayNoShows      int64                           `json:"today_no_shows"`
	WeekRevenue       decimal.Decimal                 `json:"week_revenue"`
	MonthRevenue      decimal.Decimal                 `json:"month_revenue"`
	RevenueGrowthPct  float64                         `json:"revenue_growth_pct"`
	DailyRevenue      []DailyRevenuePoint             `json:"daily_revenue"`
	BusiestStaff      []repository.BusiestStaffResult `json:"busiest_staff"`
}

// GetDashboardStats returns the overview for the dashboard landing page
func (s *DashboardService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{
		WeekRevenue:  decimal.Zero,
		MonthRevenue: decimal.Zero,
	}

	clients, err := s.analyticsRepo.CountClients(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalClients = clients

	staff, err := s.analyticsRepo.CountActiveEmployees(ctx)
	if err != nil {
		return nil, err
	}
	stats.ActiveStaff = staff

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	statusCounts, err := s.analyticsRepo.GetStatusCounts(ctx, today, today)
	if err != nil {
		return nil, err
	}
	for _, sc := range statusCounts {
		stats.TodayAppointments += sc.Count
		switch enum.NormalizeAppointmentStatus(strings.TrimSpace(sc.Status)) {
		case enum.AppointmentStatusCompleted:
			stats.TodayCompleted += sc.Count
		case enum.AppointmentStatusNoShow:
			stats.TodayNoShows += sc.Count
		}
	}

	weekStart := today.AddDate(0, 0, -6)
	weekRevenue, err := s.analyticsRepo.GetRevenueBetween(ctx, weekStart, today)
	if err != nil {
		return nil, err
	}
	stats.WeekRevenue = weekRevenue

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthRevenue, err := s.analyticsRepo.GetRevenueBetween(ctx, monthStart, today)
	if err != nil {
		return nil, err
	}
	stats.MonthRevenue = monthRevenue

	// Growth compares this calendar month so far with the whole prior month.
	priorMonthStart := monthStart.AddDate(0, -1, 0)
	priorMonthEnd := monthStart.AddDate(0, 0, -1)
	priorMonthRevenue, err := s.analyticsRepo.GetRevenueBetween(ctx, priorMonthStart, priorMonthEnd)
	if err != nil {
		return nil, err
	}
	stats.RevenueGrowthPct = percentChange(monthRevenue.InexactFloat64(), priorMonthRevenue.InexactFloat64())

	daily, err := s.analyticsRepo.GetDailyRevenue(ctx, 7)
	if err != nil {
		return nil, err
	}
	stats.DailyRevenue = make([]DailyRevenuePoint, 0, len(daily))
	for _, d := range daily {
		stats.DailyRevenue = append(stats.DailyRevenue, DailyRevenuePoint{
			Date:    d.Date.Format(dateLayout),
			Revenue: d.Revenue,
		})
	}

	busiest, err := s.analyticsRepo.GetBusiestStaff(ctx, weekStart, today, 5)
	if err != nil {
		return nil, err
	}
	stats.BusiestStaff = busiest

	return stats, nil
}

package service

import (
	"sort"

	"github.com/nywele/salon-api/internal/domain/entity"
	"github.com/nywele/salon-api/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// revenueTotals holds the per-period revenue aggregates
type revenueTotals struct {
	Total     decimal.Decimal
	Tips      decimal.Decimal
	Completed int
	AvgTicket decimal.Decimal
}

// summarizeRevenue sums appointment revenue for one period. AvgTicket
// divides by the completed count and is zero when nothing completed.
func summarizeRevenue(appointments []entity.Appointment) revenueTotals {
	totals := revenueTotals{
		Total:     decimal.Zero,
		Tips:      decimal.Zero,
		AvgTicket: decimal.Zero,
	}

	for _, a := range appointments {
		totals.Total = totals.Total.Add(a.TotalPrice)
		totals.Tips = totals.Tips.Add(a.TipAmount)
		if a.NormalizedStatus() == enum.AppointmentStatusCompleted {
			totals.Completed++
		}
	}

	totals.Total = totals.Total.Round(2)
	totals.Tips = totals.Tips.Round(2)
	if totals.Completed > 0 {
		totals.AvgTicket = totals.Total.Div(decimal.NewFromInt(int64(totals.Completed))).Round(2)
	}
	return totals
}

// revenueChangePct applies the percent-change rule to two period totals.
func revenueChangePct(current, prior decimal.Decimal) float64 {
	return percentChange(current.InexactFloat64(), prior.InexactFloat64())
}

// dailyRevenueTrend groups the current period's appointments by calendar
// date and sums revenue per day, sorted ascending. The series is fully
// materialized: days with no appointments are simply absent.
func dailyRevenueTrend(appointments []entity.Appointment) []DailyRevenuePoint {
	byDate := make(map[string]decimal.Decimal)
	for _, a := range appointments {
		key := a.AppointmentDate.Format(dateLayout)
		byDate[key] = byDate[key].Add(a.TotalPrice)
	}

	trend := make([]DailyRevenuePoint, 0, len(byDate))
	for date, revenue := range byDate {
		trend = append(trend, DailyRevenuePoint{Date: date, Revenue: revenue.Round(2)})
	}
	sort.Slice(trend, func(i, j int) bool {
		return trend[i].Date < trend[j].Date
	})
	return trend
}

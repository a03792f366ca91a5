package service

import (
	"github.com/google/uuid"
	"github.com/nywele/salon-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// summarizeTeam computes the all-staff averages that contextualize an
// individual's report. Appointment-derived averages divide by the count
// of distinct staff with at least one appointment; metric-derived
// averages divide by the count of distinct staff with at least one
// weekly metric row. The two denominators come from different source
// tables and may legitimately differ.
func summarizeTeam(appointments []entity.Appointment, metrics []entity.StaffWeeklyMetric) TeamAverages {
	averages := TeamAverages{AvgRevenue: decimal.Zero}

	type staffAppts struct {
		revenue decimal.Decimal
		count   int
	}
	apptsByStaff := make(map[uuid.UUID]*staffAppts)
	for _, a := range appointments {
		agg, ok := apptsByStaff[a.StaffID]
		if !ok {
			agg = &staffAppts{revenue: decimal.Zero}
			apptsByStaff[a.StaffID] = agg
		}
		agg.revenue = agg.revenue.Add(a.TotalPrice)
		agg.count++
	}

	averages.StaffWithAppointments = len(apptsByStaff)
	if len(apptsByStaff) > 0 {
		totalRevenue := decimal.Zero
		totalCount := 0
		for _, agg := range apptsByStaff {
			totalRevenue = totalRevenue.Add(agg.revenue)
			totalCount += agg.count
		}
		staff := decimal.NewFromInt(int64(len(apptsByStaff)))
		averages.AvgRevenue = totalRevenue.Div(staff).Round(2)
		averages.AvgAppointments = round1(float64(totalCount) / float64(len(apptsByStaff)))
	}

	type staffMetrics struct {
		rebooking  float64
		retention  float64
		newClients int
		weeks      int
	}
	metricsByStaff := make(map[uuid.UUID]*staffMetrics)
	for _, m := range metrics {
		agg, ok := metricsByStaff[m.StaffID]
		if !ok {
			agg = &staffMetrics{}
			metricsByStaff[m.StaffID] = agg
		}
		agg.rebooking += m.RebookingRate
		agg.retention += m.RetentionRate
		agg.newClients += m.NewClients
		agg.weeks++
	}

	averages.StaffWithWeeklyMetrics = len(metricsByStaff)
	if len(metricsByStaff) > 0 {
		var rebooking, retention, newClients float64
		for _, agg := range metricsByStaff {
			weeks := float64(agg.weeks)
			rebooking += agg.rebooking / weeks
			retention += agg.retention / weeks
			newClients += float64(agg.newClients)
		}
		staff := float64(len(metricsByStaff))
		averages.AvgRebookingRate = round1(rebooking / staff)
		averages.AvgRetentionRate = round1(retention / staff)
		averages.AvgNewClients = round1(newClients / staff)
	}

	return averages
}

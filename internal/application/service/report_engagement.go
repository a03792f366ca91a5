package service

import (
	"github.com/nywele/salon-api/internal/domain/entity"
	"github.com/nywele/salon-api/internal/domain/enum"
)

// engagementForPeriod derives the client-engagement rates for one period.
//
// Rebooking rate prefers the precomputed weekly metrics; when none exist
// for the period it degrades to the raw appointment flags
// (rebooked / completed * 100). Retention rate has no raw fallback —
// the upstream rollup is the only source that tracks return visits, so
// absent metrics simply report zero.
func engagementForPeriod(metrics []entity.StaffWeeklyMetric, appointments []entity.Appointment) EngagementReport {
	report := EngagementReport{}

	if len(metrics) > 0 {
		var rebooking, retention float64
		for _, m := range metrics {
			rebooking += m.RebookingRate
			retention += m.RetentionRate
			report.NewClients += m.NewClients
		}
		weeks := float64(len(metrics))
		report.RebookingRate = round1(rebooking / weeks)
		report.RetentionRate = round1(retention / weeks)
		return report
	}

	completed, rebooked := 0, 0
	for _, a := range appointments {
		if a.NormalizedStatus() == enum.AppointmentStatusCompleted {
			completed++
		}
		if a.RebookedAtCheckout {
			rebooked++
		}
	}
	if completed > 0 {
		report.RebookingRate = round1(float64(rebooked) / float64(completed) * 100)
	}
	return report
}

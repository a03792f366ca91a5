package service

import (
	"github.com/google/uuid"
	"github.com/nywele/salon-api/internal/domain/entity"
	"github.com/nywele/salon-api/internal/domain/enum"
)

// productivitySummary holds the per-period appointment counters
type productivitySummary struct {
	Total         int
	Completed     int
	NoShows       int
	Cancelled     int
	Other         int
	Rebooked      int
	UniqueClients int
	WorkingDays   int
	AvgPerDay     float64
}

// summarizeProductivity partitions one period's appointments by
// normalized status and derives the per-working-day average. Working
// days exclude weekends and are clamped to at least 1 so the average
// never divides by zero.
func summarizeProductivity(appointments []entity.Appointment, period ReportPeriod) productivitySummary {
	summary := productivitySummary{Total: len(appointments)}

	clients := make(map[uuid.UUID]struct{})
	for _, a := range appointments {
		switch a.NormalizedStatus() {
		case enum.AppointmentStatusCompleted:
			summary.Completed++
		case enum.AppointmentStatusNoShow:
			summary.NoShows++
		case enum.AppointmentStatusCancelled:
			summary.Cancelled++
		default:
			summary.Other++
		}
		if a.RebookedAtCheckout {
			summary.Rebooked++
		}
		if a.ClientID != nil {
			clients[*a.ClientID] = struct{}{}
		}
	}
	summary.UniqueClients = len(clients)

	summary.WorkingDays = BusinessDaysBetween(period.From, period.To)
	if summary.WorkingDays < 1 {
		summary.WorkingDays = 1
	}
	summary.AvgPerDay = round1(float64(summary.Total) / float64(summary.WorkingDays))

	return summary
}

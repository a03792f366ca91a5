package service

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/nywele/salon-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// atRiskAfter is how long a client can go without a visit before the
// report flags them as at risk of churning.
const atRiskAfter = 60 * 24 * time.Hour

// topClients ranks the period's clients by revenue. Appointments with no
// client id are skipped. Names resolve from the lookup map, falling back
// to "Unknown" for clients the secondary lookup could not find; the
// at-risk flag marks clients whose last visit is more than 60 days
// before now. Ties break by client id so equal revenues rank
// deterministically.
func topClients(appointments []entity.Appointment, names map[uuid.UUID]string, now time.Time, limit int) []ClientRanking {
	type clientAgg struct {
		visits    int
		revenue   decimal.Decimal
		lastVisit time.Time
	}
	byClient := make(map[uuid.UUID]*clientAgg)

	for _, a := range appointments {
		if a.ClientID == nil {
			continue
		}
		agg, ok := byClient[*a.ClientID]
		if !ok {
			agg = &clientAgg{revenue: decimal.Zero}
			byClient[*a.ClientID] = agg
		}
		agg.visits++
		agg.revenue = agg.revenue.Add(a.TotalPrice)
		if a.AppointmentDate.After(agg.lastVisit) {
			agg.lastVisit = a.AppointmentDate
		}
	}

	cutoff := now.Add(-atRiskAfter)
	rankings := make([]ClientRanking, 0, len(byClient))
	for clientID, agg := range byClient {
		name, ok := names[clientID]
		if !ok || name == "" {
			name = "Unknown"
		}
		rankings = append(rankings, ClientRanking{
			ClientID:  clientID,
			Name:      name,
			Visits:    agg.visits,
			Revenue:   agg.revenue.Round(2),
			LastVisit: agg.lastVisit.Format(dateLayout),
			AtRisk:    agg.lastVisit.Before(cutoff),
		})
	}

	sort.Slice(rankings, func(i, j int) bool {
		cmp := rankings[i].Revenue.Cmp(rankings[j].Revenue)
		if cmp != 0 {
			return cmp > 0
		}
		return rankings[i].ClientID.String() < rankings[j].ClientID.String()
	})

	if len(rankings) > limit {
		rankings = rankings[:limit]
	}
	return rankings
}

package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nywele/salon-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopClients(t *testing.T) {
	now := day(2024, time.April, 1)
	clientA := uuid.New()
	clientB := uuid.New()

	appointments := []entity.Appointment{
		clientAppt(clientA, "completed", "100.00", day(2024, time.March, 10)),
		clientAppt(clientA, "completed", "80.00", day(2024, time.March, 20)),
		clientAppt(clientB, "completed", "60.00", day(2024, time.March, 15)),
		appt("completed", "500.00", "0", day(2024, time.March, 15)), // walk-in, skipped
	}
	names := map[uuid.UUID]string{
		clientA: "Amina Odhiambo",
		clientB: "Grace Wanjiru",
	}

	rankings := topClients(appointments, names, now, 10)
	require.Len(t, rankings, 2)

	assert.Equal(t, clientA, rankings[0].ClientID)
	assert.Equal(t, "Amina Odhiambo", rankings[0].Name)
	assert.Equal(t, 2, rankings[0].Visits)
	assert.Equal(t, "180", rankings[0].Revenue.String())
	assert.Equal(t, "2024-03-20", rankings[0].LastVisit)
	assert.False(t, rankings[0].AtRisk)

	assert.Equal(t, clientB, rankings[1].ClientID)
}

func TestTopClients_UnknownName(t *testing.T) {
	clientID := uuid.New()
	appointments := []entity.Appointment{
		clientAppt(clientID, "completed", "50.00", day(2024, time.March, 1)),
	}

	rankings := topClients(appointments, map[uuid.UUID]string{}, day(2024, time.March, 2), 10)
	require.Len(t, rankings, 1)
	assert.Equal(t, "Unknown", rankings[0].Name)
}

func TestTopClients_AtRiskFlag(t *testing.T) {
	now := day(2024, time.June, 1)
	stale := uuid.New()
	recent := uuid.New()

	appointments := []entity.Appointment{
		clientAppt(stale, "completed", "100.00", day(2024, time.January, 15)),
		clientAppt(recent, "completed", "50.00", day(2024, time.May, 20)),
	}

	rankings := topClients(appointments, map[uuid.UUID]string{}, now, 10)
	require.Len(t, rankings, 2)

	byID := map[uuid.UUID]ClientRanking{}
	for _, r := range rankings {
		byID[r.ClientID] = r
	}
	assert.True(t, byID[stale].AtRisk)
	assert.False(t, byID[recent].AtRisk)
}

func TestTopClients_Limit(t *testing.T) {
	now := day(2024, time.April, 1)
	var appointments []entity.Appointment
	for i := 0; i < 15; i++ {
		appointments = append(appointments, clientAppt(uuid.New(), "completed", "10.00", day(2024, time.March, 1)))
	}

	rankings := topClients(appointments, map[uuid.UUID]string{}, now, 10)
	assert.Len(t, rankings, 10)
}

func TestTopClients_DeterministicTieBreak(t *testing.T) {
	now := day(2024, time.April, 1)
	clientA := uuid.MustParse("00000000-0000-0000-0000-00000000000a")
	clientB := uuid.MustParse("00000000-0000-0000-0000-00000000000b")

	appointments := []entity.Appointment{
		clientAppt(clientB, "completed", "50.00", day(2024, time.March, 1)),
		clientAppt(clientA, "completed", "50.00", day(2024, time.March, 1)),
	}

	rankings := topClients(appointments, map[uuid.UUID]string{}, now, 10)
	require.Len(t, rankings, 2)
	assert.Equal(t, clientA, rankings[0].ClientID)
	assert.Equal(t, clientB, rankings[1].ClientID)
}

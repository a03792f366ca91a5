package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nywele/salon-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestSummarizeTeam(t *testing.T) {
	staffA := uuid.New()
	staffB := uuid.New()
	d := day(2024, time.March, 4)

	a1 := appt("completed", "200.00", "0", d)
	a1.StaffID = staffA
	a2 := appt("completed", "100.00", "0", d)
	a2.StaffID = staffA
	b1 := appt("completed", "100.00", "0", d)
	b1.StaffID = staffB

	averages := summarizeTeam([]entity.Appointment{a1, a2, b1}, nil)

	assert.Equal(t, 2, averages.StaffWithAppointments)
	// (300 + 100) / 2 staff
	assert.Equal(t, "200", averages.AvgRevenue.String())
	// 3 appointments / 2 staff
	assert.Equal(t, 1.5, averages.AvgAppointments)
	assert.Equal(t, 0, averages.StaffWithWeeklyMetrics)
}

func TestSummarizeTeam_IndependentDenominators(t *testing.T) {
	staffA := uuid.New()
	staffB := uuid.New()
	staffC := uuid.New()
	d := day(2024, time.March, 4)

	a1 := appt("completed", "100.00", "0", d)
	a1.StaffID = staffA

	// Only B and C have weekly metric rows; A contributes appointments only.
	metrics := []entity.StaffWeeklyMetric{
		weeklyMetric(staffB, d, 60, 80, 2),
		weeklyMetric(staffB, day(2024, time.March, 11), 80, 60, 4),
		weeklyMetric(staffC, d, 40, 40, 0),
	}

	averages := summarizeTeam([]entity.Appointment{a1}, metrics)

	assert.Equal(t, 1, averages.StaffWithAppointments)
	assert.Equal(t, 2, averages.StaffWithWeeklyMetrics)

	// B averages 70/70 over two weeks, C has 40/40; team average of the
	// per-staff averages.
	assert.Equal(t, 55.0, averages.AvgRebookingRate)
	assert.Equal(t, 55.0, averages.AvgRetentionRate)
	// B contributed 6 new clients, C none; over 2 staff.
	assert.Equal(t, 3.0, averages.AvgNewClients)
}

func TestSummarizeTeam_Empty(t *testing.T) {
	averages := summarizeTeam(nil, nil)

	assert.Equal(t, 0, averages.StaffWithAppointments)
	assert.Equal(t, 0, averages.StaffWithWeeklyMetrics)
	assert.True(t, averages.AvgRevenue.IsZero())
	assert.Equal(t, 0.0, averages.AvgAppointments)
}

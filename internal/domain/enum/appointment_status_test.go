package enum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAppointmentStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want AppointmentStatus
	}{
		{"completed", AppointmentStatusCompleted},
		{"Completed", AppointmentStatusCompleted},
		{"  DONE  ", AppointmentStatusCompleted},
		{"complete", AppointmentStatusCompleted},
		{"cancelled", AppointmentStatusCancelled},
		{"canceled", AppointmentStatusCancelled},
		{"CANCEL", AppointmentStatusCancelled},
		{"no_show", AppointmentStatusNoShow},
		{"noshow", AppointmentStatusNoShow},
		{"no-show", AppointmentStatusNoShow},
		{"No Show", AppointmentStatusNoShow},
		{"in_progress", AppointmentStatusInProgress},
		{"confirmed", AppointmentStatusInProgress},
		{"booked", AppointmentStatusInProgress},
		{"pending", AppointmentStatusInProgress},
		{"", AppointmentStatusUnclassified},
		{"something weird", AppointmentStatusUnclassified},
		{"rescheduled", AppointmentStatusUnclassified},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeAppointmentStatus(tt.raw))
		})
	}
}

func TestAppointmentStatus_String(t *testing.T) {
	assert.Equal(t, "no_show", AppointmentStatusNoShow.String())
}

package enum

import "strings"

// AppointmentStatus is the canonical lifecycle state of an appointment.
// The booking subsystem writes free-text statuses with inconsistent
// casing and spelling; Normalize folds all known variants into one of
// these values.
type AppointmentStatus string

const (
	AppointmentStatusCompleted    AppointmentStatus = "completed"
	AppointmentStatusCancelled    AppointmentStatus = "cancelled"
	AppointmentStatusNoShow       AppointmentStatus = "no_show"
	AppointmentStatusInProgress   AppointmentStatus = "in_progress"
	AppointmentStatusUnclassified AppointmentStatus = "unclassified"
)

func (s AppointmentStatus) String() string {
	return string(s)
}

// NormalizeAppointmentStatus maps a raw status string to its canonical
// value. Matching is case-insensitive and tolerant of the no-show
// spelling variants ("no_show", "noshow", "no-show", "no show").
// Unknown values map to AppointmentStatusUnclassified rather than
// silently matching nothing.
func NormalizeAppointmentStatus(raw string) AppointmentStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "completed", "complete", "done":
		return AppointmentStatusCompleted
	case "cancelled", "canceled", "cancel":
		return AppointmentStatusCancelled
	case "no_show", "noshow", "no-show", "no show":
		return AppointmentStatusNoShow
	case "in_progress", "in-progress", "confirmed", "checked_in", "booked", "pending":
		return AppointmentStatusInProgress
	default:
		return AppointmentStatusUnclassified
	}
}

package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nywele/salon-api/internal/domain/entity"
	"github.com/nywele/salon-api/pkg/pagination"
)

// AppointmentFilterParams represents filter options for listing appointments
type AppointmentFilterParams struct {
	Pagination *pagination.PaginationParams
	StaffID    *uuid.UUID
	ClientID   *uuid.UUID
	Status     *string
	DateFrom   *time.Time
	DateTo     *time.Time
}

// AppointmentRepository defines the interface for appointment data operations.
// The date-range readers are the raw-data fetchers of the staff report
// engine; from/to are inclusive calendar dates.
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)
	Update(ctx context.Context, appointment *entity.Appointment) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *AppointmentFilterParams) ([]entity.Appointment, int64, error)

	// ListForStaffBetween returns one staff member's appointments with
	// appointment_date in [from, to].
	ListForStaffBetween(ctx context.Context, staffID uuid.UUID, from, to time.Time) ([]entity.Appointment, error)

	// ListAllBetween returns every staff member's appointments in
	// [from, to]; used for team benchmarking.
	ListAllBetween(ctx context.Context, from, to time.Time) ([]entity.Appointment, error)
}

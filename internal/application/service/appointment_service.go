package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nywele/salon-api/internal/domain/entity"
	"github.com/nywele/salon-api/internal/domain/repository"
	"github.com/nywele/salon-api/pkg/apperror"
	"github.com/nywele/salon-api/pkg/pagination"
	"github.com/shopspring/decimal"
)

// AppointmentService handles appointment operations
type AppointmentService struct {
	appointmentRepo repository.AppointmentRepository
	employeeRepo    repository.EmployeeRepository
	clientRepo      repository.ClientRepository
}

// NewAppointmentService creates a new appointment service
func NewAppointmentService(
	appointmentRepo repository.AppointmentRepository,
	employeeRepo repository.EmployeeRepository,
	clientRepo repository.ClientRepository,
) *AppointmentService {
	return &AppointmentService{
		appointmentRepo: appointmentRepo,
		employeeRepo:    employeeRepo,
		clientRepo:      clientRepo,
	}
}

// CreateAppointmentInput represents the create appointment input
type CreateAppointmentInput struct {
	LocationID         uuid.UUID
	StaffID            uuid.UUID
	ClientID           *uuid.UUID
	ServiceName        string
	AppointmentDate    time.Time
	TotalPrice         decimal.Decimal
	TipAmount          decimal.Decimal
	Status             string
	RebookedAtCheckout bool
}

// CreateAppointment creates a new appointment
func (s *AppointmentService) CreateAppointment(ctx context.Context, input *CreateAppointmentInput) (*entity.Appointment, error) {
	staff, err := s.employeeRepo.GetByID(ctx, input.StaffID)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, apperror.NewNotFoundError("Employee")
	}

	if input.ClientID != nil {
		client, err := s.clientRepo.GetByID(ctx, *input.ClientID)
		if err != nil {
			return nil, err
		}
		if client == nil {
			return nil, apperror.NewNotFoundError("Client")
		}
	}

	appointment := &entity.Appointment{
		LocationID:         input.LocationID,
		StaffID:            input.StaffID,
		ClientID:           input.ClientID,
		ServiceName:        input.ServiceName,
		AppointmentDate:    input.AppointmentDate,
		TotalPrice:         input.TotalPrice,
		TipAmount:          input.TipAmount,
		Status:             input.Status,
		RebookedAtCheckout: input.RebookedAtCheckout,
	}

	if err := s.appointmentRepo.Create(ctx, appointment); err != nil {
		return nil, err
	}

	return appointment, nil
}

// GetAppointment retrieves an appointment by ID
func (s *AppointmentService) GetAppointment(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, apperror.NewNotFoundError("Appointment")
	}
	return appointment, nil
}

// ListAppointments lists appointments with filters and pagination
func (s *AppointmentService) ListAppointments(ctx context.Context, params *repository.AppointmentFilterParams) (*pagination.PaginatedResult[entity.Appointment], error) {
	if params.DateFrom != nil && params.DateTo != nil && params.DateTo.Before(*params.DateFrom) {
		return nil, apperror.NewBadRequestError("date range end precedes start")
	}

	appointments, total, err := s.appointmentRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(appointments, pag), nil
}

// UpdateAppointmentInput represents the update appointment input
type UpdateAppointmentInput struct {
	ID                 uuid.UUID
	ServiceName        *string
	AppointmentDate    *time.Time
	TotalPrice         *decimal.Decimal
	TipAmount          *decimal.Decimal
	Status             *string
	RebookedAtCheckout *bool
}

// UpdateAppointment updates an appointment
func (s *AppointmentService) UpdateAppointment(ctx context.Context, input *UpdateAppointmentInput) (*entity.Appointment, error) {
	appointment, err := s.appointmentRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, apperror.NewNotFoundError("Appointment")
	}

	if input.ServiceName != nil {
		appointment.ServiceName = *input.ServiceName
	}
	if input.AppointmentDate != nil {
		appointment.AppointmentDate = *input.AppointmentDate
	}
	if input.TotalPrice != nil {
		appointment.TotalPrice = *input.TotalPrice
	}
	if input.TipAmount != nil {
		appointment.TipAmount = *input.TipAmount
	}
	if input.Status != nil {
		appointment.Status = *input.Status
	}
	if input.RebookedAtCheckout != nil {
		appointment.RebookedAtCheckout = *input.RebookedAtCheckout
	}

	if err := s.appointmentRepo.Update(ctx, appointment); err != nil {
		return nil, err
	}

	return appointment, nil
}

// DeleteAppointment deletes an appointment
func (s *AppointmentService) DeleteAppointment(ctx context.Context, id uuid.UUID) error {
	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if appointment == nil {
		return apperror.NewNotFoundError("Appointment")
	}
	return s.appointmentRepo.Delete(ctx, id)
}

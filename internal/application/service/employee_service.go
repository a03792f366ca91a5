package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/nywele/salon-api/internal/domain/entity"
	"github.com/nywele/salon-api/internal/domain/repository"
	"github.com/nywele/salon-api/pkg/apperror"
	"github.com/nywele/salon-api/pkg/pagination"
)

// EmployeeService handles staff profile operations
type EmployeeService struct {
	employeeRepo repository.EmployeeRepository
	locationRepo repository.LocationRepository
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(employeeRepo repository.EmployeeRepository, locationRepo repository.LocationRepository) *EmployeeService {
	return &EmployeeService{
		employeeRepo: employeeRepo,
		locationRepo: locationRepo,
	}
}

// CreateEmployeeInput represents the create employee input
type CreateEmployeeInput struct {
	LocationID uuid.UUID
	FirstName  string
	LastName   string
	Role       string
	Email      *string
	Photo      *string
}

// CreateEmployee creates a new staff member
func (s *EmployeeService) CreateEmployee(ctx context.Context, input *CreateEmployeeInput) (*entity.Employee, error) {
	location, err := s.locationRepo.GetByID(ctx, input.LocationID)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, apperror.NewNotFoundError("Location")
	}

	employee := &entity.Employee{
		LocationID: input.LocationID,
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		Role:       input.Role,
		Email:      input.Email,
		Photo:      input.Photo,
		Active:     true,
	}

	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		return nil, err
	}

	return employee, nil
}

// GetEmployee retrieves a staff member by ID
func (s *EmployeeService) GetEmployee(ctx context.Context, id uuid.UUID) (*entity.Employee, error) {
	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, apperror.NewNotFoundError("Employee")
	}
	return employee, nil
}

// ListEmployees lists staff members with pagination and search
func (s *EmployeeService) ListEmployees(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Employee], error) {
	employees, total, err := s.employeeRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(employees, pag), nil
}

// UpdateEmployeeInput represents the update employee input
type UpdateEmployeeInput struct {
	ID        uuid.UUID
	FirstName *string
	LastName  *string
	Role      *string
	Email     *string
	Photo     *string
	Active    *bool
}

// UpdateEmployee updates a staff member
func (s *EmployeeService) UpdateEmployee(ctx context.Context, input *UpdateEmployeeInput) (*entity.Employee, error) {
	employee, err := s.employeeRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, apperror.NewNotFoundError("Employee")
	}

	if input.FirstName != nil {
		employee.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		employee.LastName = *input.LastName
	}
	if input.Role != nil {
		employee.Role = *input.Role
	}
	if input.Email != nil {
		employee.Email = input.Email
	}
	if input.Photo != nil {
		employee.Photo = input.Photo
	}
	if input.Active != nil {
		employee.Active = *input.Active
	}

	if err := s.employeeRepo.Update(ctx, employee); err != nil {
		return nil, err
	}

	return employee, nil
}

// DeleteEmployee deletes a staff member
func (s *EmployeeService) DeleteEmployee(ctx context.Context, id uuid.UUID) error {
	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if employee == nil {
		return apperror.NewNotFoundError("Employee")
	}
	return s.employeeRepo.Delete(ctx, id)
}

// ConnectPOS links a staff member to the identifier the point-of-sale
// system uses for them. Reports pick up the new identity on the next
// build.
func (s *EmployeeService) ConnectPOS(ctx context.Context, employeeID uuid.UUID, posStaffID string) (*entity.StaffPOSLink, error) {
	if posStaffID == "" {
		return nil, apperror.NewBadRequestError("POS staff id is required")
	}

	employee, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, apperror.NewNotFoundError("Employee")
	}

	link := &entity.StaffPOSLink{
		EmployeeID: employeeID,
		POSStaffID: posStaffID,
		Active:     true,
	}
	if err := s.employeeRepo.UpsertPOSLink(ctx, link); err != nil {
		return nil, err
	}

	return link, nil
}

package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/nywele/salon-api/internal/domain/entity"
	"github.com/nywele/salon-api/pkg/pagination"
)

// EmployeeRepository defines the interface for staff profile and
// POS-identity data operations.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *entity.Employee) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Employee, error)
	Update(ctx context.Context, employee *entity.Employee) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Employee, int64, error)

	// GetPOSLink returns the active POS mapping for an employee, or
	// (nil, nil) when the employee has never been connected to the POS.
	GetPOSLink(ctx context.Context, employeeID uuid.UUID) (*entity.StaffPOSLink, error)

	// UpsertPOSLink connects an employee to a POS staff identifier,
	// replacing any existing mapping for that employee.
	UpsertPOSLink(ctx context.Context, link *entity.StaffPOSLink) error
}

// LocationRepository defines the interface for salon location lookups
type LocationRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Location, error)
}

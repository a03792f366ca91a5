package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nywele/salon-api/internal/domain/entity"
)

// WeeklyMetricRepository defines the interface for reading precomputed
// weekly performance rollups. A week overlaps [from, to] when its
// week_start falls in [from-6d, to]; the implementations apply that
// window so callers can pass plain period bounds.
type WeeklyMetricRepository interface {
	// ListForStaffBetween returns one staff member's weekly metric rows
	// for the weeks overlapping [from, to].
	ListForStaffBetween(ctx context.Context, staffID uuid.UUID, from, to time.Time) ([]entity.StaffWeeklyMetric, error)

	// ListAllBetween returns every staff member's weekly metric rows
	// overlapping [from, to]; used for team benchmarking.
	ListAllBetween(ctx context.Context, from, to time.Time) ([]entity.StaffWeeklyMetric, error)
}

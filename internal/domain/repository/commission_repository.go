package repository

import (
	"context"

	"github.com/nywele/salon-api/internal/domain/entity"
)

// CommissionTierRepository defines the interface for the commission
// schedule configuration.
type CommissionTierRepository interface {
	// ListActive returns the active tiers ordered by threshold ascending.
	ListActive(ctx context.Context) ([]entity.CommissionTier, error)
}

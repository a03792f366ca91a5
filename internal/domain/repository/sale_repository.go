package repository

import (
	"context"
	"time"

	"github.com/nywele/salon-api/internal/domain/entity"
)

// SaleRepository defines the interface for POS transaction line item reads.
// Line items are keyed by the external POS staff id, not the internal
// employee id; callers resolve the mapping first.
type SaleRepository interface {
	// ListLineItemsForPOSStaffBetween returns line items with
	// transaction_date in [from, to] for one POS staff id.
	ListLineItemsForPOSStaffBetween(ctx context.Context, posStaffID string, from, to time.Time) ([]entity.SaleLineItem, error)
}

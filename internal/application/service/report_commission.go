package service

import (
	"github.com/nywele/salon-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// calculateCommission applies the tiered commission schedule to the
// period's service and product revenue. The qualifying tier is the one
// with the highest threshold not exceeding total revenue (ties break to
// the highest threshold); its distinct service and product rates apply
// to each stream independently. When no tier qualifies — zero revenue
// against a schedule with a positive floor — the result is a defined
// zero-commission fallback with an empty tier name.
func calculateCommission(tiers []entity.CommissionTier, serviceRevenue, productRevenue decimal.Decimal) CommissionReport {
	report := CommissionReport{
		ServiceCommission: decimal.Zero,
		ProductCommission: decimal.Zero,
		Total:             decimal.Zero,
	}

	total := serviceRevenue.Add(productRevenue)

	var selected *entity.CommissionTier
	for i := range tiers {
		tier := &tiers[i]
		if tier.ThresholdRevenue.GreaterThan(total) {
			continue
		}
		if selected == nil || tier.ThresholdRevenue.GreaterThanOrEqual(selected.ThresholdRevenue) {
			selected = tier
		}
	}
	if selected == nil {
		return report
	}

	report.TierName = selected.Name
	report.ServiceCommission = serviceRevenue.Mul(selected.ServiceRate).Round(2)
	report.ProductCommission = productRevenue.Mul(selected.ProductRate).Round(2)
	report.Total = report.ServiceCommission.Add(report.ProductCommission)
	return report
}

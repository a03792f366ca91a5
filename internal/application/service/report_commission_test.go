package service

import (
	"testing"

	"github.com/nywele/salon-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func testTiers() []entity.CommissionTier {
	return []entity.CommissionTier{
		{Name: "Base", ThresholdRevenue: money("0"), ServiceRate: money("0.10"), ProductRate: money("0.05"), Active: true},
		{Name: "Silver", ThresholdRevenue: money("1000"), ServiceRate: money("0.15"), ProductRate: money("0.08"), Active: true},
		{Name: "Gold", ThresholdRevenue: money("2500"), ServiceRate: money("0.20"), ProductRate: money("0.10"), Active: true},
		{Name: "Platinum", ThresholdRevenue: money("5000"), ServiceRate: money("0.25"), ProductRate: money("0.12"), Active: true},
	}
}

func TestCalculateCommission_SilverTier(t *testing.T) {
	// 800 service + 300 product = 1100 total qualifies for Silver.
	report := calculateCommission(testTiers(), money("800"), money("300"))

	assert.Equal(t, "Silver", report.TierName)
	assert.Equal(t, "120", report.ServiceCommission.String())
	assert.Equal(t, "24", report.ProductCommission.String())
	assert.Equal(t, "144", report.Total.String())
}

func TestCalculateCommission_ExactThresholdQualifies(t *testing.T) {
	report := calculateCommission(testTiers(), money("1000"), money("0"))
	assert.Equal(t, "Silver", report.TierName)
}

func TestCalculateCommission_HighestQualifyingTierWins(t *testing.T) {
	report := calculateCommission(testTiers(), money("4000"), money("1500"))
	assert.Equal(t, "Platinum", report.TierName)
}

func TestCalculateCommission_UnorderedTiers(t *testing.T) {
	tiers := testTiers()
	tiers[0], tiers[3] = tiers[3], tiers[0]

	report := calculateCommission(tiers, money("1200"), money("0"))
	assert.Equal(t, "Silver", report.TierName)
}

func TestCalculateCommission_NoQualifyingTier(t *testing.T) {
	tiers := []entity.CommissionTier{
		{Name: "Starter", ThresholdRevenue: money("500"), ServiceRate: money("0.10"), ProductRate: money("0.05"), Active: true},
	}

	report := calculateCommission(tiers, money("100"), money("50"))

	assert.Equal(t, "", report.TierName)
	assert.True(t, report.ServiceCommission.IsZero())
	assert.True(t, report.ProductCommission.IsZero())
	assert.True(t, report.Total.IsZero())
}

func TestCalculateCommission_EmptySchedule(t *testing.T) {
	report := calculateCommission(nil, money("800"), money("300"))
	assert.Equal(t, "", report.TierName)
	assert.True(t, report.Total.IsZero())
}

func TestCalculateCommission_MonotonicAcrossBoundary(t *testing.T) {
	// Crossing a threshold never reduces the payout.
	below := calculateCommission(testTiers(), money("999"), money("0"))
	above := calculateCommission(testTiers(), money("1000"), money("0"))

	assert.True(t, above.Total.GreaterThanOrEqual(below.Total))
}

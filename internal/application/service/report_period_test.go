package service

import (
	"testing"
	"time"

	"github.com/nywele/salon-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveReportPeriods_WeekRange(t *testing.T) {
	current, prior, twoPrior, err := ResolveReportPeriods(day(2024, time.March, 8), day(2024, time.March, 14))
	require.NoError(t, err)

	assert.Equal(t, day(2024, time.March, 8), current.From)
	assert.Equal(t, day(2024, time.March, 14), current.To)
	assert.Equal(t, day(2024, time.March, 1), prior.From)
	assert.Equal(t, day(2024, time.March, 7), prior.To)
	assert.Equal(t, day(2024, time.February, 23), twoPrior.From)
	assert.Equal(t, day(2024, time.February, 29), twoPrior.To)
}

func TestResolveReportPeriods_SingleDay(t *testing.T) {
	current, prior, twoPrior, err := ResolveReportPeriods(day(2024, time.May, 10), day(2024, time.May, 10))
	require.NoError(t, err)

	assert.Equal(t, 1, current.Days())
	assert.Equal(t, day(2024, time.May, 9), prior.From)
	assert.Equal(t, day(2024, time.May, 9), prior.To)
	assert.Equal(t, day(2024, time.May, 8), twoPrior.From)
}

func TestResolveReportPeriods_ContiguousEqualWindows(t *testing.T) {
	// A 31-day window straddling a quarter boundary still yields three
	// back-to-back equal-length periods.
	current, prior, twoPrior, err := ResolveReportPeriods(day(2024, time.March, 15), day(2024, time.April, 14))
	require.NoError(t, err)

	assert.Equal(t, current.Days(), prior.Days())
	assert.Equal(t, prior.Days(), twoPrior.Days())
	assert.Equal(t, current.From.AddDate(0, 0, -1), prior.To)
	assert.Equal(t, prior.From.AddDate(0, 0, -1), twoPrior.To)
}

func TestResolveReportPeriods_StripsTimeOfDay(t *testing.T) {
	from := time.Date(2024, time.June, 1, 13, 45, 10, 0, time.UTC)
	to := time.Date(2024, time.June, 7, 2, 0, 0, 0, time.UTC)

	current, _, _, err := ResolveReportPeriods(from, to)
	require.NoError(t, err)

	assert.Equal(t, day(2024, time.June, 1), current.From)
	assert.Equal(t, 7, current.Days())
}

func TestResolveReportPeriods_InvalidRange(t *testing.T) {
	_, _, _, err := ResolveReportPeriods(day(2024, time.March, 14), day(2024, time.March, 8))
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, 400, appErr.Code)
}

func TestBusinessDaysBetween(t *testing.T) {
	// Mon 2024-03-04 through Sun 2024-03-10
	assert.Equal(t, 5, BusinessDaysBetween(day(2024, time.March, 4), day(2024, time.March, 10)))
	// Weekend only
	assert.Equal(t, 0, BusinessDaysBetween(day(2024, time.March, 9), day(2024, time.March, 10)))
	// Single weekday
	assert.Equal(t, 1, BusinessDaysBetween(day(2024, time.March, 6), day(2024, time.March, 6)))
}

func TestPercentChange(t *testing.T) {
	assert.Equal(t, 50.0, percentChange(150, 100))
	assert.Equal(t, -20.0, percentChange(80, 100))
	assert.Equal(t, 100.0, percentChange(42, 0))
	assert.Equal(t, 0.0, percentChange(0, 0))
	assert.Equal(t, -100.0, percentChange(0, 250))
}

package service

import (
	"math"
	"time"

	"github.com/nywele/salon-api/pkg/apperror"
)

const dateLayout = "2006-01-02"

// ReportPeriod is an inclusive calendar date range
type ReportPeriod struct {
	From time.Time
	To   time.Time
}

// Days returns the number of calendar days covered by the period.
func (p ReportPeriod) Days() int {
	return int(p.To.Sub(p.From).Hours()/24) + 1
}

// Contains reports whether d falls inside the period.
func (p ReportPeriod) Contains(d time.Time) bool {
	d = normalizeDate(d)
	return !d.Before(p.From) && !d.After(p.To)
}

// normalizeDate strips the time-of-day component so period arithmetic
// works on whole calendar days regardless of the caller's clock.
func normalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ResolveReportPeriods derives the three aligned comparison windows from
// one requested range: current = [from, to], prior immediately precedes
// it with the same day-count, twoPrior precedes prior. The three windows
// are always contiguous, non-overlapping and equal in length, including
// across month and quarter boundaries.
func ResolveReportPeriods(from, to time.Time) (current, prior, twoPrior ReportPeriod, err error) {
	from = normalizeDate(from)
	to = normalizeDate(to)
	if to.Before(from) {
		return current, prior, twoPrior, apperror.NewBadRequestError("date range end precedes start")
	}

	span := int(to.Sub(from).Hours()/24) + 1

	current = ReportPeriod{From: from, To: to}
	prior = ReportPeriod{
		From: from.AddDate(0, 0, -span),
		To:   from.AddDate(0, 0, -1),
	}
	twoPrior = ReportPeriod{
		From: from.AddDate(0, 0, -2*span),
		To:   from.AddDate(0, 0, -span-1),
	}
	return current, prior, twoPrior, nil
}

// BusinessDaysBetween counts the weekdays in [from, to] inclusive.
// Callers computing per-day averages clamp the result to at least 1.
func BusinessDaysBetween(from, to time.Time) int {
	from = normalizeDate(from)
	to = normalizeDate(to)
	if to.Before(from) {
		return 0
	}

	days := 0
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		switch d.Weekday() {
		case time.Saturday, time.Sunday:
		default:
			days++
		}
	}
	return days
}

// percentChange computes week-over-week style growth. A prior of zero
// with non-zero current reports +100% rather than dividing by zero;
// two zeros report 0%.
func percentChange(current, prior float64) float64 {
	if prior == 0 {
		if current == 0 {
			return 0
		}
		return 100
	}
	return round1((current - prior) / prior * 100)
}

// round1 rounds to one decimal place.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// clamp bounds x to [lo, hi].
func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

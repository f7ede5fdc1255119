// Package recurrence is the canonical projection engine for collection
// schedules. The admin preview, the website builder, and the mobile app all
// used to carry their own copy of this date math and drifted; this package
// is the single implementation they now share through the API.
//
// Everything here is a pure function of its inputs. The reference date
// ("today") is always an explicit parameter — nothing in this package reads
// the clock — so projections are deterministic and testable.
package recurrence

import (
	"time"

	"github.com/pcharbonneau/muniboard/internal/domain"
)

// Next returns the next calendar date on or after today on which the rule's
// collection occurs. If today itself satisfies the rule, today is returned:
// "collection is today" is a valid result, not "next week".
//
// zone is the schedule map for the rule's zone and is consulted only to
// resolve a monthly rule's piggyback reference. Resolution is single-hop:
// the referenced rule's own piggybackOn is ignored, so reference cycles
// terminate trivially. A dangling reference degrades to the rule's own
// fields.
//
// Next never fails. A biweekly or monthly rule with a missing anchor — a
// configuration error that validation should have caught upstream — degrades
// to the weekly candidate rather than propagating an error into a
// resident-facing render path.
func Next(rule domain.RecurrenceRule, zone domain.ZoneSchedule, today domain.Date) domain.Date {
	dow := ((rule.DayOfWeek % 7) + 7) % 7 // clamp out-of-range input, never panic
	start := rule.StartDate

	if rule.Frequency == domain.FrequencyMonthly && rule.PiggybackOn != "" {
		if ref, ok := zone[rule.PiggybackOn]; ok {
			dow = ((ref.DayOfWeek % 7) + 7) % 7
			start = ref.StartDate
		}
	}

	// Weekly baseline: the first occurrence of dow on or after today.
	// This is also the fail-closed fallback for every degraded case below.
	weekly := today.AddDays((dow - int(today.Weekday()) + 7) % 7)

	switch rule.Frequency {
	case domain.FrequencyBiweekly:
		if start == nil || start.IsZero() {
			return weekly
		}
		return alignParity(weekly, *start)

	case domain.FrequencyMonthly:
		if start == nil || start.IsZero() {
			return weekly
		}
		// "Monthly" here is not calendar-monthly: it is the first
		// parity-aligned occurrence of dow on or after the 1st of the
		// current month, else of the next month.
		for offset := 0; offset <= 1; offset++ {
			monthStart := domain.NewDate(today.Year, today.Month+time.Month(offset), 1)
			diff := (dow - int(monthStart.Weekday()) + 7) % 7
			first := alignParity(monthStart.AddDays(diff), *start)
			if !first.Before(today) {
				return first
			}
		}
		// Unreachable given the two-month window, but guard anyway.
		return weekly

	default:
		return weekly
	}
}

// alignParity pushes candidate one week forward when it falls on the odd
// week relative to start. The week difference is floored toward negative
// infinity so candidates before the anchor still resolve to a consistent
// parity instead of flipping sign.
func alignParity(candidate, start domain.Date) domain.Date {
	weeks := floorDiv(start.DaysUntil(candidate), 7)
	if ((weeks%2)+2)%2 != 0 {
		return candidate.AddDays(7)
	}
	return candidate
}

// floorDiv divides a by b rounding toward negative infinity.
// Go's integer division truncates toward zero, which would give
// -1/7 == 0 instead of the -1 the parity math needs.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

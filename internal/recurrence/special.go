package recurrence

import (
	"sort"

	"github.com/pcharbonneau/muniboard/internal/domain"
)

// View selects which slice of the one-off event list a caller wants.
type View string

const (
	ViewUpcoming View = "upcoming"
	ViewPast     View = "past"
	ViewAll      View = "all"
)

// Valid reports whether v is a known view.
func (v View) Valid() bool {
	switch v {
	case ViewUpcoming, ViewPast, ViewAll:
		return true
	}
	return false
}

// FilterSpecial selects and orders one-off collection events relative to
// today. Comparison is date-only; an event dated today is upcoming.
//
//   - upcoming: date >= today, ascending.
//   - past:     date <  today, descending (most recently past first).
//   - all:      everything, ascending — the same direction as upcoming, so
//     combined displays read consistently.
//
// When zoneID is non-empty, events restricted to other zones are dropped;
// an event with no zone list applies everywhere. The input slice is never
// mutated.
func FilterSpecial(list []domain.SpecialCollection, view View, zoneID string, today domain.Date) []domain.SpecialCollection {
	out := make([]domain.SpecialCollection, 0, len(list))
	for _, sc := range list {
		if zoneID != "" && !sc.AppliesToZone(zoneID) {
			continue
		}
		switch view {
		case ViewUpcoming:
			if sc.Date.Before(today) {
				continue
			}
		case ViewPast:
			if !sc.Date.Before(today) {
				continue
			}
		}
		out = append(out, sc)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if view == ViewPast {
			return out[j].Date.Before(out[i].Date)
		}
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

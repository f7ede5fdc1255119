package recurrence

import (
	"sort"

	"github.com/pcharbonneau/muniboard/internal/domain"
)

// ItemKind distinguishes projected regular pickups from one-off events in a
// merged upcoming list.
type ItemKind string

const (
	KindRegular ItemKind = "regular"
	KindSpecial ItemKind = "special"
)

// Item is one entry in a zone's merged upcoming-collections list.
// Regular items carry the collection type ID and its projecting rule;
// special items carry the event itself.
type Item struct {
	Kind             ItemKind
	Date             domain.Date
	CollectionTypeID string
	Rule             domain.RecurrenceRule
	Special          *domain.SpecialCollection
}

// Upcoming merges a zone's projected regular pickups with its upcoming
// active one-off events into a single list, ascending by date, truncated to
// at most limit entries. A non-positive limit returns the full merged list.
//
// Each active rule in the zone contributes exactly one item — its next
// occurrence on or after today. Inactive special collections are excluded:
// this is the resident-facing view.
func Upcoming(schedule domain.ScheduleData, zoneID string, today domain.Date, limit int) []Item {
	zone := schedule.ZoneRules(zoneID)

	items := make([]Item, 0, len(zone))
	for typeID, rule := range zone {
		items = append(items, Item{
			Kind:             KindRegular,
			Date:             Next(rule, zone, today),
			CollectionTypeID: typeID,
			Rule:             rule,
		})
	}

	for _, sc := range FilterSpecial(schedule.SpecialCollections, ViewUpcoming, zoneID, today) {
		if !sc.Active {
			continue
		}
		sc := sc
		items = append(items, Item{
			Kind:             KindSpecial,
			Date:             sc.Date,
			CollectionTypeID: sc.CollectionTypeID,
			Special:          &sc,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		if c := items[i].Date.Compare(items[j].Date); c != 0 {
			return c < 0
		}
		// Same-day tie-break: regular pickups before one-off events, then
		// by type ID so map iteration order never leaks into responses.
		if items[i].Kind != items[j].Kind {
			return items[i].Kind == KindRegular
		}
		return items[i].CollectionTypeID < items[j].CollectionTypeID
	})

	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}

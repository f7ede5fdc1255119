package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/pcharbonneau/muniboard/internal/domain"
	"github.com/pcharbonneau/muniboard/internal/recurrence"
)

// Upcoming-list bounds. Residents see three entries by default; the cap keeps
// a crafted limit from projecting every rule and event in one response.
const (
	DefaultUpcomingLimit = 3
	MaxUpcomingLimit     = 20
)

// ScheduleLoader is the slice of ScheduleService the projections need.
// Declared here, on the consumer side, so tests can swap in a canned aggregate.
type ScheduleLoader interface {
	Schedule(ctx context.Context, muniID string) (domain.ScheduleData, error)
}

// TypeProjection is one stream's next occurrence within a zone, resolved to
// display strings for the requested locale. It backs the per-stream cards on
// a zone's schedule page.
type TypeProjection struct {
	TypeID       string      `json:"typeId"`
	Name         string      `json:"name"`
	Color        string      `json:"color,omitempty"`
	NextDate     domain.Date `json:"nextDate"`
	WeekdayLabel string      `json:"weekdayLabel"`
	DateLabel    string      `json:"dateLabel"`
	Time         string      `json:"time,omitempty"`
	EndTime      string      `json:"endTime,omitempty"`
}

// UpcomingEntry is one row of a zone's merged upcoming-collections list:
// either a projected regular pickup or an active one-off event.
type UpcomingEntry struct {
	Kind      recurrence.ItemKind `json:"kind"`
	Date      domain.Date         `json:"date"`
	Label     string              `json:"label"`
	TypeID    string              `json:"typeId,omitempty"`
	SpecialID string              `json:"specialId,omitempty"`
	Name      string              `json:"name"`
	Color     string              `json:"color,omitempty"`
	Time      string              `json:"time,omitempty"`
	EndTime   string              `json:"endTime,omitempty"`
}

// ProjectionService computes the resident-facing views: next occurrences,
// merged upcoming lists, and filtered one-off events. It is read-only and
// pure given the aggregate — today always arrives as a parameter, never from
// the clock, so the same request is reproducible.
type ProjectionService struct {
	schedules ScheduleLoader
}

// NewProjectionService constructs a ProjectionService backed by the provided
// schedule loader.
func NewProjectionService(schedules ScheduleLoader) *ProjectionService {
	return &ProjectionService{schedules: schedules}
}

// ZoneOverview returns the next occurrence of every stream enabled for a
// zone, ordered by date then type slug.
// Returns domain.ErrNotFound if the municipality or zone does not exist.
func (s *ProjectionService) ZoneOverview(ctx context.Context, muniID, zoneID string, today domain.Date, locale string) ([]TypeProjection, error) {
	schedule, err := s.schedules.Schedule(ctx, muniID)
	if err != nil {
		return nil, fmt.Errorf("service.ProjectionService.ZoneOverview: %w", err)
	}
	if !hasZone(schedule, zoneID) {
		return nil, fmt.Errorf("service.ProjectionService.ZoneOverview: zone %q: %w", zoneID, domain.ErrNotFound)
	}

	zone := schedule.ZoneRules(zoneID)
	out := make([]TypeProjection, 0, len(zone))
	for typeID, rule := range zone {
		next := recurrence.Next(rule, zone, today)
		p := TypeProjection{
			TypeID:       typeID,
			Name:         typeID,
			NextDate:     next,
			WeekdayLabel: recurrence.WeekdayLabel(next, today, locale),
			DateLabel:    recurrence.ShortLabel(next, today, locale),
			Time:         rule.Time,
			EndTime:      rule.EndTime,
		}
		if ct, ok := schedule.TypeByID(typeID); ok {
			p.Name = ct.Name.Localize(locale, typeID)
			p.Color = ct.Color
		}
		out = append(out, p)
	}

	sort.Slice(out, func(i, j int) bool {
		if c := out[i].NextDate.Compare(out[j].NextDate); c != 0 {
			return c < 0
		}
		return out[i].TypeID < out[j].TypeID
	})
	return out, nil
}

// Upcoming returns a zone's merged upcoming-collections list: each enabled
// stream's next occurrence plus active one-off events dated today or later,
// ascending, truncated to limit. A non-positive limit falls back to
// DefaultUpcomingLimit; limits above MaxUpcomingLimit are clamped.
// Returns domain.ErrNotFound if the municipality or zone does not exist.
func (s *ProjectionService) Upcoming(ctx context.Context, muniID, zoneID string, today domain.Date, limit int, locale string) ([]UpcomingEntry, error) {
	if limit <= 0 {
		limit = DefaultUpcomingLimit
	}
	if limit > MaxUpcomingLimit {
		limit = MaxUpcomingLimit
	}

	schedule, err := s.schedules.Schedule(ctx, muniID)
	if err != nil {
		return nil, fmt.Errorf("service.ProjectionService.Upcoming: %w", err)
	}
	if !hasZone(schedule, zoneID) {
		return nil, fmt.Errorf("service.ProjectionService.Upcoming: zone %q: %w", zoneID, domain.ErrNotFound)
	}

	items := recurrence.Upcoming(schedule, zoneID, today, limit)
	out := make([]UpcomingEntry, 0, len(items))
	for _, item := range items {
		out = append(out, s.entryFor(schedule, item, today, locale))
	}
	return out, nil
}

// Specials returns a municipality's one-off events filtered to the requested
// view, optionally restricted to the events visible from one zone.
// Returns domain.ErrValidation for an unknown view, domain.ErrNotFound if the
// municipality or zone does not exist.
func (s *ProjectionService) Specials(ctx context.Context, muniID, zoneID string, view recurrence.View, today domain.Date) ([]domain.SpecialCollection, error) {
	if !view.Valid() {
		return nil, fmt.Errorf("%w: unknown view %q", domain.ErrValidation, view)
	}

	schedule, err := s.schedules.Schedule(ctx, muniID)
	if err != nil {
		return nil, fmt.Errorf("service.ProjectionService.Specials: %w", err)
	}
	if zoneID != "" && !hasZone(schedule, zoneID) {
		return nil, fmt.Errorf("service.ProjectionService.Specials: zone %q: %w", zoneID, domain.ErrNotFound)
	}

	return recurrence.FilterSpecial(schedule.SpecialCollections, view, zoneID, today), nil
}

// entryFor resolves a merged item's display identity: typed entries inherit
// the stream's name and color, custom events carry their own.
func (s *ProjectionService) entryFor(schedule domain.ScheduleData, item recurrence.Item, today domain.Date, locale string) UpcomingEntry {
	e := UpcomingEntry{
		Kind:   item.Kind,
		Date:   item.Date,
		Label:  recurrence.ShortLabel(item.Date, today, locale),
		TypeID: item.CollectionTypeID,
		Name:   item.CollectionTypeID,
	}

	if ct, ok := schedule.TypeByID(item.CollectionTypeID); ok {
		e.Name = ct.Name.Localize(locale, item.CollectionTypeID)
		e.Color = ct.Color
	}

	switch item.Kind {
	case recurrence.KindSpecial:
		sc := item.Special
		e.SpecialID = sc.ID.String()
		e.Time = sc.Time
		e.EndTime = sc.EndTime
		if !sc.CustomName.IsZero() {
			e.Name = sc.CustomName.Localize(locale, e.Name)
		}
		if sc.Color != "" {
			e.Color = sc.Color
		}
	default:
		e.Time = item.Rule.Time
		e.EndTime = item.Rule.EndTime
	}
	return e
}

// hasZone reports whether the aggregate contains a zone with the given slug.
func hasZone(schedule domain.ScheduleData, zoneID string) bool {
	for _, z := range schedule.Zones {
		if z.ID == zoneID {
			return true
		}
	}
	return false
}

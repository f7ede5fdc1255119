package domain

import "time"

// Municipality is the tenant root. Everything else hangs off its ID slug.
type Municipality struct {
	ID        string    `json:"id"`
	Name      Bilingual `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate checks the field-local rules for a municipality.
func (m Municipality) Validate() error {
	if m.ID == "" {
		return fieldRequired("id")
	}
	if m.Name.IsZero() {
		return fieldRequired("name")
	}
	return nil
}

// Guidelines is the resident-facing how-to text attached to a schedule:
// a timing paragraph ("place bins out by 7am") and a placement bullet list.
type Guidelines struct {
	Timing    Bilingual     `json:"timing"`
	Placement BilingualList `json:"placement"`
}

// ZoneSchedule maps a collection type ID to its recurrence rule within one
// zone. Absence of a key means the stream is not collected in that zone.
type ZoneSchedule map[string]RecurrenceRule

// ScheduleData is the aggregate a consuming surface loads per municipality:
// the streams it collects, its zones, the per-zone rules, one-off events,
// and guidelines.
type ScheduleData struct {
	MunicipalityID     string                  `json:"municipalityId"`
	CollectionTypes    []CollectionType        `json:"collectionTypes"`
	Zones              []Zone                  `json:"zones"`
	Schedules          map[string]ZoneSchedule `json:"schedules"` // keyed by zone ID
	SpecialCollections []SpecialCollection     `json:"specialCollections"`
	Guidelines         Guidelines              `json:"guidelines"`
	ZoneMapURL         string                  `json:"zoneMapUrl,omitempty"`
}

// ZoneRules returns the schedule map for a zone, never nil.
func (s ScheduleData) ZoneRules(zoneID string) ZoneSchedule {
	if rules, ok := s.Schedules[zoneID]; ok {
		return rules
	}
	return ZoneSchedule{}
}

// TypeByID returns the collection type with the given slug.
func (s ScheduleData) TypeByID(id string) (CollectionType, bool) {
	for _, ct := range s.CollectionTypes {
		if ct.ID == id {
			return ct, true
		}
	}
	return CollectionType{}, false
}

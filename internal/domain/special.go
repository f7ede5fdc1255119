package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SpecialCollection is a one-off, non-recurring collection event (e.g. a
// hazardous-waste drop-off day) layered on top of the regular schedule.
//
// Exactly one of CollectionTypeID and CustomName is set: the event either
// reuses an existing stream's identity or carries its own name and color.
// An empty Zones list means the event applies to every zone.
type SpecialCollection struct {
	ID               uuid.UUID `json:"id"`
	CollectionTypeID string    `json:"collectionTypeId,omitempty"`
	CustomName       Bilingual `json:"customName,omitempty"`
	Color            string    `json:"color,omitempty"`
	Date             Date      `json:"date"`
	Time             string    `json:"time,omitempty"`
	EndTime          string    `json:"endTime,omitempty"`
	Zones            []string  `json:"zones"`
	Description      Bilingual `json:"description,omitempty"`
	Location         string    `json:"location,omitempty"`
	Active           bool      `json:"active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Validate enforces the exactly-one-of identity rule and the presence of a
// calendar date.
func (s SpecialCollection) Validate() error {
	hasType := s.CollectionTypeID != ""
	hasCustom := !s.CustomName.IsZero()
	if hasType == hasCustom {
		return fmt.Errorf("%w: exactly one of collectionTypeId and customName must be set", ErrValidation)
	}
	if s.Date.IsZero() {
		return fieldRequired("date")
	}
	return nil
}

// AppliesToZone reports whether the event is visible to residents of the
// given zone. An empty Zones list applies everywhere.
func (s SpecialCollection) AppliesToZone(zoneID string) bool {
	if len(s.Zones) == 0 {
		return true
	}
	for _, z := range s.Zones {
		if z == zoneID {
			return true
		}
	}
	return false
}

package domain

import "time"

// DefaultZoneID is the slug of the zone auto-created when a municipality is
// provisioned. Every municipality has at least one zone; residents are
// assigned exactly one.
const DefaultZoneID = "default"

// Zone is a geographic collection sector within a municipality.
type Zone struct {
	ID          string    `json:"id"`
	Name        Bilingual `json:"name"`
	Description Bilingual `json:"description,omitempty"`
	Color       string    `json:"color,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Validate checks the field-local rules for a zone.
func (z Zone) Validate() error {
	if z.ID == "" {
		return fieldRequired("id")
	}
	if z.Name.IsZero() {
		return fieldRequired("name")
	}
	return nil
}

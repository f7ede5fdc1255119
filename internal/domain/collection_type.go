// Package domain contains the core data types for the municipal collection
// platform. This package has zero external dependencies beyond the standard
// library (google/uuid excepted) and is imported by every other internal
// package (recurrence, repo, service, handler).
package domain

import "time"

// CollectionType is a waste stream (recycling, compost, garbage, or a
// municipality-defined custom stream). Identity is the ID slug, which is
// unique within a municipality and referenced by zone schedules and
// special collections.
type CollectionType struct {
	ID          string        `json:"id"`
	Name        Bilingual     `json:"name"`
	BinName     Bilingual     `json:"binName"`
	Color       string        `json:"color"` // display hex, e.g. "#2e7d32"
	BinSize     string        `json:"binSize,omitempty"`
	Accepted    BilingualList `json:"accepted"`
	NotAccepted BilingualList `json:"notAccepted"`
	Tip         Bilingual     `json:"tip"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// Validate checks the field-local rules for a collection type.
// Referential rules (slug uniqueness) are enforced by the database.
func (c CollectionType) Validate() error {
	if c.ID == "" {
		return fieldRequired("id")
	}
	if c.Name.IsZero() {
		return fieldRequired("name")
	}
	return nil
}

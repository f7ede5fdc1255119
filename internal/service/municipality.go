// Package service contains the business logic for the collection platform.
// Services validate inputs, enforce business rules, and orchestrate repo
// calls. No SQL lives here — services depend on repo interfaces, not
// implementations.
package service

import (
	"context"
	"fmt"

	"github.com/pcharbonneau/muniboard/internal/domain"
	"github.com/pcharbonneau/muniboard/internal/repo"
)

// MunicipalityService implements business logic for municipality operations.
// It holds the zones repo as well because provisioning a municipality seeds
// its default zone: every municipality always has at least one.
type MunicipalityService struct {
	munis repo.MunicipalityRepo
	zones repo.ZoneRepo
}

// NewMunicipalityService constructs a MunicipalityService backed by the
// provided repos.
func NewMunicipalityService(munis repo.MunicipalityRepo, zones repo.ZoneRepo) *MunicipalityService {
	return &MunicipalityService{munis: munis, zones: zones}
}

// Create validates and persists a new municipality, then seeds its default
// zone. The ID is derived from the supplied ID (or the English name when the
// ID is empty) and normalized to slug form.
func (s *MunicipalityService) Create(ctx context.Context, m domain.Municipality) (domain.Municipality, error) {
	source := m.ID
	if source == "" {
		source = m.Name.En
	}
	slug, err := requireSlug("id", source)
	if err != nil {
		return domain.Municipality{}, err
	}
	m.ID = slug

	if err := m.Validate(); err != nil {
		return domain.Municipality{}, err
	}

	created, err := s.munis.Create(ctx, m)
	if err != nil {
		return domain.Municipality{}, fmt.Errorf("service.MunicipalityService.Create: %w", err)
	}

	_, err = s.zones.Create(ctx, created.ID, domain.Zone{
		ID:   domain.DefaultZoneID,
		Name: domain.Bilingual{En: "Default", Fr: "Par défaut"},
	})
	if err != nil {
		return domain.Municipality{}, fmt.Errorf("service.MunicipalityService.Create: seed default zone: %w", err)
	}

	return created, nil
}

// GetByID returns a single municipality by slug.
// Returns domain.ErrNotFound if it does not exist.
func (s *MunicipalityService) GetByID(ctx context.Context, id string) (domain.Municipality, error) {
	result, err := s.munis.GetByID(ctx, id)
	if err != nil {
		return domain.Municipality{}, fmt.Errorf("service.MunicipalityService.GetByID: %w", err)
	}
	return result, nil
}

// List returns all municipalities ordered by slug.
// Always returns a non-nil slice so callers can safely range over it.
func (s *MunicipalityService) List(ctx context.Context) ([]domain.Municipality, error) {
	munis, err := s.munis.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.MunicipalityService.List: %w", err)
	}
	if munis == nil {
		return []domain.Municipality{}, nil
	}
	return munis, nil
}

// UpdateGuidelines overwrites the resident-facing guidelines and zone-map URL.
// Returns domain.ErrNotFound if the municipality does not exist.
func (s *MunicipalityService) UpdateGuidelines(ctx context.Context, id string, g domain.Guidelines, zoneMapURL string) error {
	if err := s.munis.UpdateGuidelines(ctx, id, g, zoneMapURL); err != nil {
		return fmt.Errorf("service.MunicipalityService.UpdateGuidelines: %w", err)
	}
	return nil
}

// Guidelines returns the guidelines and zone-map URL for a municipality.
// Returns domain.ErrNotFound if the municipality does not exist.
func (s *MunicipalityService) Guidelines(ctx context.Context, id string) (domain.Guidelines, string, error) {
	g, url, err := s.munis.Guidelines(ctx, id)
	if err != nil {
		return domain.Guidelines{}, "", fmt.Errorf("service.MunicipalityService.Guidelines: %w", err)
	}
	return g, url, nil
}

// Delete removes a municipality and, via cascading foreign keys, all of its
// types, zones, rules, and special collections.
// Returns domain.ErrNotFound if the municipality does not exist.
func (s *MunicipalityService) Delete(ctx context.Context, id string) error {
	if err := s.munis.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.MunicipalityService.Delete: %w", err)
	}
	return nil
}

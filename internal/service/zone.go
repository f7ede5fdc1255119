package service

import (
	"context"
	"fmt"

	"github.com/pcharbonneau/muniboard/internal/domain"
	"github.com/pcharbonneau/muniboard/internal/repo"
)

// ZoneService implements business logic for collection-zone operations.
type ZoneService struct {
	munis repo.MunicipalityRepo
	zones repo.ZoneRepo
}

// NewZoneService constructs a ZoneService backed by the provided repos.
func NewZoneService(munis repo.MunicipalityRepo, zones repo.ZoneRepo) *ZoneService {
	return &ZoneService{munis: munis, zones: zones}
}

// Create validates the zone, verifies the parent municipality exists, then
// persists. The ID is derived from the supplied ID (or the English name when
// the ID is empty) and normalized to slug form.
// Returns domain.ErrValidation if input violates business rules.
// Returns domain.ErrNotFound if the municipality does not exist.
func (s *ZoneService) Create(ctx context.Context, muniID string, z domain.Zone) (domain.Zone, error) {
	if _, err := s.munis.GetByID(ctx, muniID); err != nil {
		return domain.Zone{}, fmt.Errorf("service.ZoneService.Create: %w", err)
	}

	source := z.ID
	if source == "" {
		source = z.Name.En
	}
	slug, err := requireSlug("id", source)
	if err != nil {
		return domain.Zone{}, err
	}
	z.ID = slug

	if err := z.Validate(); err != nil {
		return domain.Zone{}, err
	}

	result, err := s.zones.Create(ctx, muniID, z)
	if err != nil {
		return domain.Zone{}, fmt.Errorf("service.ZoneService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single zone by slug, scoped to a municipality.
// Returns domain.ErrNotFound if it does not exist.
func (s *ZoneService) GetByID(ctx context.Context, muniID, id string) (domain.Zone, error) {
	result, err := s.zones.GetByID(ctx, muniID, id)
	if err != nil {
		return domain.Zone{}, fmt.Errorf("service.ZoneService.GetByID: %w", err)
	}
	return result, nil
}

// List returns all of a municipality's zones ordered by slug.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ZoneService) List(ctx context.Context, muniID string) ([]domain.Zone, error) {
	zones, err := s.zones.List(ctx, muniID)
	if err != nil {
		return nil, fmt.Errorf("service.ZoneService.List: %w", err)
	}
	if zones == nil {
		return []domain.Zone{}, nil
	}
	return zones, nil
}

// Update validates and persists changes to an existing zone. The slug is
// identity and cannot change.
// Returns domain.ErrValidation for invalid input, domain.ErrNotFound if the
// zone does not exist.
func (s *ZoneService) Update(ctx context.Context, muniID string, z domain.Zone) (domain.Zone, error) {
	if err := z.Validate(); err != nil {
		return domain.Zone{}, err
	}
	result, err := s.zones.Update(ctx, muniID, z)
	if err != nil {
		return domain.Zone{}, fmt.Errorf("service.ZoneService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a zone and, by cascade, its schedule rules. A municipality
// must keep at least one zone, so deleting the last one is refused.
// Returns domain.ErrValidation when the zone is the municipality's last,
// domain.ErrNotFound if the zone does not exist.
func (s *ZoneService) Delete(ctx context.Context, muniID, id string) error {
	n, err := s.zones.Count(ctx, muniID)
	if err != nil {
		return fmt.Errorf("service.ZoneService.Delete: %w", err)
	}
	if n <= 1 {
		return fmt.Errorf("%w: a municipality must have at least one zone", domain.ErrValidation)
	}
	if err := s.zones.Delete(ctx, muniID, id); err != nil {
		return fmt.Errorf("service.ZoneService.Delete: %w", err)
	}
	return nil
}

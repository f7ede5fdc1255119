package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pcharbonneau/muniboard/internal/domain"
	"github.com/pcharbonneau/muniboard/internal/repo"
)

// SpecialService implements business logic for one-off collection events.
type SpecialService struct {
	munis    repo.MunicipalityRepo
	types    repo.CollectionTypeRepo
	specials repo.SpecialRepo
}

// NewSpecialService constructs a SpecialService backed by the provided repos.
func NewSpecialService(munis repo.MunicipalityRepo, types repo.CollectionTypeRepo, specials repo.SpecialRepo) *SpecialService {
	return &SpecialService{munis: munis, types: types, specials: specials}
}

// Create validates the event, verifies the parent municipality (and, for a
// typed event, the referenced stream) exists, then persists.
// Returns domain.ErrValidation if input violates business rules.
// Returns domain.ErrNotFound if the municipality or referenced type is missing.
func (s *SpecialService) Create(ctx context.Context, muniID string, sc domain.SpecialCollection) (domain.SpecialCollection, error) {
	if _, err := s.munis.GetByID(ctx, muniID); err != nil {
		return domain.SpecialCollection{}, fmt.Errorf("service.SpecialService.Create: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return domain.SpecialCollection{}, err
	}
	if sc.CollectionTypeID != "" {
		if _, err := s.types.GetByID(ctx, muniID, sc.CollectionTypeID); err != nil {
			return domain.SpecialCollection{}, fmt.Errorf("service.SpecialService.Create: type: %w", err)
		}
	}

	result, err := s.specials.Create(ctx, muniID, sc)
	if err != nil {
		return domain.SpecialCollection{}, fmt.Errorf("service.SpecialService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single event by its UUID, scoped to a municipality.
// Returns domain.ErrNotFound if it does not exist.
func (s *SpecialService) GetByID(ctx context.Context, muniID string, id uuid.UUID) (domain.SpecialCollection, error) {
	result, err := s.specials.GetByID(ctx, muniID, id)
	if err != nil {
		return domain.SpecialCollection{}, fmt.Errorf("service.SpecialService.GetByID: %w", err)
	}
	return result, nil
}

// ListPaged returns one page of a municipality's events ordered by date
// ascending, plus the total count. This is the admin listing; the
// resident-facing filtered views go through ProjectionService.
func (s *SpecialService) ListPaged(ctx context.Context, muniID string, p domain.PaginationParams) ([]domain.SpecialCollection, int64, error) {
	events, total, err := s.specials.ListPaged(ctx, muniID, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.SpecialService.ListPaged: %w", err)
	}
	if events == nil {
		events = []domain.SpecialCollection{}
	}
	return events, total, nil
}

// Update validates and persists changes to an existing event.
// Returns domain.ErrValidation for invalid input, domain.ErrNotFound if the
// event (or, for a typed event, the referenced stream) does not exist.
func (s *SpecialService) Update(ctx context.Context, muniID string, sc domain.SpecialCollection) (domain.SpecialCollection, error) {
	if err := sc.Validate(); err != nil {
		return domain.SpecialCollection{}, err
	}
	if sc.CollectionTypeID != "" {
		if _, err := s.types.GetByID(ctx, muniID, sc.CollectionTypeID); err != nil {
			return domain.SpecialCollection{}, fmt.Errorf("service.SpecialService.Update: type: %w", err)
		}
	}
	result, err := s.specials.Update(ctx, muniID, sc)
	if err != nil {
		return domain.SpecialCollection{}, fmt.Errorf("service.SpecialService.Update: %w", err)
	}
	return result, nil
}

// Delete removes an event by ID.
// Returns domain.ErrNotFound if it does not exist.
func (s *SpecialService) Delete(ctx context.Context, muniID string, id uuid.UUID) error {
	if err := s.specials.Delete(ctx, muniID, id); err != nil {
		return fmt.Errorf("service.SpecialService.Delete: %w", err)
	}
	return nil
}

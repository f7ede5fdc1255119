package service

import (
	"context"
	"fmt"

	"github.com/pcharbonneau/muniboard/internal/domain"
	"github.com/pcharbonneau/muniboard/internal/repo"
)

// CollectionTypeService implements business logic for waste-stream
// operations. It holds the municipalities repo because creating a type
// requires verifying the parent municipality exists.
type CollectionTypeService struct {
	munis repo.MunicipalityRepo
	types repo.CollectionTypeRepo
}

// NewCollectionTypeService constructs a CollectionTypeService backed by the
// provided repos.
func NewCollectionTypeService(munis repo.MunicipalityRepo, types repo.CollectionTypeRepo) *CollectionTypeService {
	return &CollectionTypeService{munis: munis, types: types}
}

// Create validates the type, verifies the parent municipality exists, then
// persists. The ID is derived from the supplied ID (or the English name when
// the ID is empty) and normalized to slug form.
// Returns domain.ErrValidation if input violates business rules.
// Returns domain.ErrNotFound if the municipality does not exist.
func (s *CollectionTypeService) Create(ctx context.Context, muniID string, ct domain.CollectionType) (domain.CollectionType, error) {
	if _, err := s.munis.GetByID(ctx, muniID); err != nil {
		return domain.CollectionType{}, fmt.Errorf("service.CollectionTypeService.Create: %w", err)
	}

	source := ct.ID
	if source == "" {
		source = ct.Name.En
	}
	slug, err := requireSlug("id", source)
	if err != nil {
		return domain.CollectionType{}, err
	}
	ct.ID = slug

	if err := ct.Validate(); err != nil {
		return domain.CollectionType{}, err
	}

	result, err := s.types.Create(ctx, muniID, ct)
	if err != nil {
		return domain.CollectionType{}, fmt.Errorf("service.CollectionTypeService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single collection type by slug, scoped to a municipality.
// Returns domain.ErrNotFound if it does not exist.
func (s *CollectionTypeService) GetByID(ctx context.Context, muniID, id string) (domain.CollectionType, error) {
	result, err := s.types.GetByID(ctx, muniID, id)
	if err != nil {
		return domain.CollectionType{}, fmt.Errorf("service.CollectionTypeService.GetByID: %w", err)
	}
	return result, nil
}

// List returns all of a municipality's types ordered by slug.
// Always returns a non-nil slice so callers can safely range over it.
func (s *CollectionTypeService) List(ctx context.Context, muniID string) ([]domain.CollectionType, error) {
	types, err := s.types.List(ctx, muniID)
	if err != nil {
		return nil, fmt.Errorf("service.CollectionTypeService.List: %w", err)
	}
	if types == nil {
		return []domain.CollectionType{}, nil
	}
	return types, nil
}

// Update validates and persists changes to an existing type. The slug is
// identity and cannot change.
// Returns domain.ErrValidation for invalid input, domain.ErrNotFound if the
// type does not exist.
func (s *CollectionTypeService) Update(ctx context.Context, muniID string, ct domain.CollectionType) (domain.CollectionType, error) {
	if err := ct.Validate(); err != nil {
		return domain.CollectionType{}, err
	}
	result, err := s.types.Update(ctx, muniID, ct)
	if err != nil {
		return domain.CollectionType{}, fmt.Errorf("service.CollectionTypeService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a type. Schedule rules and typed special collections
// referencing it are removed by the cascading foreign keys, so no zone is
// ever left pointing at a stream that no longer exists.
// Returns domain.ErrNotFound if the type does not exist.
func (s *CollectionTypeService) Delete(ctx context.Context, muniID, id string) error {
	if err := s.types.Delete(ctx, muniID, id); err != nil {
		return fmt.Errorf("service.CollectionTypeService.Delete: %w", err)
	}
	return nil
}

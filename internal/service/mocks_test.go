package service_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/pcharbonneau/muniboard/internal/domain"
	"github.com/pcharbonneau/muniboard/internal/repo"
)

// Hand-written test doubles for the repo interfaces. Each method is a
// function field — set only the ones your test needs. Shared across the
// package's test files because most services hold more than one repo.

type mockMunicipalityRepo struct {
	create           func(ctx context.Context, m domain.Municipality) (domain.Municipality, error)
	getByID          func(ctx context.Context, id string) (domain.Municipality, error)
	list             func(ctx context.Context) ([]domain.Municipality, error)
	updateGuidelines func(ctx context.Context, id string, g domain.Guidelines, zoneMapURL string) error
	guidelines       func(ctx context.Context, id string) (domain.Guidelines, string, error)
	delete           func(ctx context.Context, id string) error
}

func (m *mockMunicipalityRepo) Create(ctx context.Context, muni domain.Municipality) (domain.Municipality, error) {
	return m.create(ctx, muni)
}
func (m *mockMunicipalityRepo) GetByID(ctx context.Context, id string) (domain.Municipality, error) {
	return m.getByID(ctx, id)
}
func (m *mockMunicipalityRepo) List(ctx context.Context) ([]domain.Municipality, error) {
	return m.list(ctx)
}
func (m *mockMunicipalityRepo) UpdateGuidelines(ctx context.Context, id string, g domain.Guidelines, zoneMapURL string) error {
	return m.updateGuidelines(ctx, id, g, zoneMapURL)
}
func (m *mockMunicipalityRepo) Guidelines(ctx context.Context, id string) (domain.Guidelines, string, error) {
	return m.guidelines(ctx, id)
}
func (m *mockMunicipalityRepo) Delete(ctx context.Context, id string) error {
	return m.delete(ctx, id)
}

var _ repo.MunicipalityRepo = (*mockMunicipalityRepo)(nil)

type mockCollectionTypeRepo struct {
	create  func(ctx context.Context, muniID string, ct domain.CollectionType) (domain.CollectionType, error)
	getByID func(ctx context.Context, muniID, id string) (domain.CollectionType, error)
	list    func(ctx context.Context, muniID string) ([]domain.CollectionType, error)
	update  func(ctx context.Context, muniID string, ct domain.CollectionType) (domain.CollectionType, error)
	delete  func(ctx context.Context, muniID, id string) error
}

func (m *mockCollectionTypeRepo) Create(ctx context.Context, muniID string, ct domain.CollectionType) (domain.CollectionType, error) {
	return m.create(ctx, muniID, ct)
}
func (m *mockCollectionTypeRepo) GetByID(ctx context.Context, muniID, id string) (domain.CollectionType, error) {
	return m.getByID(ctx, muniID, id)
}
func (m *mockCollectionTypeRepo) List(ctx context.Context, muniID string) ([]domain.CollectionType, error) {
	return m.list(ctx, muniID)
}
func (m *mockCollectionTypeRepo) Update(ctx context.Context, muniID string, ct domain.CollectionType) (domain.CollectionType, error) {
	return m.update(ctx, muniID, ct)
}
func (m *mockCollectionTypeRepo) Delete(ctx context.Context, muniID, id string) error {
	return m.delete(ctx, muniID, id)
}

var _ repo.CollectionTypeRepo = (*mockCollectionTypeRepo)(nil)

type mockZoneRepo struct {
	create  func(ctx context.Context, muniID string, z domain.Zone) (domain.Zone, error)
	getByID func(ctx context.Context, muniID, id string) (domain.Zone, error)
	list    func(ctx context.Context, muniID string) ([]domain.Zone, error)
	count   func(ctx context.Context, muniID string) (int64, error)
	update  func(ctx context.Context, muniID string, z domain.Zone) (domain.Zone, error)
	delete  func(ctx context.Context, muniID, id string) error
}

func (m *mockZoneRepo) Create(ctx context.Context, muniID string, z domain.Zone) (domain.Zone, error) {
	return m.create(ctx, muniID, z)
}
func (m *mockZoneRepo) GetByID(ctx context.Context, muniID, id string) (domain.Zone, error) {
	return m.getByID(ctx, muniID, id)
}
func (m *mockZoneRepo) List(ctx context.Context, muniID string) ([]domain.Zone, error) {
	return m.list(ctx, muniID)
}
func (m *mockZoneRepo) Count(ctx context.Context, muniID string) (int64, error) {
	return m.count(ctx, muniID)
}
func (m *mockZoneRepo) Update(ctx context.Context, muniID string, z domain.Zone) (domain.Zone, error) {
	return m.update(ctx, muniID, z)
}
func (m *mockZoneRepo) Delete(ctx context.Context, muniID, id string) error {
	return m.delete(ctx, muniID, id)
}

var _ repo.ZoneRepo = (*mockZoneRepo)(nil)

type mockRuleRepo struct {
	upsert             func(ctx context.Context, muniID, zoneID, typeID string, rule domain.RecurrenceRule) (domain.RecurrenceRule, error)
	get                func(ctx context.Context, muniID, zoneID, typeID string) (domain.RecurrenceRule, error)
	listByMunicipality func(ctx context.Context, muniID string) (map[string]domain.ZoneSchedule, error)
	delete             func(ctx context.Context, muniID, zoneID, typeID string) error
}

func (m *mockRuleRepo) Upsert(ctx context.Context, muniID, zoneID, typeID string, rule domain.RecurrenceRule) (domain.RecurrenceRule, error) {
	return m.upsert(ctx, muniID, zoneID, typeID, rule)
}
func (m *mockRuleRepo) Get(ctx context.Context, muniID, zoneID, typeID string) (domain.RecurrenceRule, error) {
	return m.get(ctx, muniID, zoneID, typeID)
}
func (m *mockRuleRepo) ListByMunicipality(ctx context.Context, muniID string) (map[string]domain.ZoneSchedule, error) {
	return m.listByMunicipality(ctx, muniID)
}
func (m *mockRuleRepo) Delete(ctx context.Context, muniID, zoneID, typeID string) error {
	return m.delete(ctx, muniID, zoneID, typeID)
}

var _ repo.RuleRepo = (*mockRuleRepo)(nil)

type mockSpecialRepo struct {
	create    func(ctx context.Context, muniID string, sc domain.SpecialCollection) (domain.SpecialCollection, error)
	getByID   func(ctx context.Context, muniID string, id uuid.UUID) (domain.SpecialCollection, error)
	list      func(ctx context.Context, muniID string) ([]domain.SpecialCollection, error)
	listPaged func(ctx context.Context, muniID string, p domain.PaginationParams) ([]domain.SpecialCollection, int64, error)
	update    func(ctx context.Context, muniID string, sc domain.SpecialCollection) (domain.SpecialCollection, error)
	delete    func(ctx context.Context, muniID string, id uuid.UUID) error
}

func (m *mockSpecialRepo) Create(ctx context.Context, muniID string, sc domain.SpecialCollection) (domain.SpecialCollection, error) {
	return m.create(ctx, muniID, sc)
}
func (m *mockSpecialRepo) GetByID(ctx context.Context, muniID string, id uuid.UUID) (domain.SpecialCollection, error) {
	return m.getByID(ctx, muniID, id)
}
func (m *mockSpecialRepo) List(ctx context.Context, muniID string) ([]domain.SpecialCollection, error) {
	return m.list(ctx, muniID)
}
func (m *mockSpecialRepo) ListPaged(ctx context.Context, muniID string, p domain.PaginationParams) ([]domain.SpecialCollection, int64, error) {
	return m.listPaged(ctx, muniID, p)
}
func (m *mockSpecialRepo) Update(ctx context.Context, muniID string, sc domain.SpecialCollection) (domain.SpecialCollection, error) {
	return m.update(ctx, muniID, sc)
}
func (m *mockSpecialRepo) Delete(ctx context.Context, muniID string, id uuid.UUID) error {
	return m.delete(ctx, muniID, id)
}

var _ repo.SpecialRepo = (*mockSpecialRepo)(nil)

// ---- shared canned behaviors ------------------------------------------------

// muniExists returns a municipality repo whose GetByID always succeeds.
func muniExists() *mockMunicipalityRepo {
	return &mockMunicipalityRepo{
		getByID: func(_ context.Context, id string) (domain.Municipality, error) {
			return domain.Municipality{ID: id, Name: domain.Bilingual{En: id, Fr: id}}, nil
		},
	}
}

// muniMissing returns a municipality repo whose GetByID always 404s.
func muniMissing() *mockMunicipalityRepo {
	return &mockMunicipalityRepo{
		getByID: func(_ context.Context, _ string) (domain.Municipality, error) {
			return domain.Municipality{}, domain.ErrNotFound
		},
	}
}

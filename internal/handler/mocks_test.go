package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pcharbonneau/muniboard/internal/domain"
	"github.com/pcharbonneau/muniboard/internal/handler"
	"github.com/pcharbonneau/muniboard/internal/recurrence"
	"github.com/pcharbonneau/muniboard/internal/service"
)

// Hand-written test doubles for the handler's service interfaces. Each
// method is a function field — set only the ones your test needs.

type mockMuniSvc struct {
	create           func(ctx context.Context, m domain.Municipality) (domain.Municipality, error)
	getByID          func(ctx context.Context, id string) (domain.Municipality, error)
	list             func(ctx context.Context) ([]domain.Municipality, error)
	updateGuidelines func(ctx context.Context, id string, g domain.Guidelines, zoneMapURL string) error
	guidelines       func(ctx context.Context, id string) (domain.Guidelines, string, error)
	delete           func(ctx context.Context, id string) error
}

func (m *mockMuniSvc) Create(ctx context.Context, muni domain.Municipality) (domain.Municipality, error) {
	return m.create(ctx, muni)
}
func (m *mockMuniSvc) GetByID(ctx context.Context, id string) (domain.Municipality, error) {
	return m.getByID(ctx, id)
}
func (m *mockMuniSvc) List(ctx context.Context) ([]domain.Municipality, error) { return m.list(ctx) }
func (m *mockMuniSvc) UpdateGuidelines(ctx context.Context, id string, g domain.Guidelines, zoneMapURL string) error {
	return m.updateGuidelines(ctx, id, g, zoneMapURL)
}
func (m *mockMuniSvc) Guidelines(ctx context.Context, id string) (domain.Guidelines, string, error) {
	return m.guidelines(ctx, id)
}
func (m *mockMuniSvc) Delete(ctx context.Context, id string) error { return m.delete(ctx, id) }

var _ handler.MunicipalityServicer = (*mockMuniSvc)(nil)

type mockTypeSvc struct {
	create  func(ctx context.Context, muniID string, ct domain.CollectionType) (domain.CollectionType, error)
	getByID func(ctx context.Context, muniID, id string) (domain.CollectionType, error)
	list    func(ctx context.Context, muniID string) ([]domain.CollectionType, error)
	update  func(ctx context.Context, muniID string, ct domain.CollectionType) (domain.CollectionType, error)
	delete  func(ctx context.Context, muniID, id string) error
}

func (m *mockTypeSvc) Create(ctx context.Context, muniID string, ct domain.CollectionType) (domain.CollectionType, error) {
	return m.create(ctx, muniID, ct)
}
func (m *mockTypeSvc) GetByID(ctx context.Context, muniID, id string) (domain.CollectionType, error) {
	return m.getByID(ctx, muniID, id)
}
func (m *mockTypeSvc) List(ctx context.Context, muniID string) ([]domain.CollectionType, error) {
	return m.list(ctx, muniID)
}
func (m *mockTypeSvc) Update(ctx context.Context, muniID string, ct domain.CollectionType) (domain.CollectionType, error) {
	return m.update(ctx, muniID, ct)
}
func (m *mockTypeSvc) Delete(ctx context.Context, muniID, id string) error {
	return m.delete(ctx, muniID, id)
}

var _ handler.CollectionTypeServicer = (*mockTypeSvc)(nil)

type mockZoneSvc struct {
	create  func(ctx context.Context, muniID string, z domain.Zone) (domain.Zone, error)
	getByID func(ctx context.Context, muniID, id string) (domain.Zone, error)
	list    func(ctx context.Context, muniID string) ([]domain.Zone, error)
	update  func(ctx context.Context, muniID string, z domain.Zone) (domain.Zone, error)
	delete  func(ctx context.Context, muniID, id string) error
}

func (m *mockZoneSvc) Create(ctx context.Context, muniID string, z domain.Zone) (domain.Zone, error) {
	return m.create(ctx, muniID, z)
}
func (m *mockZoneSvc) GetByID(ctx context.Context, muniID, id string) (domain.Zone, error) {
	return m.getByID(ctx, muniID, id)
}
func (m *mockZoneSvc) List(ctx context.Context, muniID string) ([]domain.Zone, error) {
	return m.list(ctx, muniID)
}
func (m *mockZoneSvc) Update(ctx context.Context, muniID string, z domain.Zone) (domain.Zone, error) {
	return m.update(ctx, muniID, z)
}
func (m *mockZoneSvc) Delete(ctx context.Context, muniID, id string) error {
	return m.delete(ctx, muniID, id)
}

var _ handler.ZoneServicer = (*mockZoneSvc)(nil)

type mockScheduleSvc struct {
	setRule    func(ctx context.Context, muniID, zoneID, typeID string, rule domain.RecurrenceRule) (domain.RecurrenceRule, error)
	getRule    func(ctx context.Context, muniID, zoneID, typeID string) (domain.RecurrenceRule, error)
	deleteRule func(ctx context.Context, muniID, zoneID, typeID string) error
	schedule   func(ctx context.Context, muniID string) (domain.ScheduleData, error)
}

func (m *mockScheduleSvc) SetRule(ctx context.Context, muniID, zoneID, typeID string, rule domain.RecurrenceRule) (domain.RecurrenceRule, error) {
	return m.setRule(ctx, muniID, zoneID, typeID, rule)
}
func (m *mockScheduleSvc) GetRule(ctx context.Context, muniID, zoneID, typeID string) (domain.RecurrenceRule, error) {
	return m.getRule(ctx, muniID, zoneID, typeID)
}
func (m *mockScheduleSvc) DeleteRule(ctx context.Context, muniID, zoneID, typeID string) error {
	return m.deleteRule(ctx, muniID, zoneID, typeID)
}
func (m *mockScheduleSvc) Schedule(ctx context.Context, muniID string) (domain.ScheduleData, error) {
	return m.schedule(ctx, muniID)
}

var _ handler.ScheduleServicer = (*mockScheduleSvc)(nil)

type mockSpecialSvc struct {
	create    func(ctx context.Context, muniID string, sc domain.SpecialCollection) (domain.SpecialCollection, error)
	getByID   func(ctx context.Context, muniID string, id uuid.UUID) (domain.SpecialCollection, error)
	listPaged func(ctx context.Context, muniID string, p domain.PaginationParams) ([]domain.SpecialCollection, int64, error)
	update    func(ctx context.Context, muniID string, sc domain.SpecialCollection) (domain.SpecialCollection, error)
	delete    func(ctx context.Context, muniID string, id uuid.UUID) error
}

func (m *mockSpecialSvc) Create(ctx context.Context, muniID string, sc domain.SpecialCollection) (domain.SpecialCollection, error) {
	return m.create(ctx, muniID, sc)
}
func (m *mockSpecialSvc) GetByID(ctx context.Context, muniID string, id uuid.UUID) (domain.SpecialCollection, error) {
	return m.getByID(ctx, muniID, id)
}
func (m *mockSpecialSvc) ListPaged(ctx context.Context, muniID string, p domain.PaginationParams) ([]domain.SpecialCollection, int64, error) {
	return m.listPaged(ctx, muniID, p)
}
func (m *mockSpecialSvc) Update(ctx context.Context, muniID string, sc domain.SpecialCollection) (domain.SpecialCollection, error) {
	return m.update(ctx, muniID, sc)
}
func (m *mockSpecialSvc) Delete(ctx context.Context, muniID string, id uuid.UUID) error {
	return m.delete(ctx, muniID, id)
}

var _ handler.SpecialServicer = (*mockSpecialSvc)(nil)

type mockProjectionSvc struct {
	zoneOverview func(ctx context.Context, muniID, zoneID string, today domain.Date, locale string) ([]service.TypeProjection, error)
	upcoming     func(ctx context.Context, muniID, zoneID string, today domain.Date, limit int, locale string) ([]service.UpcomingEntry, error)
	specials     func(ctx context.Context, muniID, zoneID string, view recurrence.View, today domain.Date) ([]domain.SpecialCollection, error)
}

func (m *mockProjectionSvc) ZoneOverview(ctx context.Context, muniID, zoneID string, today domain.Date, locale string) ([]service.TypeProjection, error) {
	return m.zoneOverview(ctx, muniID, zoneID, today, locale)
}
func (m *mockProjectionSvc) Upcoming(ctx context.Context, muniID, zoneID string, today domain.Date, limit int, locale string) ([]service.UpcomingEntry, error) {
	return m.upcoming(ctx, muniID, zoneID, today, limit, locale)
}
func (m *mockProjectionSvc) Specials(ctx context.Context, muniID, zoneID string, view recurrence.View, today domain.Date) ([]domain.SpecialCollection, error) {
	return m.specials(ctx, muniID, zoneID, view, today)
}

var _ handler.ProjectionServicer = (*mockProjectionSvc)(nil)

// ---- helpers ---------------------------------------------------------------

// serverMocks bundles one mock per dependency; tests set the fields they need
// and call router() to get an http.Handler wired the same way main.go does.
type serverMocks struct {
	munis       mockMuniSvc
	types       mockTypeSvc
	zones       mockZoneSvc
	schedules   mockScheduleSvc
	specials    mockSpecialSvc
	projections mockProjectionSvc
}

func (m *serverMocks) router() http.Handler {
	srv := handler.NewServer(&m.munis, &m.types, &m.zones, &m.schedules, &m.specials, &m.projections)
	return srv.Routes()
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func parseDate(t *testing.T, s string) domain.Date {
	t.Helper()
	d, err := domain.ParseDate(s)
	require.NoError(t, err)
	return d
}

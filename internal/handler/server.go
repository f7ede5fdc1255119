// Package handler implements the HTTP handlers for the collection platform
// API. Handlers are methods on Server, split into resource-specific files
// (municipality.go, zone.go, etc.) that all share the same struct. Routes()
// assembles the chi router; main.go mounts it behind the middleware stack.
package handler

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pcharbonneau/muniboard/internal/domain"
	"github.com/pcharbonneau/muniboard/internal/recurrence"
	"github.com/pcharbonneau/muniboard/internal/service"
)

// The *Servicer interfaces define the business operations each handler
// depends on. Defining them here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.

// MunicipalityServicer covers municipality CRUD and guideline settings.
type MunicipalityServicer interface {
	Create(ctx context.Context, m domain.Municipality) (domain.Municipality, error)
	GetByID(ctx context.Context, id string) (domain.Municipality, error)
	List(ctx context.Context) ([]domain.Municipality, error)
	UpdateGuidelines(ctx context.Context, id string, g domain.Guidelines, zoneMapURL string) error
	Guidelines(ctx context.Context, id string) (domain.Guidelines, string, error)
	Delete(ctx context.Context, id string) error
}

// CollectionTypeServicer covers waste-stream CRUD.
type CollectionTypeServicer interface {
	Create(ctx context.Context, muniID string, ct domain.CollectionType) (domain.CollectionType, error)
	GetByID(ctx context.Context, muniID, id string) (domain.CollectionType, error)
	List(ctx context.Context, muniID string) ([]domain.CollectionType, error)
	Update(ctx context.Context, muniID string, ct domain.CollectionType) (domain.CollectionType, error)
	Delete(ctx context.Context, muniID, id string) error
}

// ZoneServicer covers collection-zone CRUD.
type ZoneServicer interface {
	Create(ctx context.Context, muniID string, z domain.Zone) (domain.Zone, error)
	GetByID(ctx context.Context, muniID, id string) (domain.Zone, error)
	List(ctx context.Context, muniID string) ([]domain.Zone, error)
	Update(ctx context.Context, muniID string, z domain.Zone) (domain.Zone, error)
	Delete(ctx context.Context, muniID, id string) error
}

// ScheduleServicer covers per-zone rules and the schedule aggregate.
type ScheduleServicer interface {
	SetRule(ctx context.Context, muniID, zoneID, typeID string, rule domain.RecurrenceRule) (domain.RecurrenceRule, error)
	GetRule(ctx context.Context, muniID, zoneID, typeID string) (domain.RecurrenceRule, error)
	DeleteRule(ctx context.Context, muniID, zoneID, typeID string) error
	Schedule(ctx context.Context, muniID string) (domain.ScheduleData, error)
}

// SpecialServicer covers one-off collection event CRUD.
type SpecialServicer interface {
	Create(ctx context.Context, muniID string, sc domain.SpecialCollection) (domain.SpecialCollection, error)
	GetByID(ctx context.Context, muniID string, id uuid.UUID) (domain.SpecialCollection, error)
	ListPaged(ctx context.Context, muniID string, p domain.PaginationParams) ([]domain.SpecialCollection, int64, error)
	Update(ctx context.Context, muniID string, sc domain.SpecialCollection) (domain.SpecialCollection, error)
	Delete(ctx context.Context, muniID string, id uuid.UUID) error
}

// ProjectionServicer covers the resident-facing computed views.
type ProjectionServicer interface {
	ZoneOverview(ctx context.Context, muniID, zoneID string, today domain.Date, locale string) ([]service.TypeProjection, error)
	Upcoming(ctx context.Context, muniID, zoneID string, today domain.Date, limit int, locale string) ([]service.UpcomingEntry, error)
	Specials(ctx context.Context, muniID, zoneID string, view recurrence.View, today domain.Date) ([]domain.SpecialCollection, error)
}

// Server holds the service dependencies for all API endpoints.
type Server struct {
	munis       MunicipalityServicer
	types       CollectionTypeServicer
	zones       ZoneServicer
	schedules   ScheduleServicer
	specials    SpecialServicer
	projections ProjectionServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(
	munis MunicipalityServicer,
	types CollectionTypeServicer,
	zones ZoneServicer,
	schedules ScheduleServicer,
	specials SpecialServicer,
	projections ProjectionServicer,
) *Server {
	return &Server{
		munis:       munis,
		types:       types,
		zones:       zones,
		schedules:   schedules,
		specials:    specials,
		projections: projections,
	}
}

// Routes returns the chi router with every endpoint registered.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)

	r.Route("/municipalities", func(r chi.Router) {
		r.Post("/", s.CreateMunicipality)
		r.Get("/", s.ListMunicipalities)

		r.Route("/{muniID}", func(r chi.Router) {
			r.Get("/", s.GetMunicipality)
			r.Delete("/", s.DeleteMunicipality)
			r.Get("/guidelines", s.GetGuidelines)
			r.Put("/guidelines", s.UpdateGuidelines)
			r.Get("/schedule", s.GetSchedule)

			r.Route("/collection-types", func(r chi.Router) {
				r.Post("/", s.CreateCollectionType)
				r.Get("/", s.ListCollectionTypes)
				r.Get("/{typeID}", s.GetCollectionType)
				r.Put("/{typeID}", s.UpdateCollectionType)
				r.Delete("/{typeID}", s.DeleteCollectionType)
			})

			r.Route("/zones", func(r chi.Router) {
				r.Post("/", s.CreateZone)
				r.Get("/", s.ListZones)
				r.Get("/{zoneID}", s.GetZone)
				r.Put("/{zoneID}", s.UpdateZone)
				r.Delete("/{zoneID}", s.DeleteZone)

				r.Get("/{zoneID}/next", s.GetZoneOverview)
				r.Get("/{zoneID}/upcoming", s.GetZoneUpcoming)

				r.Route("/{zoneID}/schedule/{typeID}", func(r chi.Router) {
					r.Put("/", s.SetRule)
					r.Get("/", s.GetRule)
					r.Delete("/", s.DeleteRule)
				})
			})

			r.Route("/special-collections", func(r chi.Router) {
				r.Post("/", s.CreateSpecial)
				r.Get("/", s.ListSpecials)
				r.Get("/{specialID}", s.GetSpecial)
				r.Put("/{specialID}", s.UpdateSpecial)
				r.Delete("/{specialID}", s.DeleteSpecial)
			})
		})
	})

	return r
}

package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pcharbonneau/muniboard/internal/domain"
	"github.com/pcharbonneau/muniboard/internal/recurrence"
)

// specialRequest is the write payload for one-off collection events.
type specialRequest struct {
	CollectionTypeID string           `json:"collectionTypeId"`
	CustomName       domain.Bilingual `json:"customName"`
	Color            string           `json:"color"`
	Date             domain.Date      `json:"date"`
	Time             string           `json:"time"`
	EndTime          string           `json:"endTime"`
	Zones            []string         `json:"zones"`
	Description      domain.Bilingual `json:"description"`
	Location         string           `json:"location"`
	Active           *bool            `json:"active"`
}

// toDomain maps the payload to a domain event. A missing active flag
// defaults to true: an event an admin just created should be visible.
func (req specialRequest) toDomain() domain.SpecialCollection {
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	return domain.SpecialCollection{
		CollectionTypeID: req.CollectionTypeID,
		CustomName:       req.CustomName,
		Color:            req.Color,
		Date:             req.Date,
		Time:             req.Time,
		EndTime:          req.EndTime,
		Zones:            req.Zones,
		Description:      req.Description,
		Location:         req.Location,
		Active:           active,
	}
}

// specialPage is the paged admin listing envelope.
type specialPage struct {
	Data       []domain.SpecialCollection `json:"data"`
	Pagination pagination                 `json:"pagination"`
}

type pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// CreateSpecial handles POST /municipalities/{muniID}/special-collections.
func (s *Server) CreateSpecial(w http.ResponseWriter, r *http.Request) {
	var req specialRequest
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	created, err := s.specials.Create(r.Context(), chi.URLParam(r, "muniID"), req.toDomain())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// ListSpecials handles GET /municipalities/{muniID}/special-collections.
//
// Two shapes share the route. With ?view=upcoming|past|all it returns the
// resident-facing filtered list (optionally scoped with ?zone= and pinned
// with ?today=). Without it, the admin paged listing (?page=, ?limit=).
func (s *Server) ListSpecials(w http.ResponseWriter, r *http.Request) {
	muniID := chi.URLParam(r, "muniID")

	if view := r.URL.Query().Get("view"); view != "" {
		today, err := todayParam(r)
		if err != nil {
			respondBadRequest(w, "invalid today parameter: want YYYY-MM-DD")
			return
		}
		events, err := s.projections.Specials(r.Context(), muniID, r.URL.Query().Get("zone"), recurrence.View(view), today)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, events)
		return
	}

	params := domain.NewPaginationParams(intParam(r, "page"), intParam(r, "limit"))
	events, total, err := s.specials.ListPaged(r.Context(), muniID, params)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, specialPage{
		Data: events,
		Pagination: pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: int(total),
		},
	})
}

// GetSpecial handles GET /municipalities/{muniID}/special-collections/{specialID}.
func (s *Server) GetSpecial(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "specialID"))
	if err != nil {
		respondBadRequest(w, "invalid special collection id")
		return
	}

	sc, err := s.specials.GetByID(r.Context(), chi.URLParam(r, "muniID"), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, sc)
}

// UpdateSpecial handles PUT /municipalities/{muniID}/special-collections/{specialID}.
func (s *Server) UpdateSpecial(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "specialID"))
	if err != nil {
		respondBadRequest(w, "invalid special collection id")
		return
	}

	var req specialRequest
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	sc := req.toDomain()
	sc.ID = id

	updated, err := s.specials.Update(r.Context(), chi.URLParam(r, "muniID"), sc)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// DeleteSpecial handles DELETE /municipalities/{muniID}/special-collections/{specialID}.
func (s *Server) DeleteSpecial(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "specialID"))
	if err != nil {
		respondBadRequest(w, "invalid special collection id")
		return
	}

	if err := s.specials.Delete(r.Context(), chi.URLParam(r, "muniID"), id); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

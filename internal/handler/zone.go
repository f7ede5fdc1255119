package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pcharbonneau/muniboard/internal/domain"
)

// zoneRequest is the write payload for zones. The ID is optional on create;
// on update the URL slug is authoritative.
type zoneRequest struct {
	ID          string           `json:"id"`
	Name        domain.Bilingual `json:"name"`
	Description domain.Bilingual `json:"description"`
	Color       string           `json:"color"`
}

func (req zoneRequest) toDomain() domain.Zone {
	return domain.Zone{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
	}
}

// CreateZone handles POST /municipalities/{muniID}/zones.
func (s *Server) CreateZone(w http.ResponseWriter, r *http.Request) {
	var req zoneRequest
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	created, err := s.zones.Create(r.Context(), chi.URLParam(r, "muniID"), req.toDomain())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// ListZones handles GET /municipalities/{muniID}/zones.
func (s *Server) ListZones(w http.ResponseWriter, r *http.Request) {
	zones, err := s.zones.List(r.Context(), chi.URLParam(r, "muniID"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, zones)
}

// GetZone handles GET /municipalities/{muniID}/zones/{zoneID}.
func (s *Server) GetZone(w http.ResponseWriter, r *http.Request) {
	z, err := s.zones.GetByID(r.Context(), chi.URLParam(r, "muniID"), chi.URLParam(r, "zoneID"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, z)
}

// UpdateZone handles PUT /municipalities/{muniID}/zones/{zoneID}.
func (s *Server) UpdateZone(w http.ResponseWriter, r *http.Request) {
	var req zoneRequest
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	z := req.toDomain()
	z.ID = chi.URLParam(r, "zoneID")

	updated, err := s.zones.Update(r.Context(), chi.URLParam(r, "muniID"), z)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// DeleteZone handles DELETE /municipalities/{muniID}/zones/{zoneID}.
// Deleting a municipality's last zone is refused with 422.
func (s *Server) DeleteZone(w http.ResponseWriter, r *http.Request) {
	if err := s.zones.Delete(r.Context(), chi.URLParam(r, "muniID"), chi.URLParam(r, "zoneID")); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pcharbonneau/muniboard/internal/domain"
)

// municipalityRequest is the write payload for municipalities. The ID is
// optional: when omitted it is derived from the English name.
type municipalityRequest struct {
	ID   string           `json:"id"`
	Name domain.Bilingual `json:"name"`
}

// guidelinesRequest is the write payload for PUT /guidelines.
type guidelinesRequest struct {
	Timing     domain.Bilingual     `json:"timing"`
	Placement  domain.BilingualList `json:"placement"`
	ZoneMapURL string               `json:"zoneMapUrl"`
}

// guidelinesResponse is the read shape for GET /guidelines.
type guidelinesResponse struct {
	Timing     domain.Bilingual     `json:"timing"`
	Placement  domain.BilingualList `json:"placement"`
	ZoneMapURL string               `json:"zoneMapUrl,omitempty"`
}

// CreateMunicipality handles POST /municipalities.
func (s *Server) CreateMunicipality(w http.ResponseWriter, r *http.Request) {
	var req municipalityRequest
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	created, err := s.munis.Create(r.Context(), domain.Municipality{ID: req.ID, Name: req.Name})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// ListMunicipalities handles GET /municipalities.
func (s *Server) ListMunicipalities(w http.ResponseWriter, r *http.Request) {
	munis, err := s.munis.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, munis)
}

// GetMunicipality handles GET /municipalities/{muniID}.
func (s *Server) GetMunicipality(w http.ResponseWriter, r *http.Request) {
	muni, err := s.munis.GetByID(r.Context(), chi.URLParam(r, "muniID"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, muni)
}

// DeleteMunicipality handles DELETE /municipalities/{muniID}.
func (s *Server) DeleteMunicipality(w http.ResponseWriter, r *http.Request) {
	if err := s.munis.Delete(r.Context(), chi.URLParam(r, "muniID")); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetGuidelines handles GET /municipalities/{muniID}/guidelines.
func (s *Server) GetGuidelines(w http.ResponseWriter, r *http.Request) {
	g, zoneMapURL, err := s.munis.Guidelines(r.Context(), chi.URLParam(r, "muniID"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, guidelinesResponse{
		Timing:     g.Timing,
		Placement:  g.Placement,
		ZoneMapURL: zoneMapURL,
	})
}

// UpdateGuidelines handles PUT /municipalities/{muniID}/guidelines.
func (s *Server) UpdateGuidelines(w http.ResponseWriter, r *http.Request) {
	var req guidelinesRequest
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	muniID := chi.URLParam(r, "muniID")
	g := domain.Guidelines{Timing: req.Timing, Placement: req.Placement}
	if err := s.munis.UpdateGuidelines(r.Context(), muniID, g, req.ZoneMapURL); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, guidelinesResponse{
		Timing:     g.Timing,
		Placement:  g.Placement,
		ZoneMapURL: req.ZoneMapURL,
	})
}

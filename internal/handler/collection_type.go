package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pcharbonneau/muniboard/internal/domain"
)

// collectionTypeRequest is the write payload for waste streams. The ID is
// optional on create: when omitted it is derived from the English name. On
// update the URL slug is authoritative.
type collectionTypeRequest struct {
	ID          string               `json:"id"`
	Name        domain.Bilingual     `json:"name"`
	BinName     domain.Bilingual     `json:"binName"`
	Color       string               `json:"color"`
	BinSize     string               `json:"binSize"`
	Accepted    domain.BilingualList `json:"accepted"`
	NotAccepted domain.BilingualList `json:"notAccepted"`
	Tip         domain.Bilingual     `json:"tip"`
}

func (req collectionTypeRequest) toDomain() domain.CollectionType {
	return domain.CollectionType{
		ID:          req.ID,
		Name:        req.Name,
		BinName:     req.BinName,
		Color:       req.Color,
		BinSize:     req.BinSize,
		Accepted:    req.Accepted,
		NotAccepted: req.NotAccepted,
		Tip:         req.Tip,
	}
}

// CreateCollectionType handles POST /municipalities/{muniID}/collection-types.
func (s *Server) CreateCollectionType(w http.ResponseWriter, r *http.Request) {
	var req collectionTypeRequest
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	created, err := s.types.Create(r.Context(), chi.URLParam(r, "muniID"), req.toDomain())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// ListCollectionTypes handles GET /municipalities/{muniID}/collection-types.
func (s *Server) ListCollectionTypes(w http.ResponseWriter, r *http.Request) {
	types, err := s.types.List(r.Context(), chi.URLParam(r, "muniID"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, types)
}

// GetCollectionType handles GET /municipalities/{muniID}/collection-types/{typeID}.
func (s *Server) GetCollectionType(w http.ResponseWriter, r *http.Request) {
	ct, err := s.types.GetByID(r.Context(), chi.URLParam(r, "muniID"), chi.URLParam(r, "typeID"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, ct)
}

// UpdateCollectionType handles PUT /municipalities/{muniID}/collection-types/{typeID}.
func (s *Server) UpdateCollectionType(w http.ResponseWriter, r *http.Request) {
	var req collectionTypeRequest
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	ct := req.toDomain()
	ct.ID = chi.URLParam(r, "typeID")

	updated, err := s.types.Update(r.Context(), chi.URLParam(r, "muniID"), ct)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// DeleteCollectionType handles DELETE /municipalities/{muniID}/collection-types/{typeID}.
func (s *Server) DeleteCollectionType(w http.ResponseWriter, r *http.Request) {
	if err := s.types.Delete(r.Context(), chi.URLParam(r, "muniID"), chi.URLParam(r, "typeID")); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

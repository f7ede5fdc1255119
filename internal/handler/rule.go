package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pcharbonneau/muniboard/internal/domain"
)

// SetRule handles PUT /municipalities/{muniID}/zones/{zoneID}/schedule/{typeID}.
// Upserting a rule is how a stream is enabled for a zone.
func (s *Server) SetRule(w http.ResponseWriter, r *http.Request) {
	var rule domain.RecurrenceRule
	if err := decodeJSON(r, &rule); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	saved, err := s.schedules.SetRule(
		r.Context(),
		chi.URLParam(r, "muniID"),
		chi.URLParam(r, "zoneID"),
		chi.URLParam(r, "typeID"),
		rule,
	)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, saved)
}

// GetRule handles GET /municipalities/{muniID}/zones/{zoneID}/schedule/{typeID}.
func (s *Server) GetRule(w http.ResponseWriter, r *http.Request) {
	rule, err := s.schedules.GetRule(
		r.Context(),
		chi.URLParam(r, "muniID"),
		chi.URLParam(r, "zoneID"),
		chi.URLParam(r, "typeID"),
	)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, rule)
}

// DeleteRule handles DELETE /municipalities/{muniID}/zones/{zoneID}/schedule/{typeID},
// disabling the stream for the zone.
func (s *Server) DeleteRule(w http.ResponseWriter, r *http.Request) {
	err := s.schedules.DeleteRule(
		r.Context(),
		chi.URLParam(r, "muniID"),
		chi.URLParam(r, "zoneID"),
		chi.URLParam(r, "typeID"),
	)
	if err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetSchedule handles GET /municipalities/{muniID}/schedule: the full
// aggregate a client app loads once and projects locally.
func (s *Server) GetSchedule(w http.ResponseWriter, r *http.Request) {
	schedule, err := s.schedules.Schedule(r.Context(), chi.URLParam(r, "muniID"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, schedule)
}

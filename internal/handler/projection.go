package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pcharbonneau/muniboard/internal/i18n"
)

// GetZoneOverview handles GET /municipalities/{muniID}/zones/{zoneID}/next.
// It returns the next occurrence of every stream enabled for the zone with
// localized display labels. Supports ?locale= and ?today=YYYY-MM-DD.
func (s *Server) GetZoneOverview(w http.ResponseWriter, r *http.Request) {
	today, err := todayParam(r)
	if err != nil {
		respondBadRequest(w, "invalid today parameter: want YYYY-MM-DD")
		return
	}

	overview, err := s.projections.ZoneOverview(
		r.Context(),
		chi.URLParam(r, "muniID"),
		chi.URLParam(r, "zoneID"),
		today,
		i18n.FromRequest(r),
	)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, overview)
}

// GetZoneUpcoming handles GET /municipalities/{muniID}/zones/{zoneID}/upcoming.
// It returns the zone's merged list of projected regular pickups and active
// one-off events. Supports ?limit= (default 3, capped), ?locale=, and
// ?today=YYYY-MM-DD.
func (s *Server) GetZoneUpcoming(w http.ResponseWriter, r *http.Request) {
	today, err := todayParam(r)
	if err != nil {
		respondBadRequest(w, "invalid today parameter: want YYYY-MM-DD")
		return
	}

	limit := 0
	if n := intParam(r, "limit"); n != nil {
		limit = *n
	}

	entries, err := s.projections.Upcoming(
		r.Context(),
		chi.URLParam(r, "muniID"),
		chi.URLParam(r, "zoneID"),
		today,
		limit,
		i18n.FromRequest(r),
	)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, entries)
}

package httpapi

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/homebase-apps/saved-locations-api/internal/app/locations"
	"github.com/homebase-apps/saved-locations-api/internal/domain"
)

// Server is the HTTP adapter for the locations API.
type Server struct {
	Locations *locations.Service
}

func NewServer(svc *locations.Service) *Server {
	return &Server{Locations: svc}
}

func (s *Server) handleListLocations(w http.ResponseWriter, r *http.Request) {
	ident, ok := IdentityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	ls, err := s.Locations.ListLocations(r.Context(), ident)
	if err != nil {
		writeInternal(w, r, err)
		return
	}
	out := make([]locationJSON, 0, len(ls))
	for _, l := range ls {
		out = append(out, locationFromDomain(l))
	}
	writeJSON(w, http.StatusOK, listLocationsResponse{OK: true, Locations: out})
}

func (s *Server) handleSaveLocation(w http.ResponseWriter, r *http.Request) {
	ident, ok := IdentityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	req, ferrs := decodeSaveLocationRequest(r.Body)
	if len(ferrs) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrorResponse{OK: false, Errors: ferrs})
		return
	}

	l, err := s.Locations.SaveLocation(r.Context(), ident, locations.SaveLocationInput{
		Tag:       *req.Tag,
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
		PlaceID:   *req.PlaceID,
	})
	if err != nil {
		writeInternal(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, saveLocationResponse{OK: true, Location: locationFromDomain(l)})
}

// handleDeleteLocation deletes by id. The caller is authenticated but not
// required to own the record (current policy; see locationrepo.Repository).
func (s *Server) handleDeleteLocation(w http.ResponseWriter, r *http.Request) {
	ident, ok := IdentityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id := domain.LocationID(chi.URLParam(r, "id"))
	if err := s.Locations.DeleteLocation(r.Context(), ident, id); err != nil {
		ae := (*locations.Error)(nil)
		if errors.As(err, &ae) && ae.Status == http.StatusNotFound {
			writeError(w, http.StatusNotFound, ae.Message)
			return
		}
		writeInternal(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, deleteLocationResponse{OK: true})
}

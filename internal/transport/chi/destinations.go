package chi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kailas-cloud/tripdex/internal/domain/search/query"
)

// ListDestinations handles GET /api/destinations?q=&category=&sortBy=.
func (s *Server) ListDestinations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	crit := query.NewCriteria(q.Get("q"), q.Get("category"), "", q.Get("sortBy"))

	items, err := s.destinations.List(r.Context(), crit)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, destinationsToResponse(items))
}

// PopularDestinations handles GET /api/destinations/popular.
func (s *Server) PopularDestinations(w http.ResponseWriter, r *http.Request) {
	items, err := s.destinations.Popular(r.Context())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, destinationsToResponse(items))
}

// DestinationsByCategory handles GET /api/destinations/category/{category}.
func (s *Server) DestinationsByCategory(w http.ResponseWriter, r *http.Request) {
	items, err := s.destinations.ByCategory(r.Context(), chi.URLParam(r, "category"))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, destinationsToResponse(items))
}

// GetDestination handles GET /api/destinations/{id}.
func (s *Server) GetDestination(w http.ResponseWriter, r *http.Request) {
	d, err := s.destinations.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, destinationToResponse(d))
}

// CreateDestination handles POST /api/destinations.
func (s *Server) CreateDestination(w http.ResponseWriter, r *http.Request) {
	var req destinationRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	d, err := s.destinations.Create(r.Context(), req.fields())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	w.Header().Set("Location", "/api/destinations/"+d.ID())
	writeJSON(w, http.StatusCreated, destinationToResponse(d))
}

// UpdateDestination handles PUT /api/destinations/{id}. Absent fields are kept.
func (s *Server) UpdateDestination(w http.ResponseWriter, r *http.Request) {
	var req destinationPatchRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	d, err := s.destinations.Update(r.Context(), chi.URLParam(r, "id"), req.patch())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, destinationToResponse(d))
}

// DeleteDestination handles DELETE /api/destinations/{id}.
func (s *Server) DeleteDestination(w http.ResponseWriter, r *http.Request) {
	if err := s.destinations.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Destination deleted successfully"})
}

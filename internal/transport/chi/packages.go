package chi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kailas-cloud/tripdex/internal/domain/search/query"
)

// ListPackages handles GET /api/packages?q=&type=&sortBy=.
func (s *Server) ListPackages(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	crit := query.NewCriteria(q.Get("q"), "", q.Get("type"), q.Get("sortBy"))

	items, err := s.packages.List(r.Context(), crit)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, packagesToResponse(items))
}

// TopSellingPackages handles GET /api/packages/top-selling.
func (s *Server) TopSellingPackages(w http.ResponseWriter, r *http.Request) {
	items, err := s.packages.TopSelling(r.Context())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, packagesToResponse(items))
}

// LuxuryPackages handles GET /api/packages/luxury.
func (s *Server) LuxuryPackages(w http.ResponseWriter, r *http.Request) {
	items, err := s.packages.Luxury(r.Context())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, packagesToResponse(items))
}

// GetPackage handles GET /api/packages/{id}.
func (s *Server) GetPackage(w http.ResponseWriter, r *http.Request) {
	p, err := s.packages.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, packageToResponse(p))
}

// CreatePackage handles POST /api/packages.
func (s *Server) CreatePackage(w http.ResponseWriter, r *http.Request) {
	var req packageRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	p, err := s.packages.Create(r.Context(), req.fields())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	w.Header().Set("Location", "/api/packages/"+p.ID())
	writeJSON(w, http.StatusCreated, packageToResponse(p))
}

// UpdatePackage handles PUT /api/packages/{id}.
func (s *Server) UpdatePackage(w http.ResponseWriter, r *http.Request) {
	var req packagePatchRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	p, err := s.packages.Update(r.Context(), chi.URLParam(r, "id"), req.patch())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, packageToResponse(p))
}

// DeletePackage handles DELETE /api/packages/{id}.
func (s *Server) DeletePackage(w http.ResponseWriter, r *http.Request) {
	if err := s.packages.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Package deleted successfully"})
}

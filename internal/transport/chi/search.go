package chi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/kailas-cloud/tripdex/internal/domain/search/record"
)

// HeaderSearchPartial lists the collections missing from a degraded search.
const HeaderSearchPartial = "X-Search-Partial"

// Search handles GET /api/search?q=.
func (s *Server) Search(w http.ResponseWriter, r *http.Request) {
	res, err := s.search.Aggregate(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	setPartial(w, res.Failed)
	writeJSON(w, http.StatusOK, recordsToResponse(res.Records))
}

// Suggestions handles GET /api/search/suggestions?q=&limit=.
func (s *Server) Suggestions(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, CodeValidationFailed, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	res, err := s.search.Suggest(r.Context(), r.URL.Query().Get("q"), limit)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	setPartial(w, res.Failed)
	writeJSON(w, http.StatusOK, scoredToResponse(res.Items))
}

func setPartial(w http.ResponseWriter, failed []record.Type) {
	if len(failed) == 0 {
		return
	}
	names := make([]string, len(failed))
	for i, t := range failed {
		names[i] = string(t)
	}
	w.Header().Set(HeaderSearchPartial, strings.Join(names, ","))
}

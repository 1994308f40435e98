package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMiddleware_LabelsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware())
	r.Get("/api/packages/{id}", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	for _, id := range []string{"a", "b", "c"} {
		req := httptest.NewRequest(http.MethodGet, "/api/packages/"+id, http.NoBody)
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	got := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/api/packages/{id}", "200"))
	if got < 3 {
		t.Errorf("expected >= 3 requests on the pattern label, got %f", got)
	}
	if testutil.CollectAndCount(httpRequestDuration) == 0 {
		t.Error("expected duration observations")
	}
}

func TestMiddleware_StatusCodes(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware())
	r.Get("/missing", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	r.Post("/broken", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.WriteHeader(http.StatusOK) // ignored, first status wins
	})

	tests := []struct {
		method, path, status string
	}{
		{"GET", "/missing", "404"},
		{"POST", "/broken", "500"},
	}
	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, http.NoBody)
			r.ServeHTTP(httptest.NewRecorder(), req)

			if v := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(tc.method, tc.path, tc.status)); v < 1 {
				t.Errorf("expected a %s sample for %s, got %f", tc.status, tc.path, v)
			}
		})
	}
}

func TestMiddleware_InFlightSettles(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware())
	var during float64
	r.Get("/slow", func(w http.ResponseWriter, _ *http.Request) {
		during = testutil.ToFloat64(httpRequestsInFlight)
		w.WriteHeader(http.StatusNoContent)
	})

	before := testutil.ToFloat64(httpRequestsInFlight)
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/slow", http.NoBody))

	if during != before+1 {
		t.Errorf("expected in-flight %f during request, got %f", before+1, during)
	}
	if after := testutil.ToFloat64(httpRequestsInFlight); after != before {
		t.Errorf("expected in-flight back to %f, got %f", before, after)
	}
}

func TestRouteLabel(t *testing.T) {
	if got := routeLabel(""); got != "unknown" {
		t.Errorf("routeLabel(\"\") = %q", got)
	}
	if got := routeLabel("/api/search"); got != "/api/search" {
		t.Errorf("routeLabel = %q", got)
	}
}

func TestHandler_ExposesRegisteredMetrics(t *testing.T) {
	RegisterDomainMetrics()
	SearchAggregationsTotal.WithLabelValues("complete").Inc()

	rr := httptest.NewRecorder()
	Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))

	body := rr.Body.String()
	if !strings.Contains(body, "tripdex_http_requests_in_flight") {
		t.Error("in-flight gauge missing from exposition")
	}
	if !strings.Contains(body, "tripdex_search_aggregations_total") {
		t.Error("search metrics missing from exposition")
	}
}

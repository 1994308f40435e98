package chi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/kailas-cloud/tripdex/internal/domain"
	"github.com/kailas-cloud/tripdex/internal/logger"
	"github.com/kailas-cloud/tripdex/internal/metrics"
	authuc "github.com/kailas-cloud/tripdex/internal/usecase/auth"
	destinationuc "github.com/kailas-cloud/tripdex/internal/usecase/destination"
	healthuc "github.com/kailas-cloud/tripdex/internal/usecase/health"
	searchuc "github.com/kailas-cloud/tripdex/internal/usecase/search"
	touruc "github.com/kailas-cloud/tripdex/internal/usecase/tour"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error) bool

// Server serves the tripdex REST API.
type Server struct {
	destinations  *destinationuc.Service
	packages      *touruc.Service
	search        *searchuc.Service
	auth          *authuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	authLimiter   *ipLimiter
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	destinations *destinationuc.Service,
	packages *touruc.Service,
	search *searchuc.Service,
	auth *authuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		destinations: destinations,
		packages:     packages,
		search:       search,
		auth:         auth,
		health:       health,
		logger:       logger,
		authLimiter:  newIPLimiter(DefaultAuthRatePerMinute),
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrInvalidIdentifier, http.StatusBadRequest, CodeInvalidID),
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, CodeNotFound),
		sentinelHandler(domain.ErrAlreadyExists, http.StatusConflict, CodeAlreadyExists),
		sentinelHandler(domain.ErrPasswordMismatch, http.StatusBadRequest, CodePasswordMismatch),
		sentinelHandler(domain.ErrInvalidInput, http.StatusBadRequest, CodeValidationFailed),
		sentinelHandler(domain.ErrUnauthorized, http.StatusUnauthorized, CodeUnauthorized),
		sentinelHandler(domain.ErrForbidden, http.StatusForbidden, CodeForbidden),
		sentinelHandler(domain.ErrRateLimited, http.StatusTooManyRequests, CodeRateLimited),
		sentinelHandler(domain.ErrSearchUnavailable, http.StatusServiceUnavailable, CodeSearchUnavailable),
	}
	return s
}

// WithAuthRateLimit sets the per-IP request budget for /api/auth.
func (s *Server) WithAuthRateLimit(perMinute int) *Server {
	if perMinute > 0 {
		s.authLimiter = newIPLimiter(perMinute)
	}
	return s
}

// Router builds the chi router with the full middleware stack.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(jsonRecoverer(s.logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(s.logger))
	r.Use(metrics.Middleware())

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, CodeNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, CodeBadRequest, "method not allowed")
	})

	r.Get("/health", s.HealthCheck)
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/destinations", func(r chi.Router) {
			r.Get("/", s.ListDestinations)
			r.Get("/popular", s.PopularDestinations)
			r.Get("/category/{category}", s.DestinationsByCategory)
			r.Get("/{id}", s.GetDestination)
			r.Group(func(r chi.Router) {
				r.Use(s.RequireAdmin)
				r.Post("/", s.CreateDestination)
				r.Put("/{id}", s.UpdateDestination)
				r.Delete("/{id}", s.DeleteDestination)
			})
		})

		r.Route("/packages", func(r chi.Router) {
			r.Get("/", s.ListPackages)
			r.Get("/top-selling", s.TopSellingPackages)
			r.Get("/luxury", s.LuxuryPackages)
			r.Get("/{id}", s.GetPackage)
			r.Group(func(r chi.Router) {
				r.Use(s.RequireAdmin)
				r.Post("/", s.CreatePackage)
				r.Put("/{id}", s.UpdatePackage)
				r.Delete("/{id}", s.DeletePackage)
			})
		})

		r.Route("/search", func(r chi.Router) {
			r.Get("/", s.Search)
			r.Get("/suggestions", s.Suggestions)
		})

		r.Route("/auth", func(r chi.Router) {
			r.Use(s.authLimiter.Middleware)
			r.Post("/register", s.Register)
			r.Post("/login", s.Login)
			r.With(s.RequireUser).Get("/me", s.Me)
		})
	})

	return r
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}
	writeJSON(w, httpStatus, healthResponse{Status: string(report.Status), Checks: checks})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{Code: code, Message: message})
}

// decodeJSON reads a size-limited JSON body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	return true
}

// clientMessage returns a message safe to show the client. Validation and
// auth errors carry user-facing detail; everything else collapses to its
// sentinel text.
func clientMessage(err error) string {
	for _, detailed := range []error{
		domain.ErrInvalidInput, domain.ErrUnauthorized, domain.ErrAlreadyExists,
	} {
		if errors.Is(err, detailed) {
			return trimWrapPrefix(err.Error())
		}
	}
	for _, s := range []error{
		domain.ErrInvalidIdentifier, domain.ErrNotFound, domain.ErrPasswordMismatch,
		domain.ErrForbidden, domain.ErrRateLimited, domain.ErrSearchUnavailable,
	} {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// trimWrapPrefix drops the "op: " chains added by inner layers, keeping the
// last two segments ("invalid input: name is required").
func trimWrapPrefix(msg string) string {
	var parts []string
	start := 0
	for i := 0; i+1 < len(msg); i++ {
		if msg[i] == ':' && msg[i+1] == ' ' {
			parts = append(parts, msg[start:i])
			start = i + 2
		}
	}
	parts = append(parts, msg[start:])
	if len(parts) <= 2 {
		return msg
	}
	return fmt.Sprintf("%s: %s", parts[len(parts)-2], parts[len(parts)-1])
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, clientMessage(err))
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())
	for _, h := range s.errorHandlers {
		if h(w, err) {
			log.Debug("domain error", zap.Error(err))
			return
		}
	}
	log.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, CodeInternalError, "internal error")
}

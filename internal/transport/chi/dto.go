package chi

import (
	"time"

	domdest "github.com/kailas-cloud/tripdex/internal/domain/destination"
	"github.com/kailas-cloud/tripdex/internal/domain/search/record"
	domtour "github.com/kailas-cloud/tripdex/internal/domain/tour"
	domuser "github.com/kailas-cloud/tripdex/internal/domain/user"
)

// ErrorCode is the machine-readable error discriminator.
type ErrorCode string

// Error codes returned in ErrorResponse.Code.
const (
	CodeBadRequest        ErrorCode = "bad_request"
	CodeValidationFailed  ErrorCode = "validation_failed"
	CodeInvalidID         ErrorCode = "invalid_id"
	CodeNotFound          ErrorCode = "not_found"
	CodeAlreadyExists     ErrorCode = "already_exists"
	CodePasswordMismatch  ErrorCode = "password_mismatch"
	CodeUnauthorized      ErrorCode = "unauthorized"
	CodeForbidden         ErrorCode = "forbidden"
	CodeRateLimited       ErrorCode = "rate_limited"
	CodeSearchUnavailable ErrorCode = "search_unavailable"
	CodeInternalError     ErrorCode = "internal_error"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// --- Destinations ---

type destinationResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	State       string    `json:"state"`
	Category    string    `json:"category"`
	Price       string    `json:"price"`
	Rating      float64   `json:"rating"`
	Reviews     int       `json:"reviews"`
	BestTime    string    `json:"bestTime"`
	Highlights  []string  `json:"highlights"`
	Image       string    `json:"image"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func destinationToResponse(d domdest.Destination) destinationResponse {
	return destinationResponse{
		ID:          d.ID(),
		Name:        d.Name(),
		State:       d.State(),
		Category:    d.Category(),
		Price:       d.Price(),
		Rating:      d.Rating(),
		Reviews:     d.Reviews(),
		BestTime:    d.BestTime(),
		Highlights:  nonNil(d.Highlights()),
		Image:       d.Image(),
		Description: d.Description(),
		CreatedAt:   d.CreatedAt(),
		UpdatedAt:   d.UpdatedAt(),
	}
}

func destinationsToResponse(ds []domdest.Destination) []destinationResponse {
	out := make([]destinationResponse, len(ds))
	for i, d := range ds {
		out[i] = destinationToResponse(d)
	}
	return out
}

type destinationRequest struct {
	Name        string   `json:"name"`
	State       string   `json:"state"`
	Category    string   `json:"category"`
	Price       string   `json:"price"`
	Rating      float64  `json:"rating"`
	Reviews     int      `json:"reviews"`
	BestTime    string   `json:"bestTime"`
	Highlights  []string `json:"highlights"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
}

func (r destinationRequest) fields() domdest.Fields {
	return domdest.Fields{
		Name:        r.Name,
		State:       r.State,
		Category:    r.Category,
		Price:       r.Price,
		Rating:      r.Rating,
		Reviews:     r.Reviews,
		BestTime:    r.BestTime,
		Highlights:  r.Highlights,
		Image:       r.Image,
		Description: r.Description,
	}
}

type destinationPatchRequest struct {
	Name        *string  `json:"name"`
	State       *string  `json:"state"`
	Category    *string  `json:"category"`
	Price       *string  `json:"price"`
	Rating      *float64 `json:"rating"`
	Reviews     *int     `json:"reviews"`
	BestTime    *string  `json:"bestTime"`
	Highlights  []string `json:"highlights"`
	Image       *string  `json:"image"`
	Description *string  `json:"description"`
}

func (r destinationPatchRequest) patch() domdest.Patch {
	return domdest.Patch{
		Name:        r.Name,
		State:       r.State,
		Category:    r.Category,
		Price:       r.Price,
		Rating:      r.Rating,
		Reviews:     r.Reviews,
		BestTime:    r.BestTime,
		Highlights:  r.Highlights,
		Image:       r.Image,
		Description: r.Description,
	}
}

// --- Packages ---

type packageResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Duration      string    `json:"duration"`
	Price         string    `json:"price"`
	OriginalPrice string    `json:"originalPrice,omitempty"`
	Cities        []string  `json:"cities"`
	Destination   string    `json:"destination,omitempty"`
	Rating        float64   `json:"rating"`
	Reviews       int       `json:"reviews"`
	Inclusions    []string  `json:"inclusions"`
	Highlights    []string  `json:"highlights"`
	Image         string    `json:"image"`
	Description   string    `json:"description"`
	BestSeller    bool      `json:"bestSeller"`
	Popular       bool      `json:"popular"`
	Luxury        bool      `json:"luxury"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func packageToResponse(p domtour.Package) packageResponse {
	return packageResponse{
		ID:            p.ID(),
		Title:         p.Title(),
		Duration:      p.Duration(),
		Price:         p.Price(),
		OriginalPrice: p.OriginalPrice(),
		Cities:        nonNil(p.Cities()),
		Destination:   p.Destination(),
		Rating:        p.Rating(),
		Reviews:       p.Reviews(),
		Inclusions:    nonNil(p.Inclusions()),
		Highlights:    nonNil(p.Highlights()),
		Image:         p.Image(),
		Description:   p.Description(),
		BestSeller:    p.BestSeller(),
		Popular:       p.Popular(),
		Luxury:        p.Luxury(),
		CreatedAt:     p.CreatedAt(),
		UpdatedAt:     p.UpdatedAt(),
	}
}

func packagesToResponse(ps []domtour.Package) []packageResponse {
	out := make([]packageResponse, len(ps))
	for i, p := range ps {
		out[i] = packageToResponse(p)
	}
	return out
}

type packageRequest struct {
	Title         string   `json:"title"`
	Duration      string   `json:"duration"`
	Price         string   `json:"price"`
	OriginalPrice string   `json:"originalPrice"`
	Cities        []string `json:"cities"`
	Destination   string   `json:"destination"`
	Rating        float64  `json:"rating"`
	Reviews       int      `json:"reviews"`
	Inclusions    []string `json:"inclusions"`
	Highlights    []string `json:"highlights"`
	Image         string   `json:"image"`
	Description   string   `json:"description"`
	BestSeller    bool     `json:"bestSeller"`
	Popular       bool     `json:"popular"`
	Luxury        bool     `json:"luxury"`
}

func (r packageRequest) fields() domtour.Fields {
	return domtour.Fields{
		Title:         r.Title,
		Duration:      r.Duration,
		Price:         r.Price,
		OriginalPrice: r.OriginalPrice,
		Cities:        r.Cities,
		Destination:   r.Destination,
		Rating:        r.Rating,
		Reviews:       r.Reviews,
		Inclusions:    r.Inclusions,
		Highlights:    r.Highlights,
		Image:         r.Image,
		Description:   r.Description,
		BestSeller:    r.BestSeller,
		Popular:       r.Popular,
		Luxury:        r.Luxury,
	}
}

type packagePatchRequest struct {
	Title         *string  `json:"title"`
	Duration      *string  `json:"duration"`
	Price         *string  `json:"price"`
	OriginalPrice *string  `json:"originalPrice"`
	Cities        []string `json:"cities"`
	Destination   *string  `json:"destination"`
	Rating        *float64 `json:"rating"`
	Reviews       *int     `json:"reviews"`
	Inclusions    []string `json:"inclusions"`
	Highlights    []string `json:"highlights"`
	Image         *string  `json:"image"`
	Description   *string  `json:"description"`
	BestSeller    *bool    `json:"bestSeller"`
	Popular       *bool    `json:"popular"`
	Luxury        *bool    `json:"luxury"`
}

func (r packagePatchRequest) patch() domtour.Patch {
	return domtour.Patch{
		Title:         r.Title,
		Duration:      r.Duration,
		Price:         r.Price,
		OriginalPrice: r.OriginalPrice,
		Cities:        r.Cities,
		Destination:   r.Destination,
		Rating:        r.Rating,
		Reviews:       r.Reviews,
		Inclusions:    r.Inclusions,
		Highlights:    r.Highlights,
		Image:         r.Image,
		Description:   r.Description,
		BestSeller:    r.BestSeller,
		Popular:       r.Popular,
		Luxury:        r.Luxury,
	}
}

// --- Search ---

// recordResponse is one tagged search hit. Exactly one of Destination and
// Package is set, matching Type. Score is present on suggestions only.
type recordResponse struct {
	Type        record.Type          `json:"type"`
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Location    string               `json:"location"`
	Rating      float64              `json:"rating"`
	Score       *float64             `json:"score,omitempty"`
	Destination *destinationResponse `json:"destination,omitempty"`
	Package     *packageResponse     `json:"package,omitempty"`
}

func recordToResponse(r record.Record) recordResponse {
	out := recordResponse{
		Type:     r.Type(),
		ID:       r.ID(),
		Name:     r.DisplayName(),
		Location: r.Location(),
		Rating:   r.Rating(),
	}
	if d, ok := r.Destination(); ok {
		dr := destinationToResponse(d)
		dr.ID = r.ID()
		out.Destination = &dr
	}
	if p, ok := r.Package(); ok {
		pr := packageToResponse(p)
		pr.ID = r.ID()
		out.Package = &pr
	}
	return out
}

func recordsToResponse(rs []record.Record) []recordResponse {
	out := make([]recordResponse, len(rs))
	for i, r := range rs {
		out[i] = recordToResponse(r)
	}
	return out
}

func scoredToResponse(items []record.Scored) []recordResponse {
	out := make([]recordResponse, len(items))
	for i, s := range items {
		out[i] = recordToResponse(s.Record())
		score := s.Score()
		out[i].Score = &score
	}
	return out
}

// --- Auth ---

type registerRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Email     string       `json:"email"`
	Role      domuser.Role `json:"role"`
	CreatedAt time.Time    `json:"createdAt"`
}

func userToResponse(u domuser.User) userResponse {
	return userResponse{
		ID:        u.ID(),
		Name:      u.Name(),
		Email:     u.Email(),
		Role:      u.Role(),
		CreatedAt: u.CreatedAt(),
	}
}

type userData struct {
	User userResponse `json:"user"`
}

// authResponse is the envelope of register, login and me.
type authResponse struct {
	Status string   `json:"status"`
	Token  string   `json:"token,omitempty"`
	Data   userData `json:"data"`
}

// --- Health ---

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

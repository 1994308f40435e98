package tripdex

import "time"

// Record types returned by search.
const (
	TypeDestination = "destination"
	TypePackage     = "package"
)

// Destination is a place in the catalog.
type Destination struct {
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

// Package is a bookable tour package.
type Package struct {
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

// PackageInput is the body of CreatePackage.
type PackageInput struct {
	Title         string   `json:"title"`
	Duration      string   `json:"duration"`
	Price         string   `json:"price"`
	OriginalPrice string   `json:"originalPrice,omitempty"`
	Cities        []string `json:"cities,omitempty"`
	Destination   string   `json:"destination,omitempty"`
	Rating        float64  `json:"rating,omitempty"`
	Reviews       int      `json:"reviews,omitempty"`
	Inclusions    []string `json:"inclusions,omitempty"`
	Highlights    []string `json:"highlights,omitempty"`
	Image         string   `json:"image,omitempty"`
	Description   string   `json:"description,omitempty"`
	BestSeller    bool     `json:"bestSeller,omitempty"`
	Popular       bool     `json:"popular,omitempty"`
	Luxury        bool     `json:"luxury,omitempty"`
}

// PackagePatch is the body of UpdatePackage. Nil fields are left unchanged.
type PackagePatch struct {
	Title         *string  `json:"title,omitempty"`
	Duration      *string  `json:"duration,omitempty"`
	Price         *string  `json:"price,omitempty"`
	OriginalPrice *string  `json:"originalPrice,omitempty"`
	Cities        []string `json:"cities,omitempty"`
	Destination   *string  `json:"destination,omitempty"`
	Rating        *float64 `json:"rating,omitempty"`
	Reviews       *int     `json:"reviews,omitempty"`
	Inclusions    []string `json:"inclusions,omitempty"`
	Highlights    []string `json:"highlights,omitempty"`
	Image         *string  `json:"image,omitempty"`
	Description   *string  `json:"description,omitempty"`
	BestSeller    *bool    `json:"bestSeller,omitempty"`
	Popular       *bool    `json:"popular,omitempty"`
	Luxury        *bool    `json:"luxury,omitempty"`
}

// Record is one tagged search hit. Exactly one of Destination and Package
// is set, matching Type.
type Record struct {
	Type        string       `json:"type"`
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Location    string       `json:"location"`
	Rating      float64      `json:"rating"`
	Score       float64      `json:"score,omitempty"`
	Destination *Destination `json:"destination,omitempty"`
	Package     *Package     `json:"package,omitempty"`
}

// SearchResult is a merged search response. Partial names the collections
// whose sub-query failed on the server; it is empty for a complete result.
type SearchResult struct {
	Records []Record
	Partial []string
}

// ListOptions filters and orders a catalog listing. Zero values are omitted.
// Category applies to destinations only; Type (bestSeller, popular, luxury)
// to packages only.
type ListOptions struct {
	Query    string
	SortBy   string
	Category string
	Type     string
}

// User is an account as seen by the API.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// Session is the result of Login.
type Session struct {
	Token string
	User  User
}

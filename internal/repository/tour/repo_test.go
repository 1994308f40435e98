package tour

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/kailas-cloud/tripdex/internal/db/memory"
	"github.com/kailas-cloud/tripdex/internal/domain"
	"github.com/kailas-cloud/tripdex/internal/domain/search/query"
	domtour "github.com/kailas-cloud/tripdex/internal/domain/tour"
	"github.com/kailas-cloud/tripdex/internal/logger"
)

var t0 = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func mustPkg(t *testing.T, id, title string, cities []string, luxury bool, at time.Time) domtour.Package {
	t.Helper()
	p, err := domtour.New(id, domtour.Fields{
		Title: title, Duration: "5D/4N", Price: "₹20,000", OriginalPrice: "₹25,000",
		Cities: cities, Rating: 4.4, Reviews: 10, Description: title,
		Inclusions: []string{"Hotel"}, Luxury: luxury,
	}, at)
	if err != nil {
		t.Fatalf("build package: %v", err)
	}
	return p
}

func TestCreateGet_RoundTrip(t *testing.T) {
	ctx := context.Background()
	r := New(memory.NewStore(), "tripdex:")
	_ = r.Create(ctx, mustPkg(t, "p-1", "Kerala Escape", []string{"Kochi", "Munnar"}, true, t0))

	got, err := r.Get(ctx, "p-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Title() != "Kerala Escape" || !got.Luxury() || got.OriginalPrice() != "₹25,000" {
		t.Errorf("unexpected package: %+v", got.Fields())
	}
	if c := got.Cities(); len(c) != 2 || c[1] != "Munnar" {
		t.Errorf("Cities = %v", c)
	}
}

func TestFind_TypeFilter(t *testing.T) {
	ctx := context.Background()
	r := New(memory.NewStore(), "")
	_ = r.Create(ctx, mustPkg(t, "a", "Kerala Escape", []string{"Kochi"}, true, t0))
	_ = r.Create(ctx, mustPkg(t, "b", "Goa Beaches", []string{"Panaji"}, false, t0.Add(time.Hour)))

	got, err := r.Find(ctx, query.ForPackages(query.NewCriteria("", "", "luxury", "")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID() != "a" {
		t.Errorf("unexpected result: %v", got)
	}
}

func TestDelete_NotFound(t *testing.T) {
	r := New(memory.NewStore(), "")
	if err := r.Delete(context.Background(), "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdate_Missing(t *testing.T) {
	r := New(memory.NewStore(), "")
	p := mustPkg(t, "ghost", "Ghost Tour", []string{"Nowhere"}, false, t0)
	if err := r.Update(context.Background(), p); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestFind_MalformedDocumentLogged(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	ctx := logger.ContextWithLogger(context.Background(), zap.New(core))
	s := memory.NewStore()
	r := New(s, "")
	_ = r.Create(ctx, mustPkg(t, "a", "Kerala Escape", []string{"Kochi"}, false, t0))
	_ = s.JSONSet(ctx, "{packages}:a", "$", []byte(`{"title": ["not", "a", "string"]}`))

	got, err := r.Find(ctx, query.ForPackages(query.Criteria{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Title() != "" {
		t.Fatalf("expected one package with default title, got %v", got)
	}
	if logs.FilterMessage("malformed document, using defaults").Len() != 1 {
		t.Errorf("expected one warning, got %v", logs.All())
	}
}

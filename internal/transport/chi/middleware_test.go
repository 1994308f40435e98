package chi

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestJSONRecoverer(t *testing.T) {
	h := jsonRecoverer(zap.NewNop())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	expectError(t, rr, http.StatusInternalServerError, CodeInternalError)
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestTrimWrapPrefix(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"unauthorized: token expired", "unauthorized: token expired"},
		{"create destination: invalid input: name is required", "invalid input: name is required"},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		if got := trimWrapPrefix(tt.in); got != tt.want {
			t.Errorf("trimWrapPrefix(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
		ok     bool
	}{
		{"Bearer abc", "abc", true},
		{"bearer abc", "abc", true},
		{"Bearer ", "", false},
		{"Basic abc", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		r := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
		if tt.header != "" {
			r.Header.Set("Authorization", tt.header)
		}
		got, ok := bearerToken(r)
		if got != tt.want || ok != tt.ok {
			t.Errorf("bearerToken(%q) = %q, %v", tt.header, got, ok)
		}
	}
}

func TestIPLimiter_RefillAndEviction(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l := newIPLimiter(60) // one token per second
	l.now = func() time.Time { return now }

	for i := 0; i < 60; i++ {
		if ok, _ := l.allow("10.0.0.1"); !ok {
			t.Fatalf("request %d rejected within burst", i+1)
		}
	}
	if ok, retry := l.allow("10.0.0.1"); ok || retry <= 0 {
		t.Fatalf("expected rejection with retry hint, got ok=%v retry=%s", ok, retry)
	}
	if ok, _ := l.allow("10.0.0.2"); !ok {
		t.Fatal("other clients must have their own bucket")
	}

	now = now.Add(2 * time.Second)
	if ok, _ := l.allow("10.0.0.1"); !ok {
		t.Fatal("expected refill after two seconds")
	}

	now = now.Add(idleTTL + time.Minute)
	l.allow("10.0.0.3")
	if _, ok := l.entries["10.0.0.2"]; ok {
		t.Error("idle limiter should be evicted")
	}
}

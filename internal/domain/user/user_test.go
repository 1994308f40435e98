package user

import (
	"errors"
	"testing"
	"time"

	"github.com/kailas-cloud/tripdex/internal/domain"
)

func TestNew_NormalizesEmail(t *testing.T) {
	u, err := New("u-1", " Asha ", "  Asha@Example.COM ", "hash", RoleUser, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Email() != "asha@example.com" {
		t.Errorf("Email() = %q", u.Email())
	}
	if u.Name() != "Asha" {
		t.Errorf("Name() = %q", u.Name())
	}
	if u.IsAdmin() {
		t.Error("plain user reported as admin")
	}
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name                   string
		id, uname, email, hash string
		role                   Role
	}{
		{"missing id", "", "A", "a@b.c", "h", RoleUser},
		{"missing name", "u", " ", "a@b.c", "h", RoleUser},
		{"bad email", "u", "A", "not-an-email", "h", RoleUser},
		{"missing hash", "u", "A", "a@b.c", "", RoleUser},
		{"unknown role", "u", "A", "a@b.c", "h", Role("root")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.id, tt.uname, tt.email, tt.hash, tt.role, time.Now())
			if !errors.Is(err, domain.ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestIsAdmin(t *testing.T) {
	u := Reconstruct("u-1", "Root", "root@example.com", "h", RoleAdmin, time.Now())
	if !u.IsAdmin() {
		t.Error("expected admin")
	}
}

package auth

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/kailas-cloud/tripdex/internal/domain"
	domuser "github.com/kailas-cloud/tripdex/internal/domain/user"
	"github.com/kailas-cloud/tripdex/internal/token"
)

// --- Mocks ---

type mockRepo struct {
	byID      map[string]domuser.User
	createErr error
	getErr    error
}

func newMockRepo() *mockRepo {
	return &mockRepo{byID: make(map[string]domuser.User)}
}

func (m *mockRepo) Create(_ context.Context, u domuser.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	for _, existing := range m.byID {
		if existing.Email() == u.Email() {
			return domain.ErrAlreadyExists
		}
	}
	m.byID[u.ID()] = u
	return nil
}

func (m *mockRepo) Get(_ context.Context, id string) (domuser.User, error) {
	if m.getErr != nil {
		return domuser.User{}, m.getErr
	}
	u, ok := m.byID[id]
	if !ok {
		return domuser.User{}, domain.ErrNotFound
	}
	return u, nil
}

func (m *mockRepo) GetByEmail(_ context.Context, email string) (domuser.User, error) {
	if m.getErr != nil {
		return domuser.User{}, m.getErr
	}
	for _, u := range m.byID {
		if u.Email() == email {
			return u, nil
		}
	}
	return domuser.User{}, domain.ErrNotFound
}

// --- Helpers ---

func newService(t *testing.T, repo Repository, admins ...string) *Service {
	t.Helper()
	issuer, err := token.NewIssuer([]byte("0123456789abcdef0123"), time.Hour)
	if err != nil {
		t.Fatalf("issuer: %v", err)
	}
	svc, err := New(repo, issuer, Config{AdminEmails: admins, BcryptCost: bcrypt.MinCost})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	seq := 0
	svc.newID = func() string {
		seq++
		return "user-" + string(rune('0'+seq))
	}
	return svc
}

func registerInput(email string) RegisterInput {
	return RegisterInput{Name: "Asha", Email: email, Password: "goa-beach-2024", ConfirmPassword: "goa-beach-2024"}
}

// --- Register ---

func TestRegister_Success(t *testing.T) {
	repo := newMockRepo()
	svc := newService(t, repo)

	sess, err := svc.Register(context.Background(), registerInput("  Asha@Example.com "))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.Token == "" {
		t.Error("expected token")
	}
	if sess.User.Email() != "asha@example.com" {
		t.Errorf("email = %q, want normalized", sess.User.Email())
	}
	if sess.User.Role() != domuser.RoleUser {
		t.Errorf("role = %q, want user", sess.User.Role())
	}
	if sess.User.PasswordHash() == "goa-beach-2024" {
		t.Error("password stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(sess.User.PasswordHash()), []byte("goa-beach-2024")); err != nil {
		t.Errorf("hash does not match password: %v", err)
	}
}

func TestRegister_AdminEmail(t *testing.T) {
	svc := newService(t, newMockRepo(), "Ops@Tripdex.io")

	sess, err := svc.Register(context.Background(), registerInput("ops@tripdex.io"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sess.User.IsAdmin() {
		t.Error("expected admin role for configured email")
	}
}

func TestRegister_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RegisterInput)
		wantErr error
	}{
		{"mismatch", func(in *RegisterInput) { in.ConfirmPassword = "something-else" }, domain.ErrPasswordMismatch},
		{"short", func(in *RegisterInput) { in.Password, in.ConfirmPassword = "short", "short" }, domain.ErrInvalidInput},
		{"too long", func(in *RegisterInput) {
			long := strings.Repeat("x", MaxPasswordLength+1)
			in.Password, in.ConfirmPassword = long, long
		}, domain.ErrInvalidInput},
		{"bad email", func(in *RegisterInput) { in.Email = "not-an-email" }, domain.ErrInvalidInput},
		{"blank name", func(in *RegisterInput) { in.Name = "  " }, domain.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMockRepo()
			svc := newService(t, repo)
			in := registerInput("asha@example.com")
			tt.mutate(&in)

			_, err := svc.Register(context.Background(), in)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if len(repo.byID) != 0 {
				t.Error("nothing should be stored on validation failure")
			}
		})
	}
}

func TestRegister_Duplicate(t *testing.T) {
	svc := newService(t, newMockRepo())
	ctx := context.Background()

	if _, err := svc.Register(ctx, registerInput("asha@example.com")); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := svc.Register(ctx, registerInput("ASHA@example.com"))
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

// --- Login ---

func TestLogin_Success(t *testing.T) {
	svc := newService(t, newMockRepo())
	ctx := context.Background()
	reg, err := svc.Register(ctx, registerInput("asha@example.com"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	sess, err := svc.Login(ctx, "Asha@Example.com", "goa-beach-2024")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.User.ID() != reg.User.ID() {
		t.Errorf("logged in as %q, want %q", sess.User.ID(), reg.User.ID())
	}
	if sess.Token == "" {
		t.Error("expected token")
	}
}

func TestLogin_BadCredentialsIndistinguishable(t *testing.T) {
	svc := newService(t, newMockRepo())
	ctx := context.Background()
	if _, err := svc.Register(ctx, registerInput("asha@example.com")); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, wrongPass := svc.Login(ctx, "asha@example.com", "wrong-password")
	_, unknown := svc.Login(ctx, "nobody@example.com", "goa-beach-2024")

	if !errors.Is(wrongPass, domain.ErrUnauthorized) || !errors.Is(unknown, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for both, got %v / %v", wrongPass, unknown)
	}
	if wrongPass.Error() != unknown.Error() {
		t.Errorf("messages differ: %q vs %q", wrongPass, unknown)
	}
}

func TestLogin_StorageError(t *testing.T) {
	repo := newMockRepo()
	repo.getErr = errors.New("connection refused")
	svc := newService(t, repo)

	_, err := svc.Login(context.Background(), "asha@example.com", "goa-beach-2024")
	if err == nil || errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("storage failure must not look like bad credentials, got %v", err)
	}
}

// --- Authenticate ---

func TestAuthenticate(t *testing.T) {
	repo := newMockRepo()
	svc := newService(t, repo)
	ctx := context.Background()
	sess, err := svc.Register(ctx, registerInput("asha@example.com"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	u, err := svc.Authenticate(ctx, sess.Token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.ID() != sess.User.ID() {
		t.Errorf("got user %q, want %q", u.ID(), sess.User.ID())
	}

	t.Run("garbage token", func(t *testing.T) {
		if _, err := svc.Authenticate(ctx, "not.a.token"); !errors.Is(err, domain.ErrUnauthorized) {
			t.Errorf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("deleted user", func(t *testing.T) {
		delete(repo.byID, sess.User.ID())
		if _, err := svc.Authenticate(ctx, sess.Token); !errors.Is(err, domain.ErrUnauthorized) {
			t.Errorf("expected ErrUnauthorized, got %v", err)
		}
	})
}

func TestNew_RejectsBadCost(t *testing.T) {
	issuer, _ := token.NewIssuer([]byte("0123456789abcdef0123"), time.Hour)
	if _, err := New(newMockRepo(), issuer, Config{BcryptCost: bcrypt.MaxCost + 1}); err == nil {
		t.Fatal("expected error for out-of-range cost")
	}
}

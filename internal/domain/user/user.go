package user

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/kailas-cloud/tripdex/internal/domain"
)

// Role controls access to catalog writes.
type Role string

// Known roles.
const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User is an account aggregate. The password hash never leaves the service layer.
type User struct {
	id           string
	name         string
	email        string
	passwordHash string
	role         Role
	createdAt    time.Time
}

// New validates and creates a User. Email is lower-cased.
func New(id, name, email, passwordHash string, role Role, now time.Time) (User, error) {
	name = strings.TrimSpace(name)
	email = NormalizeEmail(email)
	if id == "" {
		return User{}, fmt.Errorf("%w: user ID is required", domain.ErrInvalidInput)
	}
	if name == "" {
		return User{}, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return User{}, fmt.Errorf("%w: invalid email", domain.ErrInvalidInput)
	}
	if passwordHash == "" {
		return User{}, fmt.Errorf("%w: password hash is required", domain.ErrInvalidInput)
	}
	if role != RoleUser && role != RoleAdmin {
		return User{}, fmt.Errorf("%w: unknown role %q", domain.ErrInvalidInput, role)
	}
	return User{id: id, name: name, email: email, passwordHash: passwordHash, role: role, createdAt: now}, nil
}

// Reconstruct creates a User without validation (storage hydration).
func Reconstruct(id, name, email, passwordHash string, role Role, createdAt time.Time) User {
	return User{id: id, name: name, email: email, passwordHash: passwordHash, role: role, createdAt: createdAt}
}

// NormalizeEmail trims and lower-cases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (u User) ID() string           { return u.id }
func (u User) Name() string         { return u.name }
func (u User) Email() string        { return u.email }
func (u User) PasswordHash() string { return u.passwordHash }
func (u User) Role() Role           { return u.role }
func (u User) CreatedAt() time.Time { return u.createdAt }

// IsAdmin reports whether the user may modify the catalog.
func (u User) IsAdmin() bool { return u.role == RoleAdmin }

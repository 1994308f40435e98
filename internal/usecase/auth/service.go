package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/kailas-cloud/tripdex/internal/domain"
	domuser "github.com/kailas-cloud/tripdex/internal/domain/user"
	"github.com/kailas-cloud/tripdex/internal/metrics"
)

// Password length bounds. bcrypt ignores input past 72 bytes.
const (
	DefaultMinPasswordLength = 8
	MaxPasswordLength        = 72
)

// errBadCredentials is shared by the unknown-email and wrong-password paths.
var errBadCredentials = fmt.Errorf("%w: invalid email or password", domain.ErrUnauthorized)

// Config tunes account handling.
type Config struct {
	AdminEmails       []string
	MinPasswordLength int
	BcryptCost        int
}

// RegisterInput is a sign-up request.
type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

// Session is an authenticated user with a freshly issued token.
type Session struct {
	Token string
	User  domuser.User
}

// Service handles registration, login and token authentication.
type Service struct {
	repo      Repository
	tokens    TokenIssuer
	admins    map[string]struct{}
	minLen    int
	cost      int
	dummyHash []byte
	now       func() time.Time
	newID     func() string
}

// New creates an auth service.
func New(repo Repository, tokens TokenIssuer, cfg Config) (*Service, error) {
	if cfg.MinPasswordLength <= 0 {
		cfg.MinPasswordLength = DefaultMinPasswordLength
	}
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}
	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost %d out of range", cfg.BcryptCost)
	}

	// Compared against on unknown emails so both login failures cost the same.
	dummy, err := bcrypt.GenerateFromPassword([]byte("tripdex-dummy-password"), cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("prepare dummy hash: %w", err)
	}

	admins := make(map[string]struct{}, len(cfg.AdminEmails))
	for _, e := range cfg.AdminEmails {
		admins[domuser.NormalizeEmail(e)] = struct{}{}
	}

	return &Service{
		repo:      repo,
		tokens:    tokens,
		admins:    admins,
		minLen:    cfg.MinPasswordLength,
		cost:      cfg.BcryptCost,
		dummyHash: dummy,
		now:       time.Now,
		newID:     domain.NewID,
	}, nil
}

// Register creates an account and signs it in. Emails listed as admin
// emails receive the admin role.
func (s *Service) Register(ctx context.Context, in RegisterInput) (Session, error) {
	sess, err := s.register(ctx, in)
	metrics.AuthAttemptsTotal.WithLabelValues("register", outcome(err)).Inc()
	return sess, err
}

func (s *Service) register(ctx context.Context, in RegisterInput) (Session, error) {
	if in.Password != in.ConfirmPassword {
		return Session{}, domain.ErrPasswordMismatch
	}
	if len(in.Password) < s.minLen {
		return Session{}, fmt.Errorf("%w: password must be at least %d characters", domain.ErrInvalidInput, s.minLen)
	}
	if len(in.Password) > MaxPasswordLength {
		return Session{}, fmt.Errorf("%w: password must be at most %d bytes", domain.ErrInvalidInput, MaxPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return Session{}, fmt.Errorf("hash password: %w", err)
	}

	role := domuser.RoleUser
	if _, ok := s.admins[domuser.NormalizeEmail(in.Email)]; ok {
		role = domuser.RoleAdmin
	}

	u, err := domuser.New(s.newID(), in.Name, in.Email, string(hash), role, s.now().UTC())
	if err != nil {
		return Session{}, err
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return Session{}, fmt.Errorf("create user: %w", err)
	}
	return s.session(u)
}

// Login verifies credentials. Unknown email and wrong password fail identically.
func (s *Service) Login(ctx context.Context, email, password string) (Session, error) {
	sess, err := s.login(ctx, email, password)
	metrics.AuthAttemptsTotal.WithLabelValues("login", outcome(err)).Inc()
	return sess, err
}

func (s *Service) login(ctx context.Context, email, password string) (Session, error) {
	u, err := s.repo.GetByEmail(ctx, domuser.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
			return Session{}, errBadCredentials
		}
		return Session{}, fmt.Errorf("find user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash()), []byte(password)) != nil {
		return Session{}, errBadCredentials
	}
	return s.session(u)
}

// Authenticate resolves a bearer token to a stored user. The role comes from
// storage, not from the token.
func (s *Service) Authenticate(ctx context.Context, rawToken string) (domuser.User, error) {
	claims, err := s.tokens.Verify(rawToken)
	if err != nil {
		return domuser.User{}, err
	}
	u, err := s.repo.Get(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domuser.User{}, fmt.Errorf("%w: user no longer exists", domain.ErrUnauthorized)
		}
		return domuser.User{}, fmt.Errorf("load user: %w", err)
	}
	return u, nil
}

func (s *Service) session(u domuser.User) (Session, error) {
	tok, err := s.tokens.Sign(u.ID(), string(u.Role()))
	if err != nil {
		return Session{}, fmt.Errorf("issue token: %w", err)
	}
	return Session{Token: tok, User: u}, nil
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrUnauthorized):
		return "rejected"
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrPasswordMismatch),
		errors.Is(err, domain.ErrAlreadyExists):
		return "invalid"
	default:
		return "error"
	}
}

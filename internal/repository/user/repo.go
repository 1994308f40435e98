package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/kailas-cloud/tripdex/internal/db"
	"github.com/kailas-cloud/tripdex/internal/domain"
	domuser "github.com/kailas-cloud/tripdex/internal/domain/user"
)

// store is the consumer interface for users (ISP).
type store interface {
	JSONSet(ctx context.Context, key, path string, data []byte) error
	JSONGet(ctx context.Context, key string, paths ...string) ([]byte, error)
	Get(ctx context.Context, key string) ([]byte, error)
	SetNX(ctx context.Context, key string, value []byte) (bool, error)
	Del(ctx context.Context, key string) error
}

type userDoc struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Repo implements usecase/auth.Repository.
type Repo struct {
	store  store
	prefix string
}

// New creates a user repository.
func New(s store, keyPrefix string) *Repo {
	return &Repo{store: s, prefix: keyPrefix}
}

// Create stores a user. The email is claimed first with SET NX so two
// concurrent registrations cannot both succeed.
func (r *Repo) Create(ctx context.Context, u domuser.User) error {
	emailKey := r.emailKey(u.Email())
	ok, err := r.store.SetNX(ctx, emailKey, []byte(u.ID()))
	if err != nil {
		return fmt.Errorf("claim email: %w", err)
	}
	if !ok {
		return fmt.Errorf("email %s: %w", u.Email(), domain.ErrAlreadyExists)
	}

	data, err := json.Marshal(userDoc{
		ID:           u.ID(),
		Name:         u.Name(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		Role:         string(u.Role()),
		CreatedAt:    u.CreatedAt(),
	})
	if err != nil {
		return errors.Join(fmt.Errorf("marshal user: %w", err), r.release(ctx, emailKey))
	}

	key := r.userKey(u.ID())
	if err := r.store.JSONSet(ctx, key, "$", data); err != nil {
		return errors.Join(fmt.Errorf("json.set %s: %w", key, err), r.release(ctx, emailKey))
	}
	return nil
}

// Get returns a user by ID.
func (r *Repo) Get(ctx context.Context, id string) (domuser.User, error) {
	key := r.userKey(id)
	raw, err := r.store.JSONGet(ctx, key, "$")
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return domuser.User{}, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
		}
		return domuser.User{}, fmt.Errorf("json.get %s: %w", key, err)
	}

	var docs []userDoc
	if err := json.Unmarshal(raw, &docs); err != nil {
		return domuser.User{}, fmt.Errorf("decode user %s: %w", id, err)
	}
	if len(docs) == 0 {
		return domuser.User{}, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	d := docs[0]
	return domuser.Reconstruct(d.ID, d.Name, d.Email, d.PasswordHash, domuser.Role(d.Role), d.CreatedAt), nil
}

// GetByEmail resolves the email index and loads the user.
func (r *Repo) GetByEmail(ctx context.Context, email string) (domuser.User, error) {
	raw, err := r.store.Get(ctx, r.emailKey(email))
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return domuser.User{}, fmt.Errorf("email %s: %w", email, domain.ErrNotFound)
		}
		return domuser.User{}, fmt.Errorf("lookup email: %w", err)
	}
	return r.Get(ctx, string(raw))
}

func (r *Repo) release(ctx context.Context, emailKey string) error {
	if err := r.store.Del(ctx, emailKey); err != nil {
		return fmt.Errorf("release %s: %w", emailKey, err)
	}
	return nil
}

func (r *Repo) userKey(id string) string {
	return r.prefix + "users:" + id
}

func (r *Repo) emailKey(email string) string {
	return r.prefix + "users:email:" + domuser.NormalizeEmail(email)
}

package auth

import (
	"context"

	domuser "github.com/kailas-cloud/tripdex/internal/domain/user"
	"github.com/kailas-cloud/tripdex/internal/token"
)

// Repository defines the storage contract for user accounts.
type Repository interface {
	Create(ctx context.Context, u domuser.User) error
	Get(ctx context.Context, id string) (domuser.User, error)
	GetByEmail(ctx context.Context, email string) (domuser.User, error)
}

// TokenIssuer signs and verifies bearer tokens.
type TokenIssuer interface {
	Sign(subject, role string) (string, error)
	Verify(raw string) (token.Claims, error)
}

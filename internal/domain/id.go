package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// NewID returns a fresh random record identifier.
func NewID() string {
	return uuid.NewString()
}

// ParseID normalizes an externally supplied identifier.
// Anything that is not a UUID is rejected with ErrInvalidIdentifier.
func ParseID(raw string) (string, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidIdentifier, raw)
	}
	return id.String(), nil
}

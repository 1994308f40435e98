package domain

import "errors"

var (
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrInvalidIdentifier signals a malformed resource identifier.
	ErrInvalidIdentifier = errors.New("invalid identifier")
	// ErrAlreadyExists signals a duplicate resource.
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidInput signals a request that failed validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized signals missing or rejected credentials.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden signals an authenticated caller without the required role.
	ErrForbidden = errors.New("forbidden")
	// ErrPasswordMismatch signals that password and its confirmation differ.
	ErrPasswordMismatch = errors.New("passwords do not match")
	// ErrRateLimited signals a rate limit hit.
	ErrRateLimited = errors.New("rate limited")

	// ErrSearchUnavailable signals that every search sub-query failed.
	ErrSearchUnavailable = errors.New("search unavailable")
)

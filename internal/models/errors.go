package models

import "errors"

// Domain error kinds. Repositories and services wrap these with context via
// fmt.Errorf("...: %w", ...); handlers map them to HTTP statuses with
// errors.Is.
var (
	// ErrNotFound marks an absent entity. Order and payment lookups also
	// return it for orders the caller does not own, so existence of other
	// users' orders is never leaked.
	ErrNotFound = errors.New("not found")

	// ErrForbidden marks an authenticated caller denied by policy.
	ErrForbidden = errors.New("access denied")

	// ErrInvalidCredentials marks a failed login or an invalid token.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailTaken marks a registration against an already used email.
	ErrEmailTaken = errors.New("email already in use")

	// ErrInsufficientStock marks an order line requesting more units than
	// the product has in stock.
	ErrInsufficientStock = errors.New("insufficient stock")
)

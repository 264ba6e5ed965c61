package database

import "errors"

// Sentinel errors returned by the repositories. Handlers map these to HTTP
// status codes with errors.Is instead of matching error text.
var (
	// ErrNotFound is returned when a lookup matches no row
	ErrNotFound = errors.New("not found")

	// ErrNotAuthorized is returned when a mutation is attempted by an
	// actor whose role is outside the allowed set. Every repository
	// re-checks the role even though the authorization middleware already
	// has; the store is never touched when the check fails.
	ErrNotAuthorized = errors.New("not authorized")

	// ErrDivisionInUse is returned when deleting a division that still has
	// services referencing it
	ErrDivisionInUse = errors.New("division has services referencing it")

	// ErrCategoryDivisionMismatch is returned when a service references a
	// category belonging to a different division
	ErrCategoryDivisionMismatch = errors.New("category does not belong to the service's division")
)

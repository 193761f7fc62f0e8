package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new
	// user fails because a user with the same email already exists. The
	// users.email UNIQUE constraint guarantees this outcome even when two
	// registrations race past the pre-check.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when a lookup by email matches no row.
	// It is an expected variant, not an internal failure.
	ErrUserNotFound = errors.New("no user was found")

	// ErrAttendeeNotFound is returned when the attendance UPDATE affects
	// zero rows, meaning the supplied QR hash matches no attendee.
	ErrAttendeeNotFound = errors.New("no attendee row was updated")

	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails before it reaches the database.
	ErrBuildingSQLQuery = errors.New("error building sql query")
)

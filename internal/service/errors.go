package service

import "errors"

var (
	// ErrMissingCredentials is returned when the email or the password is
	// absent from a register or login request.
	ErrMissingCredentials = errors.New("email and password are required")

	// ErrInvalidEmail is returned when the supplied email does not match
	// the local@domain.tld shape.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrInvalidCredentials is returned for both an unknown email and a
	// wrong password. The two cases are deliberately indistinguishable so
	// that login responses never reveal whether an account exists.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTokenIsExpiredOrInvalid is the single verification failure: a bad
	// signature, a malformed token, and an expired token are not
	// distinguished.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrMissingEventHash is returned when a check-in request carries no
	// QR hash.
	ErrMissingEventHash = errors.New("event hash is required")

	// ErrTokenCreationFailed wraps failures of session token signing.
	ErrTokenCreationFailed = errors.New("token creation failed")
)

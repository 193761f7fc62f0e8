package service

import (
	"context"

	"github.com/eventgate/checkin/models"
)

// AuthService implements the credential and session rules behind the auth
// endpoints.
type AuthService interface {
	// RegisterUser validates the credentials, hashes the password, and
	// creates the account with a fresh id and isAdmin forced to false.
	RegisterUser(ctx context.Context, creds models.Credentials) (models.User, error)

	// Login authenticates the credentials and returns the stored user.
	// Unknown email and wrong password both surface as ErrInvalidCredentials.
	Login(ctx context.Context, creds models.Credentials) (models.User, error)

	// CreateToken issues a signed session token for the given user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw session token string and returns its
	// claims. Every failure surfaces as ErrTokenIsExpiredOrInvalid.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// CheckinService implements the QR attendance rules behind the check-in
// endpoint.
type CheckinService interface {
	// MarkAttendance stamps the attendee row identified by the QR hash.
	MarkAttendance(ctx context.Context, eventHash string) error
}

package store

import (
	"context"

	"github.com/eventgate/checkin/models"
)

// UserRepository is the data-access contract for user accounts.
type UserRepository interface {
	// CreateUser persists a new user and returns the canonical stored row.
	// A duplicate email surfaces as ErrEmailAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks up a user by (lowercased) email.
	// An empty result surfaces as ErrUserNotFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// AttendanceRepository is the data-access contract for event attendance.
type AttendanceRepository interface {
	// MarkAttended stamps the attendee row matching the QR hash with the
	// current time and the "attended" status. A hash matching no row
	// surfaces as ErrAttendeeNotFound.
	MarkAttended(ctx context.Context, eventAttendeeHash string) error
}

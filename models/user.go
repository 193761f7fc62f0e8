package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the unique identifier of the user, generated at registration
	// time (UUID, never sequential). Immutable after creation.
	ID string `json:"id"`

	// Email is the unique login identifier of the account.
	// Stored and looked up in lowercase form.
	Email string `json:"email"`

	// Password stores the bcrypt hash of the user's password.
	// This value MUST be a hash, never plaintext, and is never serialized.
	Password string `json:"-"`

	// Name is the optional display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name,omitempty"`

	// IsAdmin is the privilege flag of the account. It defaults to false
	// at creation and is never taken from client input.
	IsAdmin bool `json:"isAdmin"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"-"`

	// UpdatedAt is the timestamp of the last account mutation.
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

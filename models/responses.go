package models

// PublicUser is the externally visible projection of a [User].
// It never carries the password hash.
type PublicUser struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name,omitempty"`
	IsAdmin bool   `json:"isAdmin"`
}

// RegisteredUser is the minimal projection returned by the register endpoint.
type RegisteredUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// RegisterResponse is the 201 body of the register endpoint.
type RegisterResponse struct {
	Message string         `json:"message"`
	User    RegisteredUser `json:"user"`
}

// LoginResponse is the 200 body of the login endpoint. The session token
// travels only in the Set-Cookie header, never here.
type LoginResponse struct {
	User PublicUser `json:"user"`
}

// VerifyResponse is the body of the verify endpoint for both outcomes.
type VerifyResponse struct {
	Valid   bool        `json:"valid"`
	User    *PublicUser `json:"user,omitempty"`
	Message string      `json:"message,omitempty"`
}

// LogoutResponse is the 200 body of the logout endpoint.
type LogoutResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// MessageResponse is the generic single-message body used for errors and
// for the check-in endpoint outcomes.
type MessageResponse struct {
	Message string `json:"message"`
}

// Public converts a full [User] record into its external projection.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:      u.ID,
		Email:   u.Email,
		Name:    u.Name,
		IsAdmin: u.IsAdmin,
	}
}

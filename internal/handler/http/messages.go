package http

// Client-visible response messages. The wording of the validation and
// credential messages is part of the frontend contract; internal failure
// detail never appears here and is only logged server-side.
const (
	msgMissingCredentials = "Email and password are required"
	msgInvalidEmail       = "Invalid email format"
	msgUserExists         = "User already exists"
	msgInvalidCredentials = "Invalid credentials"
	msgInternalError      = "Internal server error"
	msgInvalidBody        = "Invalid request body"

	msgNoToken      = "No token provided"
	msgInvalidToken = "Invalid token"

	msgRegistered = "User registered successfully"
	msgLoggedOut  = "Logged out successfully"

	msgEventHashRequired = "Event hash required"
	msgAttendanceTaken   = "User attendance taken successfully"
	msgAttendanceFailed  = "User attendance update failed"
)

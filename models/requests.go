package models

// Credentials is the JSON body accepted by the register and login endpoints.
// Only email and password are ever read from the client; privilege flags
// are deliberately absent so they can never be supplied from outside.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CheckinRequest is the JSON body accepted by the QR check-in endpoint.
type CheckinRequest struct {
	EventHash string `json:"eventHash"`
}

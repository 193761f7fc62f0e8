package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/eventgate/checkin/internal/logger"
	"github.com/eventgate/checkin/internal/service"
	"github.com/eventgate/checkin/internal/store"
	"github.com/eventgate/checkin/internal/utils"
	"github.com/eventgate/checkin/models"
)

// register handles POST /auth/register.
//
// 400 on missing/malformed credentials, 409 on a duplicate email (from the
// pre-check or from the insert's unique violation), 201 with {id, email} on
// success. The password hash never appears in any response.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	creds, ok := decodeCredentials(w, r)
	if !ok {
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, creds)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingCredentials):
			utils.WriteJSON(w, models.MessageResponse{Message: msgMissingCredentials}, http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrInvalidEmail):
			utils.WriteJSON(w, models.MessageResponse{Message: msgInvalidEmail}, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			utils.WriteJSON(w, models.MessageResponse{Message: msgUserExists}, http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			utils.WriteJSON(w, models.MessageResponse{Message: msgInternalError}, http.StatusInternalServerError)
			return
		}
	}

	log.Info().Str("id", registeredUser.ID).Str("email", registeredUser.Email).Msg("user registered")

	utils.WriteJSON(w, models.RegisterResponse{
		Message: msgRegistered,
		User: models.RegisteredUser{
			ID:    registeredUser.ID,
			Email: registeredUser.Email,
		},
	}, http.StatusCreated)
}

// login handles POST /auth/login.
//
// An unknown email and a wrong password return the same 401 body. On
// success the session token travels only inside the Set-Cookie header;
// the response body carries the public user fields.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	creds, ok := decodeCredentials(w, r)
	if !ok {
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, creds)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingCredentials):
			utils.WriteJSON(w, models.MessageResponse{Message: msgMissingCredentials}, http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrInvalidCredentials):
			utils.WriteJSON(w, models.MessageResponse{Message: msgInvalidCredentials}, http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			utils.WriteJSON(w, models.MessageResponse{Message: msgInternalError}, http.StatusInternalServerError)
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteJSON(w, models.MessageResponse{Message: msgInternalError}, http.StatusInternalServerError)
		return
	}

	log.Info().Str("id", foundUser.ID).Msg("user logged in")

	http.SetCookie(w, h.sessionCookie(token.SignedString))
	utils.WriteJSON(w, models.LoginResponse{User: foundUser.Public()}, http.StatusOK)
}

// verify handles POST /auth/verify.
//
// The token is read from the session cookie first, then from the
// Authorization bearer header. All codec failures produce the same
// 401 {valid:false} body.
func (h *Handler) verify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	tokenString := tokenFromRequest(r)
	if tokenString == "" {
		utils.WriteJSON(w, models.MessageResponse{Message: msgNoToken}, http.StatusUnauthorized)
		return
	}

	token, err := h.services.AuthService.ParseToken(ctx, tokenString)
	if err != nil {
		log.Warn().Msg("session verification failed")
		utils.WriteJSON(w, models.VerifyResponse{Valid: false, Message: msgInvalidToken}, http.StatusUnauthorized)
		return
	}

	utils.WriteJSON(w, models.VerifyResponse{
		Valid: true,
		User: &models.PublicUser{
			ID:      token.UserID,
			Email:   token.Email,
			Name:    token.Name,
			IsAdmin: token.IsAdmin,
		},
	}, http.StatusOK)
}

// logout handles POST /auth/logout.
//
// Stateless: it always succeeds, even with no or an invalid session, and
// overwrites the session cookie with an immediately expiring one. The token
// itself is not revoked and stays usable through the bearer header until
// expiry.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.clearCookie())
	utils.WriteJSON(w, models.LogoutResponse{Success: true, Message: msgLoggedOut}, http.StatusOK)
}

// decodeCredentials parses the request body into models.Credentials. An
// empty body is not an error here: it decodes to empty fields and fails the
// service-level required-fields check, producing the contractual message.
func decodeCredentials(w http.ResponseWriter, r *http.Request) (models.Credentials, bool) {
	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil && !errors.Is(err, io.EOF) {
		logger.FromRequest(r).Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.MessageResponse{Message: msgInvalidBody}, http.StatusBadRequest)
		return models.Credentials{}, false
	}

	return creds, true
}

// tokenFromRequest extracts the session token: the "token" cookie takes
// precedence, the Authorization bearer header is the read-path fallback.
func tokenFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	if token, err := utils.ParseBearerToken(r.Header.Get("Authorization")); err == nil {
		return token
	}

	return ""
}

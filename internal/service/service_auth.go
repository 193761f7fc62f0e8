// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/eventgate/checkin/internal/config"
	"github.com/eventgate/checkin/internal/logger"
	"github.com/eventgate/checkin/internal/store"
	"github.com/eventgate/checkin/internal/utils"
	"github.com/eventgate/checkin/models"
)

// emailPattern accepts the local@domain.tld shape: no whitespace, no extra
// "@", at least one dot in the domain part.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and session token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
//
// Session tokens are bearer-equivalent and are not tracked server-side:
// logout clears only the client-held cookie, so a token stays valid through
// the bearer header until its natural expiry. There is no revocation list.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// uuidGenerator assigns opaque, non-sequential ids at registration.
	uuidGenerator *utils.UUIDGenerator

	// bcryptCost is the work factor applied when hashing passwords.
	bcryptCost int

	// tokenSignKey is the HMAC secret used to sign and verify session JWTs.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		uuidGenerator:  utils.NewUUIDGenerator(),
		bcryptCost:     cfg.BcryptCost,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// It validates that both fields are present and that the email has the
// local@domain.tld shape, normalizes the email to lowercase, pre-checks
// for an existing account, hashes the password with bcrypt, and persists
// the row under a freshly generated UUID with IsAdmin forced to false.
//
// Returns the persisted user or:
//   - ErrMissingCredentials if email or password is empty.
//   - ErrInvalidEmail on a malformed email.
//   - store.ErrEmailAlreadyExists when the account exists — either from the
//     pre-check or from the INSERT's unique violation when a concurrent
//     registration wins the race.
func (a *authService) RegisterUser(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if creds.Email == "" || creds.Password == "" {
		return models.User{}, ErrMissingCredentials
	}

	email := normalizeEmail(creds.Email)
	if !emailPattern.MatchString(email) {
		return models.User{}, ErrInvalidEmail
	}

	if _, err := a.userRepository.FindUserByEmail(ctx, email); err == nil {
		log.Warn().Str("email", email).Msg("registration attempt for existing email")
		return models.User{}, store.ErrEmailAlreadyExists
	} else if !errors.Is(err, store.ErrUserNotFound) {
		log.Err(err).Msg("pre-registration lookup failed")
		return models.User{}, fmt.Errorf("pre-registration lookup failed: %w", err)
	}

	hashed, err := utils.HashPassword(creds.Password, a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		ID:       a.uuidGenerator.Generate(),
		Email:    email,
		Password: hashed,
		IsAdmin:  false, // never taken from client input
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It looks up the account by lowercased email and compares the supplied
// password against the stored bcrypt hash. An unknown email and a wrong
// password both return ErrInvalidCredentials so the two cases cannot be
// told apart from the outside.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if creds.Email == "" || creds.Password == "" {
		return models.User{}, ErrMissingCredentials
	}

	email := normalizeEmail(creds.Email)

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Warn().Str("email", email).Msg("login attempt for unknown email")
			return models.User{}, ErrInvalidCredentials
		}

		log.Err(err).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.VerifyPassword(creds.Password, foundUser.Password) {
		log.Warn().Str("email", email).Msg("login attempt with wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed session JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, embeds the public identity
// claims, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateSessionToken(a.tokenIssuer, user, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw session token string.
//
// It delegates to utils.ValidateAndParseSessionToken, verifying the
// signature and the issuer claim. Any validation failure (expired, wrong
// signature, malformed) is normalised to ErrTokenIsExpiredOrInvalid so that
// callers do not need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseSessionToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// normalizeEmail lowercases and trims the email so that lookup and insert
// agree on one canonical form and case-variant duplicates cannot exist.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

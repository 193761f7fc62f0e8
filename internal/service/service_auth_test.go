package service

import (
	"context"
	"testing"
	"time"

	"github.com/eventgate/checkin/internal/config"
	"github.com/eventgate/checkin/internal/logger"
	"github.com/eventgate/checkin/internal/store"
	"github.com/eventgate/checkin/internal/utils"
	"github.com/eventgate/checkin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// mockUserRepository implements store.UserRepository for unit tests.
// Each method field can be overridden per test case.
type mockUserRepository struct {
	createUserFn      func(ctx context.Context, user models.User) (models.User, error)
	findUserByEmailFn func(ctx context.Context, email string) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return m.createUserFn(ctx, user)
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return m.findUserByEmailFn(ctx, email)
}

func newTestAuthService(repo store.UserRepository) AuthService {
	cfg := config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "test-issuer",
		TokenDuration: time.Hour,
		BcryptCost:    bcrypt.MinCost, // keep tests fast
	}
	return NewAuthService(repo, cfg, logger.Nop())
}

func notFoundRepo() *mockUserRepository {
	return &mockUserRepository{
		findUserByEmailFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, store.ErrUserNotFound
		},
	}
}

func TestRegisterUser_Success(t *testing.T) {
	var inserted models.User
	repo := notFoundRepo()
	repo.createUserFn = func(_ context.Context, user models.User) (models.User, error) {
		inserted = user
		return user, nil
	}

	svc := newTestAuthService(repo)

	registered, err := svc.RegisterUser(context.Background(), models.Credentials{
		Email:    "Alice@Example.COM",
		Password: "s3cret",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, registered.ID, "a fresh id must be generated")
	assert.Equal(t, "alice@example.com", inserted.Email, "email must be normalized to lowercase")
	assert.False(t, inserted.IsAdmin, "isAdmin must default to false")
	assert.NotEqual(t, "s3cret", inserted.Password, "plaintext must never be persisted")
	assert.True(t, utils.VerifyPassword("s3cret", inserted.Password), "stored value must be a verifiable hash")
}

func TestRegisterUser_MissingFields(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	for _, creds := range []models.Credentials{
		{},
		{Email: "alice@example.com"},
		{Password: "s3cret"},
	} {
		_, err := svc.RegisterUser(context.Background(), creds)
		assert.ErrorIs(t, err, ErrMissingCredentials)
	}
}

func TestRegisterUser_InvalidEmail(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	for _, email := range []string{"notanemail", "no@tld", "two@@example.com", "spa ce@example.com"} {
		_, err := svc.RegisterUser(context.Background(), models.Credentials{Email: email, Password: "pw"})
		assert.ErrorIs(t, err, ErrInvalidEmail, "email %q must be rejected", email)
	}
}

func TestRegisterUser_DuplicateEmailPreCheck(t *testing.T) {
	repo := &mockUserRepository{
		findUserByEmailFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{ID: "existing"}, nil
		},
	}

	svc := newTestAuthService(repo)

	_, err := svc.RegisterUser(context.Background(), models.Credentials{Email: "alice@example.com", Password: "pw"})
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestRegisterUser_DuplicateEmailInsertRace(t *testing.T) {
	// the pre-check misses, the concurrent duplicate wins at the INSERT
	repo := notFoundRepo()
	repo.createUserFn = func(_ context.Context, _ models.User) (models.User, error) {
		return models.User{}, store.ErrEmailAlreadyExists
	}

	svc := newTestAuthService(repo)

	_, err := svc.RegisterUser(context.Background(), models.Credentials{Email: "alice@example.com", Password: "pw"})
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestLogin_Success(t *testing.T) {
	hashed, err := utils.HashPassword("s3cret", bcrypt.MinCost)
	require.NoError(t, err)

	repo := &mockUserRepository{
		findUserByEmailFn: func(_ context.Context, email string) (models.User, error) {
			assert.Equal(t, "alice@example.com", email, "lookup must use the normalized email")
			return models.User{ID: "id-1", Email: email, Password: hashed}, nil
		},
	}

	svc := newTestAuthService(repo)

	user, err := svc.Login(context.Background(), models.Credentials{Email: "ALICE@example.com", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, "id-1", user.ID)
}

func TestLogin_UnknownEmailAndWrongPasswordAreIndistinguishable(t *testing.T) {
	hashed, err := utils.HashPassword("right-password", bcrypt.MinCost)
	require.NoError(t, err)

	unknownEmailRepo := notFoundRepo()
	wrongPasswordRepo := &mockUserRepository{
		findUserByEmailFn: func(_ context.Context, email string) (models.User, error) {
			return models.User{ID: "id-1", Email: email, Password: hashed}, nil
		},
	}

	_, errUnknown := newTestAuthService(unknownEmailRepo).
		Login(context.Background(), models.Credentials{Email: "ghost@example.com", Password: "whatever"})
	_, errWrongPw := newTestAuthService(wrongPasswordRepo).
		Login(context.Background(), models.Credentials{Email: "alice@example.com", Password: "wrong-password"})

	assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPw, ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrongPw.Error())
}

func TestLogin_MissingFields(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.Login(context.Background(), models.Credentials{Email: "alice@example.com"})
	assert.ErrorIs(t, err, ErrMissingCredentials)
}

func TestCreateToken_ParseToken_RoundTrip(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	user := models.User{ID: "id-1", Email: "alice@example.com", IsAdmin: false}

	token, err := svc.CreateToken(context.Background(), user)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)

	assert.Equal(t, user.ID, parsed.UserID)
	assert.Equal(t, user.Email, parsed.Email)
	assert.False(t, parsed.IsAdmin)
}

func TestParseToken_ForeignSignature(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	foreign, err := utils.GenerateSessionToken("test-issuer", models.User{ID: "id-1"}, time.Hour, "other-sign-key")
	require.NoError(t, err)

	_, err = svc.ParseToken(context.Background(), foreign.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestParseToken_Expired(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	expired, err := utils.GenerateSessionToken("test-issuer", models.User{ID: "id-1"}, -time.Minute, "test-sign-key")
	require.NoError(t, err)

	_, err = svc.ParseToken(context.Background(), expired.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

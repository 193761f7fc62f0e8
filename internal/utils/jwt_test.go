package utils

import (
	"testing"
	"time"

	"github.com/eventgate/checkin/models"
)

var tokenTestUser = models.User{
	ID:      "0191c2a8-0000-7000-8000-000000000001",
	Email:   "alice@example.com",
	Name:    "Alice",
	IsAdmin: false,
}

func TestGenerateSessionToken_Success(t *testing.T) {
	issuer := "test-issuer"
	duration := time.Hour
	key := "secret-key"

	token, err := GenerateSessionToken(issuer, tokenTestUser, duration, key)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}
	if token.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, token.Issuer)
	}
	if token.Subject != tokenTestUser.ID {
		t.Errorf("expected subject %s, got %s", tokenTestUser.ID, token.Subject)
	}
}

func TestGenerateSessionToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		user     models.User
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", tokenTestUser, time.Hour, "key"},
		{"empty user id", "iss", models.User{}, time.Hour, "key"},
		{"zero duration", "iss", tokenTestUser, 0, "key"},
		{"empty key", "iss", tokenTestUser, time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateSessionToken(tt.issuer, tt.user, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseSessionToken_ClaimsRoundTrip(t *testing.T) {
	issuer := "test-issuer"
	key := "secret-key"

	admin := tokenTestUser
	admin.IsAdmin = true

	genToken, err := GenerateSessionToken(issuer, admin, time.Minute*5, key)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	parsedToken, err := ValidateAndParseSessionToken(genToken.SignedString, key, issuer)

	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if parsedToken.UserID != admin.ID {
		t.Errorf("expected userId %s, got %s", admin.ID, parsedToken.UserID)
	}
	if parsedToken.Email != admin.Email {
		t.Errorf("expected email %s, got %s", admin.Email, parsedToken.Email)
	}
	if parsedToken.Name != admin.Name {
		t.Errorf("expected name %s, got %s", admin.Name, parsedToken.Name)
	}
	if !parsedToken.IsAdmin {
		t.Error("expected isAdmin claim to round-trip as true")
	}
}

func TestValidateAndParseSessionToken_InvalidKey(t *testing.T) {
	genToken, _ := GenerateSessionToken("test-issuer", tokenTestUser, time.Hour, "correct-key")

	_, err := ValidateAndParseSessionToken(genToken.SignedString, "wrong-key", "test-issuer")
	if err == nil {
		t.Error("expected error due to signature mismatch, got nil")
	}
}

func TestValidateAndParseSessionToken_Expired(t *testing.T) {
	// Token that expired 1 second ago
	genToken, _ := GenerateSessionToken("test-issuer", tokenTestUser, -time.Second, "key")

	_, err := ValidateAndParseSessionToken(genToken.SignedString, "key", "test-issuer")
	if err == nil {
		t.Error("expected error for expired token, got nil")
	}
}

func TestValidateAndParseSessionToken_WrongIssuer(t *testing.T) {
	genToken, _ := GenerateSessionToken("real-issuer", tokenTestUser, time.Hour, "key")

	_, err := ValidateAndParseSessionToken(genToken.SignedString, "key", "fake-issuer")
	if err == nil {
		t.Error("expected error for issuer mismatch, got nil")
	}
}

func TestValidateAndParseSessionToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseSessionToken("not.a.token", "key", "iss")
	if err == nil {
		t.Error("expected error for malformed token, got nil")
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid bearer", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"empty header", "", "", true},
		{"missing token", "Bearer ", "", true},
		{"wrong scheme", "Basic abc", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

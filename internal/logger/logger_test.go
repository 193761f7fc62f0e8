package logger

import (
	"context"
	"net/http/httptest"
	"testing"
)

func TestNewLogger(t *testing.T) {
	l := NewLogger("test-role")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestNop(t *testing.T) {
	l := Nop()
	if l == nil {
		t.Fatal("expected non-nil logger")
	}

	// must be safe to use
	l.Info().Msg("discarded")
}

func TestGetChildLogger(t *testing.T) {
	parent := Nop()
	child := parent.GetChildLogger()

	if child == nil {
		t.Fatal("expected non-nil child logger")
	}
	if child == parent {
		t.Error("expected the child to be a distinct logger instance")
	}
}

func TestFromContext_WithoutAttachedLogger(t *testing.T) {
	l := FromContext(context.Background())
	if l == nil {
		t.Fatal("expected fallback logger, got nil")
	}
	l.Info().Msg("works without panic")
}

func TestFromContext_RoundTrip(t *testing.T) {
	attached := Nop()
	ctx := attached.WithContext(context.Background())

	got := FromContext(ctx)
	if got == nil {
		t.Fatal("expected non-nil logger from context")
	}
	got.Info().Msg("works without panic")
}

func TestFromRequest(t *testing.T) {
	attached := Nop()
	req := httptest.NewRequest("POST", "/", nil)
	req = req.WithContext(attached.WithContext(req.Context()))

	got := FromRequest(req)
	if got == nil {
		t.Fatal("expected non-nil logger from request")
	}
	got.Info().Msg("works without panic")
}

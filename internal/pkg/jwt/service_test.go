package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestHMACService_AccessTokenCarriesRole(t *testing.T) {
	svc := NewHMACService("access", "refresh", time.Minute, time.Hour)
	uid := uuid.New()

	tok, err := svc.GenerateAccessToken(uid, "a@b.c", "admin")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := svc.ValidateToken(tok)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != uid || claims.Role != "admin" || claims.TokenType != TokenTypeAccess {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if svc.IsRefreshToken(claims) {
		t.Fatalf("access token reported as refresh")
	}
}

func TestHMACService_RefreshToken(t *testing.T) {
	svc := NewHMACService("access", "refresh", time.Minute, time.Hour)

	tok, err := svc.GenerateRefreshToken(uuid.New())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	claims, err := svc.ValidateToken(tok)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !svc.IsRefreshToken(claims) || claims.Role != "" {
		t.Fatalf("unexpected refresh claims: %+v", claims)
	}
}

func TestHMACService_Expired(t *testing.T) {
	svc := NewHMACService("access", "refresh", time.Minute, time.Hour)
	past := time.Now().Add(-2 * time.Hour)
	svc.now = func() time.Time { return past }

	tok, err := svc.GenerateAccessToken(uuid.New(), "", "student")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	svc.now = time.Now
	if _, err := svc.ValidateToken(tok); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestHMACService_WrongSecret(t *testing.T) {
	issuer := NewHMACService("access", "refresh", time.Minute, time.Hour)
	other := NewHMACService("other-access", "other-refresh", time.Minute, time.Hour)

	tok, err := issuer.GenerateAccessToken(uuid.New(), "", "student")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := other.ValidateToken(tok); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

package auth

import (
	"testing"
	"time"
)

func TestNewJWTStrategy_DefaultTTL(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{})
	if strategy == nil {
		t.Fatal("expected strategy instance")
	}
	if string(strategy.secret) != "secret" {
		t.Fatalf("unexpected secret: %q", string(strategy.secret))
	}
	if strategy.ttl != 24*time.Hour {
		t.Fatalf("unexpected ttl: %s", strategy.ttl)
	}
}

func TestNewJWTStrategy_CustomTTL(t *testing.T) {
	ttl := 2 * time.Hour
	strategy := NewJWTStrategy("secret", Options{TTL: ttl})
	if strategy.ttl != ttl {
		t.Fatalf("unexpected ttl: %s", strategy.ttl)
	}
}

func TestJWTStrategy_IssueAndParse(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{TTL: time.Minute})
	token, err := strategy.IssueToken(42)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}
	userID, err := strategy.ParseToken(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if userID != 42 {
		t.Fatalf("unexpected user id: %d", userID)
	}
}

func TestJWTStrategy_RejectsGarbage(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{TTL: time.Minute})
	if _, err := strategy.ParseToken("not-a-token"); err != ErrInvalidToken {
		t.Fatalf("expected invalid token error, got %v", err)
	}
}

func TestJWTStrategy_RejectsForeignSecret(t *testing.T) {
	issuer := NewJWTStrategy("secret-a", Options{TTL: time.Minute})
	verifier := NewJWTStrategy("secret-b", Options{TTL: time.Minute})

	token, err := issuer.IssueToken(7)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if _, err := verifier.ParseToken(token); err != ErrInvalidToken {
		t.Fatalf("expected invalid token error, got %v", err)
	}
}

func TestJWTStrategy_RejectsExpired(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{TTL: time.Nanosecond})
	token, err := strategy.IssueToken(7)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	time.Sleep(10 * time.Millisecond)
	if _, err := strategy.ParseToken(token); err != ErrInvalidToken {
		t.Fatalf("expected expired token to be rejected, got %v", err)
	}
}

func TestJWTStrategy_Name(t *testing.T) {
	if got := NewJWTStrategy("secret", Options{}).Name(); got != "jwt" {
		t.Fatalf("unexpected strategy name: %s", got)
	}
}

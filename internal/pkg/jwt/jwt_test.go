package jwt

import (
	"testing"
	"time"
)

func TestSignAndParse(t *testing.T) {
	token, err := Sign(42, true, time.Hour)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}
	claims, err := Parse(token)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if claims.UserID != 42 || !claims.IsStaff {
		t.Errorf("unexpected claims %+v", claims)
	}
}

func TestParseExpired(t *testing.T) {
	token, err := Sign(1, true, -time.Minute)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}
	if _, err := Parse(token); err == nil {
		t.Error("expected expired token to be rejected")
	}
}

func TestParseWrongSecret(t *testing.T) {
	token, err := Sign(1, true, time.Hour)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}
	SetSecret("another-secret")
	defer SetSecret(defaultSecret)

	if _, err := Parse(token); err == nil {
		t.Error("expected token signed with another secret to be rejected")
	}
}

func TestParseGarbage(t *testing.T) {
	if _, err := Parse("not.a.token"); err == nil {
		t.Error("expected garbage to be rejected")
	}
}

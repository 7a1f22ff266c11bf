package util

import (
	"testing"
	"time"
)

func TestJWTRoundTrip(t *testing.T) {
	secret := "test-secret-test-secret-test-secret"

	token, err := GenerateJWT("u1", "alice", secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	claims, err := ParseJWT(token, secret)
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}
	if claims.UserID != "u1" || claims.UserName != "alice" {
		t.Fatalf("claims = %+v", claims)
	}
}

func TestParseJWTRejectsWrongSecret(t *testing.T) {
	token, err := GenerateJWT("u1", "alice", "secret-one-secret-one-secret-one", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	if _, err := ParseJWT(token, "secret-two-secret-two-secret-two"); err == nil {
		t.Fatal("token verified with the wrong secret")
	}
}

func TestParseJWTRejectsExpiredToken(t *testing.T) {
	secret := "test-secret-test-secret-test-secret"

	token, err := GenerateJWT("u1", "alice", secret, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	if _, err := ParseJWT(token, secret); err == nil {
		t.Fatal("expired token verified")
	}
}

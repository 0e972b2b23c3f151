package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestVerifyRoundTrip(t *testing.T) {
	if err := Init("test-secret", 1); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	token, err := GenerateJWT(42, "owner@example.com")

	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}

	identity, ok := Verify(token)

	if !ok {
		t.Fatal("expected valid token to verify")
	}
	if identity.ID != 42 {
		t.Errorf("expected owner id 42, got %d", identity.ID)
	}
	if identity.Email != "owner@example.com" {
		t.Errorf("unexpected email: %q", identity.Email)
	}
}

func TestVerifyAbsentOutcomes(t *testing.T) {
	if err := Init("test-secret", 1); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	t.Run("Empty Credential", func(t *testing.T) {
		if _, ok := Verify(""); ok {
			t.Error("expected empty credential to be absent")
		}
	})

	t.Run("Malformed Credential", func(t *testing.T) {
		if _, ok := Verify("not-a-jwt"); ok {
			t.Error("expected malformed credential to be absent")
		}
	})

	t.Run("Expired Credential", func(t *testing.T) {
		claims := jwt.MapClaims{
			"owner_id": float64(7),
			"email":    "owner@example.com",
			"exp":      time.Now().Add(-time.Hour).Unix(),
		}
		expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		if err != nil {
			t.Fatalf("failed to sign token: %v", err)
		}

		if _, ok := Verify(expired); ok {
			t.Error("expected expired credential to be absent")
		}
	})

	t.Run("Wrong Signing Key", func(t *testing.T) {
		claims := jwt.MapClaims{
			"owner_id": float64(7),
			"exp":      time.Now().Add(time.Hour).Unix(),
		}
		forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
		if err != nil {
			t.Fatalf("failed to sign token: %v", err)
		}

		if _, ok := Verify(forged); ok {
			t.Error("expected tampered credential to be absent")
		}
	})

	t.Run("Missing Owner Claim", func(t *testing.T) {
		claims := jwt.MapClaims{
			"email": "owner@example.com",
			"exp":   time.Now().Add(time.Hour).Unix(),
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		if err != nil {
			t.Fatalf("failed to sign token: %v", err)
		}

		if _, ok := Verify(token); ok {
			t.Error("expected token without owner_id to be absent")
		}
	})
}

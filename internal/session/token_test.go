package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()

	claims := jwt.RegisteredClaims{
		Subject:   "u1",
		ExpiresAt: jwt.NewNumericDate(exp),
	}

	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))

	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}

	return tok
}

func TestTokenExpiry(t *testing.T) {
	exp := time.Now().UTC().Add(30 * time.Minute).Truncate(time.Second)

	got, ok := TokenExpiry(signedToken(t, exp))

	if !ok {
		t.Fatalf("expected exp claim to be readable")
	}

	if !got.Equal(exp) {
		t.Fatalf("got exp %v, want %v", got, exp)
	}
}

func TestTokenExpiry_OpaqueToken(t *testing.T) {
	if _, ok := TokenExpiry("not-a-jwt"); ok {
		t.Fatalf("opaque token should not yield an expiry")
	}
}

func TestTokenProfile(t *testing.T) {
	claims := tokenClaims{
		Email: "hr@example.com",
		Name:  "HR Admin",
		Role:  "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))

	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}

	p, ok := TokenProfile(raw)

	if !ok {
		t.Fatalf("expected a profile from the claims")
	}

	if p.ID != "u1" || p.Email != "hr@example.com" || p.Name != "HR Admin" || p.Role != "admin" {
		t.Fatalf("unexpected profile: %+v", p)
	}

	if _, ok := TokenProfile("opaque"); ok {
		t.Fatalf("opaque token should not yield a profile")
	}
}

func TestExpiryFor(t *testing.T) {
	ttl := 12 * time.Hour

	t.Run("token_expires_sooner", func(t *testing.T) {
		exp := time.Now().UTC().Add(10 * time.Minute).Truncate(time.Second)

		got := ExpiryFor(signedToken(t, exp), ttl)

		if !got.Equal(exp) {
			t.Fatalf("got %v, want token exp %v", got, exp)
		}
	})

	t.Run("ttl_bounds_long_lived_token", func(t *testing.T) {
		exp := time.Now().UTC().Add(100 * time.Hour)

		got := ExpiryFor(signedToken(t, exp), ttl)

		if got.After(time.Now().UTC().Add(ttl + time.Minute)) {
			t.Fatalf("expiry %v should be bounded by ttl", got)
		}
	})

	t.Run("opaque_token_falls_back_to_ttl", func(t *testing.T) {
		got := ExpiryFor("opaque", ttl)
		want := time.Now().UTC().Add(ttl)

		if got.Before(want.Add(-time.Minute)) || got.After(want.Add(time.Minute)) {
			t.Fatalf("got %v, want roughly %v", got, want)
		}
	})
}

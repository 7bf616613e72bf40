package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sabari1933/hrconsole/internal/domain/profile"
)

// The upstream API issues bearer tokens as JWTs. The console never verifies
// them (the backend is the only validity oracle, signalled by 401); it only
// reads the expiry claim so stored sessions do not outlive their token.

type tokenClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// TokenExpiry returns the exp claim of the bearer token, if it parses as a
// JWT and carries one. Opaque tokens return ok=false and the caller falls
// back to the configured session TTL.
func TokenExpiry(raw string) (time.Time, bool) {
	claims := &tokenClaims{}

	_, _, err := jwt.NewParser().ParseUnverified(raw, claims)

	if err != nil || claims.ExpiresAt == nil {
		return time.Time{}, false
	}

	return claims.ExpiresAt.Time, true
}

// TokenProfile derives a display identity from the token claims, for
// backends that return a token without a user object.
func TokenProfile(raw string) (profile.Profile, bool) {
	claims := &tokenClaims{}

	_, _, err := jwt.NewParser().ParseUnverified(raw, claims)

	if err != nil || (claims.Email == "" && claims.Name == "") {
		return profile.Profile{}, false
	}

	return profile.Profile{
		ID:    claims.Subject,
		Email: claims.Email,
		Name:  claims.Name,
		Role:  claims.Role,
	}, true
}

// ExpiryFor bounds a new session: the token's own expiry when known and
// sooner, otherwise now+ttl.
func ExpiryFor(token string, ttl time.Duration) time.Time {
	fallback := time.Now().UTC().Add(ttl)

	exp, ok := TokenExpiry(token)

	if ok && exp.Before(fallback) {
		return exp
	}

	return fallback
}

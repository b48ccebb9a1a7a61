// Package jwt inspects backend access tokens. The console does not hold the
// backend's signing key, so tokens are decoded without verification and
// only used to spot sessions that have already expired.
package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Expiry returns the exp claim of token. ok is false when the token cannot
// be decoded or carries no exp claim.
func Expiry(token string) (exp time.Time, ok bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	date, err := claims.GetExpirationTime()
	if err != nil || date == nil {
		return time.Time{}, false
	}
	return date.Time, true
}

// Expired reports whether token has an exp claim at or before now. Opaque
// tokens and tokens without exp are left for the backend to judge.
func Expired(token string, now time.Time) bool {
	exp, ok := Expiry(token)
	return ok && !exp.After(now)
}

// Package token inspects stored session tokens before they are spent on a
// network round-trip.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Expired reports whether tok is a JWT whose exp claim lies before now.
//
// The token stays an opaque credential from the client's point of view: the
// signature is not verified here (the server does that), and a token that is
// not a parseable JWT, or carries no exp claim, is reported as not expired
// so it still reaches the server unchanged.
func Expired(tok string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tok, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}

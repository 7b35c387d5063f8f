package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNotJWT is returned by [TokenExpiry] for tokens that are not JWTs.
// Opaque API tokens are valid; callers treat this as "expiry unknown".
var ErrNotJWT = errors.New("token is not a jwt")

// TokenExpiry reads the exp claim of a JWT without verifying its signature.
// The signing key belongs to the content API; the client only uses the
// claim to warn about a token that will be rejected anyway.
//
// Returns ok == false when the token carries no exp claim.
func TokenExpiry(tokenString string) (exp time.Time, ok bool, err error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false, fmt.Errorf("%w: %w", ErrNotJWT, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return time.Time{}, false, errors.New("invalid token claims")
	}

	date, err := claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, false, fmt.Errorf("error reading exp claim: %w", err)
	}
	if date == nil {
		return time.Time{}, false, nil
	}

	return date.Time, true, nil
}

// IsTokenExpired reports whether tokenString is a JWT whose exp lies before
// now. Opaque tokens and JWTs without exp are never expired.
func IsTokenExpired(tokenString string, now time.Time) bool {
	exp, ok, err := TokenExpiry(tokenString)
	if err != nil || !ok {
		return false
	}

	return exp.Before(now)
}

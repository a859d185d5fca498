package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrTokenExpired = errors.New("token has expired")

// CheckExpiry inspects a bearer token without verifying its signature; the
// backend remains the authority on validity. Tokens that are not JWTs, or
// carry no exp claim, pass.
func CheckExpiry(tokenString string, now time.Time) error {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil
	}
	if !now.Before(exp.Time) {
		return ErrTokenExpired
	}
	return nil
}

package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)
	return token
}

func TestCheckExpiry(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		token string
		want  error
	}{
		{"valid", sign(t, jwt.MapClaims{"exp": now.Add(time.Hour).Unix()}), nil},
		{"expired", sign(t, jwt.MapClaims{"exp": now.Add(-time.Minute).Unix()}), ErrTokenExpired},
		{"no exp", sign(t, jwt.MapClaims{"sub": "u1"}), nil},
		{"opaque token", "not-a-jwt", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckExpiry(tt.token, now))
		})
	}
}

package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseClaims(t *testing.T, secret, token string) jwt.MapClaims {
	t.Helper()
	parsed, err := jwt.Parse(token, func(tok *jwt.Token) (any, error) {
		return []byte(secret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	return claims
}

func TestNewSessionTokenClaims(t *testing.T) {
	tok, err := NewSessionToken("secret", 42, "customer", time.Hour)
	require.NoError(t, err)

	claims := parseClaims(t, "secret", tok.Token)
	assert.Equal(t, float64(42), claims["user_id"])
	assert.Equal(t, "customer", claims["role"])
	assert.Equal(t, float64(tok.Exp.Unix()), claims["exp"])
	assert.WithinDuration(t, time.Now().UTC().Add(time.Hour), tok.Exp, 5*time.Second)
}

func TestNewSessionTokenLongTTL(t *testing.T) {
	tok, err := NewSessionToken("secret", 1, "event_organizer", 30*24*time.Hour)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC().Add(30*24*time.Hour), tok.Exp, 5*time.Second)
}

func TestNewSessionTokenWrongSecret(t *testing.T) {
	tok, err := NewSessionToken("secret", 1, "customer", time.Hour)
	require.NoError(t, err)

	_, err = jwt.Parse(tok.Token, func(tok *jwt.Token) (any, error) {
		return []byte("other"), nil
	})
	assert.Error(t, err)
}

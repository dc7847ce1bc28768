package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	manager := NewTokenManager("unit-test-secret", 60)

	token, err := manager.Generate("user-1", "talent")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "talent", claims.Role)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", 60)
	verifier := NewTokenManager("secret-b", 60)

	token, err := issuer.Generate("user-1", "talent")
	require.NoError(t, err)

	_, err = verifier.Parse(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	manager := NewTokenManager("unit-test-secret", -1)

	token, err := manager.Generate("user-1", "talent")
	require.NoError(t, err)

	_, err = manager.Parse(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestParseRejectsGarbage(t *testing.T) {
	manager := NewTokenManager("unit-test-secret", 60)

	_, err := manager.Parse("not.a.token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTTL(t *testing.T) {
	manager := NewTokenManager("unit-test-secret", 90)
	assert.Equal(t, 90*time.Minute, manager.TTL())
}

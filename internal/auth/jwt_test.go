package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	m := NewTokenManager("super-secret", time.Hour)

	tok, err := m.Issue("abdullah")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := m.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "abdullah", claims.Username)
	assert.NotEmpty(t, claims.ID)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestVerify_WrongSecret(t *testing.T) {
	tok, err := NewTokenManager("right-secret", time.Hour).Issue("abdullah")
	require.NoError(t, err)

	_, err = NewTokenManager("wrong-secret", time.Hour).Verify(tok)
	assert.Error(t, err)
}

func TestVerify_Expired(t *testing.T) {
	m := NewTokenManager("secret", -time.Minute)

	tok, err := m.Issue("abdullah")
	require.NoError(t, err)

	_, err = m.Verify(tok)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestVerify_Malformed(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)

	_, err := m.Verify("not.a.jwt")
	assert.Error(t, err)
}

// Tokens minted before expiries were introduced carry no exp claim; they must
// still verify.
func TestVerify_NoExpiryClaim(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)

	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": "jalal",
		"iat":      time.Now().Unix(),
	})
	tok, err := raw.SignedString([]byte("secret"))
	require.NoError(t, err)

	claims, err := m.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "jalal", claims.Username)
	assert.Nil(t, claims.ExpiresAt)
}

func TestVerify_UnexpectedSigningMethod(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)

	raw := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{"username": "abdullah"})
	tok, err := raw.SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = m.Verify(tok)
	assert.Error(t, err)
}

func TestVerify_MissingUsername(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)

	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"iat": time.Now().Unix()})
	tok, err := raw.SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = m.Verify(tok)
	assert.Error(t, err)
}

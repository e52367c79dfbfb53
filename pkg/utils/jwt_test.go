package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTMaker_RoundTrip(t *testing.T) {
	maker := NewJWTMaker("test-secret", time.Hour)
	userID := uuid.New()

	token, err := maker.CreateToken(userID, "responder", false)
	require.NoError(t, err)

	claims, err := maker.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "responder", claims.Role)
	assert.False(t, claims.IsAdmin)
	assert.NotEmpty(t, claims.ID)

	remaining := claims.RemainingTTL()
	assert.Greater(t, remaining, 59*time.Minute)
	assert.LessOrEqual(t, remaining, time.Hour)
}

func TestJWTMaker_UniqueTokenIDs(t *testing.T) {
	maker := NewJWTMaker("test-secret", time.Hour)
	userID := uuid.New()

	first, err := maker.CreateToken(userID, "reporter", false)
	require.NoError(t, err)
	second, err := maker.CreateToken(userID, "reporter", false)
	require.NoError(t, err)

	firstClaims, err := maker.ValidateToken(first)
	require.NoError(t, err)
	secondClaims, err := maker.ValidateToken(second)
	require.NoError(t, err)

	// Each session carries its own jti so revoking one leaves the other alive.
	assert.NotEqual(t, firstClaims.ID, secondClaims.ID)
}

func TestJWTMaker_RejectsExpiredToken(t *testing.T) {
	maker := NewJWTMaker("test-secret", -time.Minute)

	token, err := maker.CreateToken(uuid.New(), "reporter", false)
	require.NoError(t, err)

	_, err = maker.ValidateToken(token)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestJWTMaker_RejectsWrongSecret(t *testing.T) {
	maker := NewJWTMaker("test-secret", time.Hour)
	other := NewJWTMaker("other-secret", time.Hour)

	token, err := maker.CreateToken(uuid.New(), "reporter", false)
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.NoError(t, ComparePasswords(hash, "secret123"))
	assert.Error(t, ComparePasswords(hash, "wrong"))
}

func TestValidationError_UnwrapsToSentinel(t *testing.T) {
	err := NewValidationError("points", "points must be a positive integer")

	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, []string{"points must be a positive integer"}, err.Details["points"])
}

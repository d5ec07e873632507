package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTripUsesSecretSetAfterInit(t *testing.T) {
	// The secret is only set here, long after package init, mirroring a
	// .env file loaded in main. Minting and validation must both pick it up.
	t.Setenv("JWT_SECRET", "late-bound-secret")

	userID := uuid.New()
	token, err := CreateToken(userID)
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	token, err := CreateToken(uuid.New())
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "rotated-secret")
	_, err = ValidateToken(token)
	require.Error(t, err)
}

package utils

import (
	"testing"

	"custodia/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	access, refresh, err := GenerateTokens(&models.UserClaims{
		CustomerID: 42,
		NationalID: "12345678901",
		Role:       models.RoleEmployee,
	})
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)

	claims, err := ParseToken(access)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.CustomerID)
	assert.Equal(t, "12345678901", claims.NationalID)
	assert.Equal(t, models.RoleEmployee, claims.Role)

	actor := claims.Actor()
	assert.Equal(t, uint(42), actor.CustomerID)
	assert.True(t, actor.IsEmployee())
}

func TestParseTokenRejectsTampering(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	access, _, err := GenerateTokens(&models.UserClaims{CustomerID: 1, Role: models.RoleCustomer})
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "different-secret")
	_, err = ParseToken(access)
	assert.Error(t, err)
}

func TestGenerateTokensRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, _, err := GenerateTokens(&models.UserClaims{CustomerID: 1})
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hashed, err := HashPassword("correct-horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct-horse", hashed)
	assert.True(t, CheckPassword(hashed, "correct-horse"))
	assert.False(t, CheckPassword(hashed, "wrong"))
}

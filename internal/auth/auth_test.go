package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/k12345663/Shop-Mauli/internal/auth"
	"github.com/k12345663/Shop-Mauli/internal/config"
	"github.com/k12345663/Shop-Mauli/internal/models"
)

func testJWTManager(secret string) *auth.JWTManager {
	cfg := &config.Config{}
	cfg.JWT.Secret = secret
	cfg.JWT.ExpirationHours = 24
	cfg.JWT.Issuer = "shop-mauli"
	return auth.NewJWTManager(cfg)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := auth.HashPassword("collector-secret-1")
	require.NoError(t, err)
	assert.NotEqual(t, "collector-secret-1", hash)

	assert.True(t, auth.VerifyPassword(hash, "collector-secret-1"))
	assert.False(t, auth.VerifyPassword(hash, "wrong-password"))
}

func TestGenerateAndValidateToken(t *testing.T) {
	mgr := testJWTManager("test-secret")
	user := &models.User{
		ID:       "3f6bf9a5-8c1f-4a55-9d71-2f9a3c0a1b6e",
		Email:    "collector@example.com",
		Role:     models.RoleCollector,
		FullName: "Test Collector",
	}

	token, err := mgr.GenerateToken(user)
	require.NoError(t, err)

	claims, err := mgr.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, models.RoleCollector, claims.Role)
	assert.Equal(t, "shop-mauli", claims.Issuer)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	token, err := testJWTManager("secret-a").GenerateToken(&models.User{ID: "u1", Role: models.RoleCollector})
	require.NoError(t, err)

	_, err = testJWTManager("secret-b").ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := testJWTManager("secret").ValidateToken("not.a.token")
	assert.Error(t, err)
}

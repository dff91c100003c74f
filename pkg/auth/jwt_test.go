package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJWTManager(t *testing.T) {
	t.Run("creates manager with valid config", func(t *testing.T) {
		manager := NewJWTManager("testsecret", 15*time.Minute)

		assert.NotNil(t, manager)
	})
}

func TestJWTManager_GenerateToken(t *testing.T) {
	manager := NewJWTManager("testsecret123", 15*time.Minute)

	t.Run("generates valid token for user ID and role", func(t *testing.T) {
		token, err := manager.GenerateToken("507f1f77bcf86cd799439011", "coach")

		require.NoError(t, err)
		assert.NotEmpty(t, token)
		// Token should be a valid JWT format (3 parts separated by dots)
		assert.Regexp(t, `^[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+$`, token)
	})

	t.Run("token contains user ID and role", func(t *testing.T) {
		token, _ := manager.GenerateToken("test-user-123", "tournament_director")
		claims, err := manager.ValidateToken(token)

		require.NoError(t, err)
		assert.Equal(t, "test-user-123", claims.UserID)
		assert.Equal(t, "tournament_director", claims.Role)
	})

	t.Run("generates token for empty role", func(t *testing.T) {
		token, err := manager.GenerateToken("user123", "")

		require.NoError(t, err)
		assert.NotEmpty(t, token)
	})
}

func TestJWTManager_ValidateToken(t *testing.T) {
	manager := NewJWTManager("testsecret123", 15*time.Minute)

	t.Run("validates correctly signed token", func(t *testing.T) {
		token, _ := manager.GenerateToken("507f1f77bcf86cd799439011", "player")

		claims, err := manager.ValidateToken(token)

		require.NoError(t, err)
		assert.NotNil(t, claims)
		assert.Equal(t, "507f1f77bcf86cd799439011", claims.UserID)
		assert.Equal(t, "player", claims.Role)
	})

	t.Run("returns error for expired token", func(t *testing.T) {
		shortManager := NewJWTManager("testsecret123", 1*time.Millisecond)
		token, _ := shortManager.GenerateToken("user123", "player")

		// Wait for token to expire
		time.Sleep(10 * time.Millisecond)

		claims, err := shortManager.ValidateToken(token)

		assert.Error(t, err)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("returns error for token signed with different secret", func(t *testing.T) {
		otherManager := NewJWTManager("differentsecret", 15*time.Minute)
		token, _ := otherManager.GenerateToken("user123", "player")

		claims, err := manager.ValidateToken(token)

		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("returns error for malformed token", func(t *testing.T) {
		claims, err := manager.ValidateToken("not.a.token")

		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("returns error for empty token", func(t *testing.T) {
		claims, err := manager.ValidateToken("")

		assert.Error(t, err)
		assert.Nil(t, claims)
	})
}

package jwt

import (
	"testing"
	"time"

	"github.com/ChIhtisham78/ShoppingMallPos/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(secret string, access time.Duration) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        secret,
		AccessExpiry:  access,
		RefreshExpiry: time.Hour,
	})
}

func TestGenerateAndValidateAccessToken(t *testing.T) {
	svc := newService("secret", time.Minute)
	subject := Subject{UserID: uuid.New(), Username: "admin", RoleID: 1}

	token, tokenID, err := svc.GenerateAccessToken(subject)
	require.NoError(t, err)
	assert.NotEmpty(t, tokenID)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, subject.UserID, claims.UserID)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, 1, claims.RoleID)
	assert.Equal(t, AccessToken, claims.TokenType)
	assert.Equal(t, tokenID, claims.TokenID)
}

func TestRefreshTokenType(t *testing.T) {
	svc := newService("secret", time.Minute)

	token, _, err := svc.GenerateRefreshToken(Subject{UserID: uuid.New(), Username: "agent", RoleID: 2})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, RefreshToken, claims.TokenType)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	token, _, err := newService("secret", time.Minute).GenerateAccessToken(Subject{UserID: uuid.New()})
	require.NoError(t, err)

	_, err = newService("other", time.Minute).ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	svc := newService("secret", -time.Minute)

	token, _, err := svc.GenerateAccessToken(Subject{UserID: uuid.New()})
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/ChIhtisham78/ShoppingMallPos/config"
	"github.com/ChIhtisham78/ShoppingMallPos/internal/delivery/dto"
	"github.com/ChIhtisham78/ShoppingMallPos/internal/domain/entity"
	"github.com/ChIhtisham78/ShoppingMallPos/internal/repository/memory"
	"github.com/ChIhtisham78/ShoppingMallPos/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSeed = config.SeedConfig{AdminUsername: "admin", AdminPassword: "admin-pass", AdminName: "Administrator"}

func newAuthFixture(t *testing.T) (*testEnv, AuthUsecase, *jwt.JWTService) {
	t.Helper()
	env := newTestEnv()
	jwtService := jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  time.Minute,
		RefreshExpiry: time.Hour,
	})
	uc := NewAuthUsecase(env.log, env.users, jwtService, memory.NewTokenStore())
	require.NoError(t, uc.EnsureAdmin(context.Background(), testSeed))
	return env, uc, jwtService
}

func TestEnsureAdmin(t *testing.T) {
	ctx := context.Background()
	env, uc, _ := newAuthFixture(t)

	require.NoError(t, uc.EnsureAdmin(ctx, testSeed))
	admins, err := env.users.CountByRole(ctx, entity.RoleIDAdmin)
	require.NoError(t, err)
	assert.EqualValues(t, 1, admins)

	empty := newTestEnv()
	skip := NewAuthUsecase(empty.log, empty.users, jwt.NewJWTService(config.JWTConfig{Secret: "s"}), memory.NewTokenStore())
	require.NoError(t, skip.EnsureAdmin(ctx, config.SeedConfig{AdminUsername: "admin"}))
	n, err := empty.users.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	_, uc, jwtService := newAuthFixture(t)

	tokens, err := uc.Login(ctx, &dto.LoginRequest{Username: "admin", Password: "admin-pass"})
	require.NoError(t, err)
	assert.EqualValues(t, 60, tokens.ExpiresIn)

	claims, err := jwtService.ValidateToken(tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleIDAdmin, claims.RoleID)
	assert.Equal(t, jwt.AccessToken, claims.TokenType)

	active, err := uc.IsTokenActive(ctx, claims.UserID, claims.TokenID)
	require.NoError(t, err)
	assert.True(t, active)

	me, err := uc.GetCurrentUser(ctx, claims.UserID)
	require.NoError(t, err)
	assert.Equal(t, "admin", me.Username)
	assert.Equal(t, "admin", me.Role)

	_, err = uc.Login(ctx, &dto.LoginRequest{Username: "admin", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = uc.Login(ctx, &dto.LoginRequest{Username: "ghost", Password: "admin-pass"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshTokenRotates(t *testing.T) {
	ctx := context.Background()
	_, uc, jwtService := newAuthFixture(t)

	tokens, err := uc.Login(ctx, &dto.LoginRequest{Username: "admin", Password: "admin-pass"})
	require.NoError(t, err)

	rotated, err := uc.RefreshToken(ctx, &dto.RefreshTokenRequest{RefreshToken: tokens.RefreshToken})
	require.NoError(t, err)
	assert.NotEqual(t, tokens.RefreshToken, rotated.RefreshToken)

	_, err = uc.RefreshToken(ctx, &dto.RefreshTokenRequest{RefreshToken: tokens.RefreshToken})
	assert.ErrorIs(t, err, ErrTokenRevoked)

	_, err = uc.RefreshToken(ctx, &dto.RefreshTokenRequest{RefreshToken: rotated.AccessToken})
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = uc.RefreshToken(ctx, &dto.RefreshTokenRequest{RefreshToken: "garbage"})
	assert.ErrorIs(t, err, ErrInvalidToken)

	claims, err := jwtService.ValidateToken(rotated.AccessToken)
	require.NoError(t, err)
	active, err := uc.IsTokenActive(ctx, claims.UserID, claims.TokenID)
	require.NoError(t, err)
	assert.True(t, active)
}

func TestLogoutRevokesTokens(t *testing.T) {
	ctx := context.Background()
	_, uc, jwtService := newAuthFixture(t)

	tokens, err := uc.Login(ctx, &dto.LoginRequest{Username: "admin", Password: "admin-pass"})
	require.NoError(t, err)
	claims, err := jwtService.ValidateToken(tokens.AccessToken)
	require.NoError(t, err)

	require.NoError(t, uc.Logout(ctx, claims.UserID, claims.TokenID, tokens.RefreshToken))

	active, err := uc.IsTokenActive(ctx, claims.UserID, claims.TokenID)
	require.NoError(t, err)
	assert.False(t, active)

	_, err = uc.RefreshToken(ctx, &dto.RefreshTokenRequest{RefreshToken: tokens.RefreshToken})
	assert.ErrorIs(t, err, ErrTokenRevoked)
}

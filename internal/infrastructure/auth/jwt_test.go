package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storeadmin/backend/internal/infrastructure/config"
)

func newTestService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:                 strings.Repeat("a", 32),
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 168 * time.Hour,
		Issuer:                 "storeadmin-test",
	})
}

func TestGenerateTokenPair(t *testing.T) {
	svc := newTestService()
	userID := uuid.New()

	pair, err := svc.GenerateTokenPair(GenerateTokenInput{
		UserID: userID,
		Email:  "alice@example.com",
		Role:   "user",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)
	assert.Equal(t, "Bearer", pair.TokenType)

	claims, err := svc.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)

	parsed, err := claims.GetUserUUID()
	require.NoError(t, err)
	assert.Equal(t, userID, parsed)
}

func TestValidateAccessToken_RejectsRefreshToken(t *testing.T) {
	svc := newTestService()

	pair, err := svc.GenerateTokenPair(GenerateTokenInput{UserID: uuid.New()})
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(pair.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidTokenType)

	_, err = svc.ValidateRefreshToken(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidTokenType)
}

func TestValidateAccessToken_RejectsGarbage(t *testing.T) {
	svc := newTestService()

	_, err := svc.ValidateAccessToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateAccessToken_RejectsWrongSecret(t *testing.T) {
	svc := newTestService()
	other := NewJWTService(config.JWTConfig{
		Secret:                 strings.Repeat("b", 32),
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 168 * time.Hour,
		Issuer:                 "storeadmin-test",
	})

	pair, err := other.GenerateTokenPair(GenerateTokenInput{UserID: uuid.New()})
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshTokenPair(t *testing.T) {
	svc := newTestService()
	userID := uuid.New()

	pair, err := svc.GenerateTokenPair(GenerateTokenInput{UserID: userID, Role: "user"})
	require.NoError(t, err)

	renewed, err := svc.RefreshTokenPair(pair.RefreshToken)
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(renewed.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)

	_, err = svc.RefreshTokenPair(pair.AccessToken)
	assert.Error(t, err, "access token cannot be used to refresh")
}

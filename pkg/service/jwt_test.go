package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"vivere-estoque/pkg/constants"
	apperrors "vivere-estoque/pkg/errors"
)

func newTestJWTService() JWTService {
	return NewJWTService("chave-de-teste", time.Hour, 24*time.Hour, zap.NewNop())
}

func TestGenerateTokens_RoundTrip(t *testing.T) {
	svc := newTestJWTService()
	depositoID := uint64(2)

	access, refresh, err := svc.GenerateTokens(7, constants.PerfilGestor, &depositoID)
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)
	assert.NotEqual(t, access, refresh)

	claims, err := svc.ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), claims.UserID)
	assert.Equal(t, constants.PerfilGestor, claims.Perfil)
	require.NotNil(t, claims.DepositoID)
	assert.Equal(t, uint64(2), *claims.DepositoID)
	assert.False(t, claims.IsRefreshToken)
}

func TestValidateToken_RefreshCarriesFlag(t *testing.T) {
	svc := newTestJWTService()

	_, refresh, err := svc.GenerateTokens(1, constants.PerfilAdministrador, nil)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(refresh)
	require.NoError(t, err)
	assert.True(t, claims.IsRefreshToken)
	assert.Nil(t, claims.DepositoID)
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := newTestJWTService()

	_, err := svc.ValidateToken("nem.um.token")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestValidateToken_WrongKey(t *testing.T) {
	access, _, err := newTestJWTService().GenerateTokens(1, constants.PerfilAdministrador, nil)
	require.NoError(t, err)

	other := NewJWTService("outra-chave", time.Hour, 24*time.Hour, zap.NewNop())
	_, err = other.ValidateToken(access)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := NewJWTService("chave-de-teste", -time.Minute, 24*time.Hour, zap.NewNop())

	access, _, err := svc.GenerateTokens(1, constants.PerfilAdministrador, nil)
	require.NoError(t, err)

	_, err = svc.ValidateToken(access)
	assert.Error(t, err)
}

package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turismo_api/internal/apierrors"
	"turismo_api/internal/models"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret")

	token, err := tm.Issue("a@b.com", models.RolAgente)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tm.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", claims.Correo)
	assert.Equal(t, models.RolAgente, claims.Rol)
}

func TestVerifyRejectsEmptyToken(t *testing.T) {
	tm := NewTokenManager("test-secret")

	_, err := tm.Verify("")
	require.Error(t, err)

	var apiErr *apierrors.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, apierrors.KindAuth, apiErr.Kind)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	otro := NewTokenManager("otro-secreto")
	token, err := otro.Issue("a@b.com", models.RolCliente)
	require.NoError(t, err)

	tm := NewTokenManager("test-secret")
	_, err = tm.Verify(token)
	require.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	tm := NewTokenManager("test-secret")
	_, err := tm.Verify("no.un.token")
	require.Error(t, err)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	secret := "test-secret"
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "a@b.com",
		"role": "Cliente",
		"exp":  time.Now().Add(-time.Hour).Unix(),
	})
	tokenStr, err := expired.SignedString([]byte(secret))
	require.NoError(t, err)

	tm := NewTokenManager(secret)
	_, err = tm.Verify(tokenStr)
	require.Error(t, err)
}

func TestVerifyRejectsUnknownRoleClaim(t *testing.T) {
	secret := "test-secret"
	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "a@b.com",
		"role": "SuperUsuario",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	tokenStr, err := forged.SignedString([]byte(secret))
	require.NoError(t, err)

	tm := NewTokenManager(secret)
	_, err = tm.Verify(tokenStr)
	require.Error(t, err)
}

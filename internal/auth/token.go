package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"turismo_api/internal/apierrors"
	"turismo_api/internal/models"
)

const tokenTTL = 72 * time.Hour

// msgTokenInvalido is the single message for every missing/invalid
// token condition; clients cannot distinguish why verification failed.
const msgTokenInvalido = "Token de autorización faltante o inválido"

// Claims are the verified assertions extracted from a bearer token.
type Claims struct {
	Correo string
	Rol    models.Rol
}

// TokenManager issues and verifies HS256-signed identity tokens.
type TokenManager struct {
	secret []byte
}

func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{secret: []byte(secret)}
}

// Issue signs a token binding the user's email and role name. Tokens
// expire after 72 hours.
func (tm *TokenManager) Issue(correo string, rol models.Rol) (string, error) {
	claims := jwt.MapClaims{
		"sub":  correo,
		"role": rol.String(),
		"exp":  time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tm.secret)
}

// Verify parses and validates a token string, returning its claims.
// Any failure (empty token, bad signature, expired, unknown role)
// yields the same typed auth error.
func (tm *TokenManager) Verify(tokenStr string) (*Claims, error) {
	if tokenStr == "" {
		return nil, apierrors.Auth(msgTokenInvalido)
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		return tm.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, apierrors.Auth(msgTokenInvalido)
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apierrors.Auth(msgTokenInvalido)
	}
	correo, _ := mapClaims["sub"].(string)
	nombreRol, _ := mapClaims["role"].(string)
	rol, ok := models.RolDesdeNombre(nombreRol)
	if !ok {
		return nil, apierrors.Auth(msgTokenInvalido)
	}

	return &Claims{Correo: correo, Rol: rol}, nil
}

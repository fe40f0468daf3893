package auth

import (
	"testing"

	"gadkin-backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "segredo-de-teste-com-pelo-menos-32-caracteres"

func parseToken(t *testing.T, tokenStr, secret string) (*JWTCustomClaims, error) {
	t.Helper()

	token, err := jwt.ParseWithClaims(tokenStr, &JWTCustomClaims{}, func(tok *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*JWTCustomClaims)
	require.True(t, ok)
	return claims, nil
}

func TestGenerateTokenRoundTrip(t *testing.T) {
	t.Parallel()

	user := &models.User{
		ID:           42,
		Email:        "operador@gadkin.com.br",
		NomeCompleto: "Operador de Produção",
	}

	tokenStr, err := GenerateToken(testSecret, user)
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)

	claims, err := parseToken(t, tokenStr, testSecret)
	require.NoError(t, err)

	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "operador@gadkin.com.br", claims.Email)
	assert.NotNil(t, claims.ExpiresAt)
}

func TestGenerateTokenSegredoErrado(t *testing.T) {
	t.Parallel()

	user := &models.User{ID: 1, Email: "a@b.com"}

	tokenStr, err := GenerateToken(testSecret, user)
	require.NoError(t, err)

	_, err = parseToken(t, tokenStr, "outro-segredo-igualmente-longo-p/validacao")
	assert.Error(t, err)
}

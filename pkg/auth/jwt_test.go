package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/animai-studio/internal/domain/user"
)

func newTestService(t *testing.T) *JWTService {
	t.Helper()
	t.Setenv("JWT_SECRET_KEY", "chave-de-teste")

	service, err := NewJWTService()
	require.NoError(t, err)
	return service
}

func TestNewJWTService_MissingKey(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")

	_, err := NewJWTService()
	require.ErrorIs(t, err, ErrMissingJWTKey)
}

func TestGenerateAndValidateToken(t *testing.T) {
	service := newTestService(t)

	u := &user.User{
		ID:    "user-1",
		Name:  "Maria",
		Email: "maria@example.com",
	}

	token, expiresAt, err := service.GenerateToken(u)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.False(t, expiresAt.IsZero())

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "maria@example.com", claims.Email)
	assert.Equal(t, "Maria", claims.Name)
	assert.Equal(t, "user-1", claims.Subject)
}

func TestValidateToken_Invalid(t *testing.T) {
	service := newTestService(t)

	_, err := service.ValidateToken("não-é-um-token")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_WrongKey(t *testing.T) {
	service := newTestService(t)

	token, _, err := service.GenerateToken(&user.User{ID: "user-1"})
	require.NoError(t, err)

	t.Setenv("JWT_SECRET_KEY", "outra-chave")
	other, err := NewJWTService()
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

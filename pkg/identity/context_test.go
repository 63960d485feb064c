package identity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithUser(t *testing.T) {
	ctx := WithUser(context.Background(), "user-1", "u@example.com")

	assert.Equal(t, "user-1", UserID(ctx))
	assert.Equal(t, "u@example.com", UserEmail(ctx))
	assert.True(t, IsAuthenticated(ctx))
}

func TestEmptyContextIsGuest(t *testing.T) {
	ctx := context.Background()

	assert.Empty(t, UserID(ctx))
	assert.Empty(t, UserEmail(ctx))
	assert.False(t, IsAuthenticated(ctx))
}

func TestGinStringKeysAreRecognized(t *testing.T) {
	// O middleware do Gin propaga a identidade sob chaves string no contexto
	// do request; a resolução precisa aceitar as duas formas
	ctx := context.WithValue(context.Background(), "user_id", "user-2") //nolint:staticcheck
	assert.Equal(t, "user-2", UserID(ctx))
	assert.True(t, IsAuthenticated(ctx))
}

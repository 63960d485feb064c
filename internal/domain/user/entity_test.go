package user

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetPassword_HashesAndVerifies(t *testing.T) {
	u := &User{Email: "u@example.com"}

	require.NoError(t, u.SetPassword("segredo123"))
	assert.NotEqual(t, "segredo123", u.Password)

	assert.True(t, u.CheckPassword("segredo123"))
	assert.False(t, u.CheckPassword("outra-senha"))
}

func TestSetPassword_Empty(t *testing.T) {
	u := &User{}
	require.ErrorIs(t, u.SetPassword(""), ErrEmptyPassword)
}

func TestPasswordIsNeverSerialized(t *testing.T) {
	u := &User{Email: "u@example.com"}
	require.NoError(t, u.SetPassword("segredo123"))

	data, err := json.Marshal(u)
	require.NoError(t, err)
	assert.NotContains(t, string(data), u.Password)
	assert.NotContains(t, string(data), "password")
}

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashAndCheck(t *testing.T) {
	hash, err := HashPassword("hunter2!")
	require.NoError(t, err)
	require.NotEqual(t, "hunter2!", hash)

	assert.True(t, CheckPassword("hunter2!", hash))
	assert.False(t, CheckPassword("hunter3!", hash))
	assert.False(t, CheckPassword("", hash))
}

func TestCheckPasswordBadHash(t *testing.T) {
	assert.False(t, CheckPassword("hunter2!", "not-a-bcrypt-hash"))
}

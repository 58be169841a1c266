package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	require.NotEqual(t, "secret123", hash)

	require.True(t, CheckPassword(hash, "secret123"))
	require.False(t, CheckPassword(hash, "secret124"))
	require.False(t, CheckPassword("not-a-hash", "secret123"))
}

package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_Format(t *testing.T) {
	hash, err := HashPassword("secret")
	require.NoError(t, err)

	parts := strings.Split(hash, ".")
	require.Len(t, parts, 2)
	// 64-byte key and 16-byte salt, hex encoded.
	assert.Len(t, parts[0], 128)
	assert.Len(t, parts[1], 32)
}

func TestHashPassword_SaltsAreUnique(t *testing.T) {
	h1, err := HashPassword("secret")
	require.NoError(t, err)
	h2, err := HashPassword("secret")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}

func TestComparePasswords(t *testing.T) {
	hash, err := HashPassword("secret")
	require.NoError(t, err)

	match, err := ComparePasswords("secret", hash)
	require.NoError(t, err)
	assert.True(t, match)

	match, err = ComparePasswords("wrong", hash)
	require.NoError(t, err)
	assert.False(t, match)
}

func TestComparePasswords_MalformedStored(t *testing.T) {
	_, err := ComparePasswords("secret", "not-a-credential")
	assert.Error(t, err)

	_, err = ComparePasswords("secret", "zz.zz")
	assert.Error(t, err)
}

package helpers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/connecta/identity-service/pkg/helpers"
)

func TestHashPassword(t *testing.T) {
	hash, err := helpers.HashPassword("segredo1")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "segredo1", hash)

	assert.True(t, helpers.CheckPassword(hash, "segredo1"))
	assert.False(t, helpers.CheckPassword(hash, "segredo2"))
}

func TestHashPassword_SaltRandomness(t *testing.T) {
	first, err := helpers.HashPassword("same-plaintext")
	require.NoError(t, err)
	second, err := helpers.HashPassword("same-plaintext")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, helpers.CheckPassword(first, "same-plaintext"))
	assert.True(t, helpers.CheckPassword(second, "same-plaintext"))
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	tests := []struct {
		name string
		hash string
	}{
		{name: "empty hash", hash: ""},
		{name: "not a bcrypt hash", hash: "plainly-not-a-hash"},
		{name: "truncated hash", hash: "$2a$10$abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Malformed stored hashes fail verification like a wrong
			// password, never panic or leak shape information.
			assert.False(t, helpers.CheckPassword(tt.hash, "whatever"))
		})
	}
}

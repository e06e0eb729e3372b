package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, salt, err := HashPassword("correct horse battery")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEmpty(t, salt)

	assert.True(t, VerifyPassword("correct horse battery", hash, salt))
	assert.False(t, VerifyPassword("wrong horse battery", hash, salt))
}

func TestHashPassword_TooShort(t *testing.T) {
	_, _, err := HashPassword("short")
	assert.ErrorIs(t, err, ErrTooShort)
}

func TestHashPassword_UniqueSalt(t *testing.T) {
	h1, s1, err := HashPassword("correct horse battery")
	require.NoError(t, err)
	h2, s2, err := HashPassword("correct horse battery")
	require.NoError(t, err)

	assert.NotEqual(t, s1, s2)
	assert.NotEqual(t, h1, h2)
}

func TestVerifyPassword(t *testing.T) {
	hash, salt, err := HashPassword("correct horse battery")
	require.NoError(t, err)
	_, otherSalt, err := HashPassword("another long password")
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		hash     string
		salt     string
		want     bool
	}{
		{name: "correct", password: "correct horse battery", hash: hash, salt: salt, want: true},
		{name: "wrong password", password: "nope", hash: hash, salt: salt},
		{name: "wrong salt", password: "correct horse battery", hash: hash, salt: otherSalt},
		{name: "invalid salt", password: "correct horse battery", hash: hash, salt: "invalid-salt!"},
		{name: "invalid hash", password: "correct horse battery", hash: "%%%", salt: salt},
		{name: "empty hash", password: "", hash: "", salt: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VerifyPassword(tt.password, tt.hash, tt.salt))
		})
	}
}

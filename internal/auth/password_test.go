package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword_VerifyRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		plain string
	}{
		{name: "single character", plain: "a"},
		{name: "typical password", plain: "Abc123!@"},
		{name: "unicode", plain: "pässwörd-Ж1!"},
		{name: "max length", plain: strings.Repeat("Xy9!", 32)}, // 128 chars
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			digest, err := HashPassword(tt.plain)
			assert.NoError(t, err)
			assert.NotEmpty(t, digest)
			assert.NotEqual(t, tt.plain, digest)

			assert.True(t, VerifyPassword(tt.plain, digest))
			assert.False(t, VerifyPassword(tt.plain+"x", digest))
			assert.False(t, VerifyPassword("completely different", digest))
		})
	}
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	first, err := HashPassword("Abc123!@")
	assert.NoError(t, err)
	second, err := HashPassword("Abc123!@")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, VerifyPassword("Abc123!@", first))
	assert.True(t, VerifyPassword("Abc123!@", second))
}

func TestVerifyPassword_MalformedDigest(t *testing.T) {
	assert.False(t, VerifyPassword("Abc123!@", ""))
	assert.False(t, VerifyPassword("Abc123!@", "not-a-bcrypt-digest"))
	assert.False(t, VerifyPassword("Abc123!@", "$2a$12$tooshort"))
}

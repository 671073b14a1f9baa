package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is the adaptive work factor; raising it slows both hashing
// and verification.
const bcryptCost = 12

// bcrypt only reads the first 72 bytes of input; longer passwords are
// truncated here explicitly rather than rejected, since the validator
// accepts up to 128 characters.
const bcryptMaxLen = 72

// HashPassword hashes a plaintext password. The salt is randomized per
// call, so hashing the same input twice yields different digests.
func HashPassword(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword(passwordBytes(plain), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(digest), nil
}

// VerifyPassword reports whether plain matches digest. Any bcrypt failure,
// a malformed digest included, reads as a mismatch rather than an error.
func VerifyPassword(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), passwordBytes(plain)) == nil
}

func passwordBytes(plain string) []byte {
	b := []byte(plain)
	if len(b) > bcryptMaxLen {
		b = b[:bcryptMaxLen]
	}
	return b
}

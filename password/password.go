// Package password hashes and checks the admin dashboard password.
package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters
const (
	Time    = 1
	Memory  = 64 * 1024
	Threads = 4
	KeyLen  = 32
)

// MinLength is the shortest admin password HashPassword accepts.
const MinLength = 12

var ErrTooShort = errors.New("password must be at least 12 characters long")

// HashPassword hashes a password with a new random salt using Argon2id
func HashPassword(password string) (hash, salt string, err error) {
	if len(password) < MinLength {
		return "", "", ErrTooShort
	}

	saltBytes := make([]byte, 16)
	if _, err := rand.Read(saltBytes); err != nil {
		return "", "", err
	}

	hashBytes := argon2.IDKey([]byte(password), saltBytes, Time, Memory, Threads, KeyLen)

	hash = base64.RawStdEncoding.EncodeToString(hashBytes)
	salt = base64.RawStdEncoding.EncodeToString(saltBytes)
	return hash, salt, nil
}

// VerifyPassword verifies a password against a stored hash and salt.
// An empty hash never verifies.
func VerifyPassword(password, hash, salt string) bool {
	if hash == "" {
		return false
	}
	want, err := base64.RawStdEncoding.DecodeString(hash)
	if err != nil {
		return false
	}
	saltBytes, err := base64.RawStdEncoding.DecodeString(salt)
	if err != nil {
		return false
	}

	got := argon2.IDKey([]byte(password), saltBytes, Time, Memory, Threads, KeyLen)
	return subtle.ConstantTimeCompare(got, want) == 1
}

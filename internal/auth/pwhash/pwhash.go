package pwhash

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const keyLength = 32

// PasswordHasher derives and verifies PBKDF2-SHA256 password hashes encoded
// as base64(salt)$base64(key).
type PasswordHasher struct {
	saltSize   int
	iterations int
}

func New(saltSize, iterations int) (*PasswordHasher, error) {
	if saltSize <= 0 {
		return nil, fmt.Errorf("salt size must be positive, got %d", saltSize)
	}
	if iterations <= 0 {
		return nil, fmt.Errorf("iterations must be positive, got %d", iterations)
	}
	return &PasswordHasher{
		saltSize:   saltSize,
		iterations: iterations,
	}, nil
}

func (ph *PasswordHasher) HashPassword(password string) (string, error) {
	salt := make([]byte, ph.saltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("can't generate salt: %w", err)
	}

	key := pbkdf2.Key([]byte(password), salt, ph.iterations, keyLength, sha256.New)
	return base64.RawStdEncoding.EncodeToString(salt) + "$" +
		base64.RawStdEncoding.EncodeToString(key), nil
}

func (ph *PasswordHasher) Validate(password, hash string) error {
	salt64, key64, ok := strings.Cut(hash, "$")
	if !ok {
		return fmt.Errorf("malformed password hash")
	}
	salt, err := base64.RawStdEncoding.DecodeString(salt64)
	if err != nil {
		return fmt.Errorf("malformed salt: %w", err)
	}
	key, err := base64.RawStdEncoding.DecodeString(key64)
	if err != nil {
		return fmt.Errorf("malformed key: %w", err)
	}

	candidate := pbkdf2.Key([]byte(password), salt, ph.iterations, keyLength, sha256.New)
	if subtle.ConstantTimeCompare(candidate, key) != 1 {
		return fmt.Errorf("password mismatch")
	}
	return nil
}

// Package auth provides password hashing and verification.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/scrypt"
)

const (
	scryptN      = 16384
	scryptR      = 8
	scryptP      = 1
	saltLength   = 16
	keyLength    = 64
	hashSaltSeps = 2
)

// HashPassword derives an scrypt hash of the password with a fresh random
// salt and encodes it as "hex(hash).hex(salt)".
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}

	key, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, keyLength)
	if err != nil {
		return "", fmt.Errorf("deriving key: %w", err)
	}

	return hex.EncodeToString(key) + "." + hex.EncodeToString(salt), nil
}

// ComparePasswords reports whether the supplied password matches the stored
// "hash.salt" credential, using a constant-time comparison.
func ComparePasswords(supplied, stored string) (bool, error) {
	parts := strings.Split(stored, ".")
	if len(parts) != hashSaltSeps {
		return false, errors.New("malformed stored credential")
	}

	storedKey, err := hex.DecodeString(parts[0])
	if err != nil {
		return false, fmt.Errorf("decoding stored hash: %w", err)
	}
	salt, err := hex.DecodeString(parts[1])
	if err != nil {
		return false, fmt.Errorf("decoding stored salt: %w", err)
	}

	suppliedKey, err := scrypt.Key([]byte(supplied), salt, scryptN, scryptR, scryptP, len(storedKey))
	if err != nil {
		return false, fmt.Errorf("deriving key: %w", err)
	}

	return subtle.ConstantTimeCompare(storedKey, suppliedKey) == 1, nil
}

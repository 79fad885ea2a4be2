package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the fixed bcrypt work factor used for all password
// hashes. Raising it invalidates nothing: old hashes keep their recorded
// cost and still verify.
const BcryptCost = 12

// HashPassword hashes a plaintext password with bcrypt at [BcryptCost].
// bcrypt embeds a fresh random salt into every hash, so hashing the same
// input twice yields different outputs.
//
// Returns an error only on internal bcrypt failure (e.g. the password
// exceeds bcrypt's 72-byte limit).
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// CheckPassword reports whether password matches the stored bcrypt hash.
// The comparison runs in constant time relative to the stored salt and
// never panics: any mismatch or malformed hash yields false.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

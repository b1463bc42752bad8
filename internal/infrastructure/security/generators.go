// Package security provides token and secure random generation utilities
package security

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/oklog/ulid/v2"
)

// GenerateULID generates a new ULID string. Fetch cycles are tagged with
// ULIDs so stale completions can be recognized and discarded.
func GenerateULID() string {
	return ulid.Make().String()
}

// GenerateSecureKey creates a cryptographically secure random key and returns
// it as a hex string. This is ideal for generating JWT secrets.
func GenerateSecureKey(length int) (string, error) {
	bytes := make([]byte, length/2) // Each byte becomes two hex characters
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate secure key: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}

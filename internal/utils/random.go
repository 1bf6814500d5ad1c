package utils

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// apiTokenBytes is the amount of randomness in an API token.
const apiTokenBytes = 24

// GenerateAPIToken returns a new opaque API token: 24 random bytes encoded
// with standard base64 (32 characters).
func GenerateAPIToken() (string, error) {
	buf := make([]byte, apiTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("error reading random bytes: %w", err)
	}

	return base64.StdEncoding.EncodeToString(buf), nil
}

package session

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// GenerateID generates a cryptographically secure session ID.
// 32 bytes = 256 bits of entropy.
func GenerateID() (string, error) {
	const size = 32

	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate session id: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}

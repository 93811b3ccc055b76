package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateToken returns a random hex token for email verification and
// password reset links.
func GenerateToken() string {
	b := make([]byte, 20)
	rand.Read(b)
	return hex.EncodeToString(b)
}

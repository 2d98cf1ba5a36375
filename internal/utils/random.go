package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateSessionID returns a random hex string of 2*byteLength characters.
// Session ids travel inside a signed cookie but are generated from
// crypto/rand so they stay unguessable across restarts.
func GenerateSessionID(byteLength int) (string, error) {
	buf := make([]byte, byteLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashSessionID returns a stable, non-reversible identifier for a visitor session.
// It is used wherever the session must be correlated without exposing the cookie value.
func HashSessionID(sessionID string) string {
	if sessionID == "" {
		return "anonymous"
	}
	hasher := sha256.New()
	hasher.Write([]byte(sessionID))
	return hex.EncodeToString(hasher.Sum(nil))[:32]
}

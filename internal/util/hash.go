package util

import (
	"crypto/sha256"
	"fmt"
)

// GenerateHash creates a SHA256 hash of the given snippet text. The hash is
// used as the session-level dedup key, so callers must pass already-trimmed
// content.
func GenerateHash(content string) string {
	hasher := sha256.New()
	hasher.Write([]byte(content))
	return fmt.Sprintf("%x", hasher.Sum(nil))
}

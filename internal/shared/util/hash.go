package util

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

const userKeyLen = 32

// HashUserKey maps a user id to the directory segment holding that user's
// uploads and cached reports. Surrounding whitespace is ignored.
func HashUserKey(userID string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(userID)))
	return hex.EncodeToString(sum[:])[:userKeyLen]
}

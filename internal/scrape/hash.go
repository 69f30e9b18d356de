package scrape

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// IdentityHash derives the stable notice identity from what the overview page
// shows: the listed name, the printed funeral date and the media URL. The
// first 12 hex characters of the SHA-256 are enough to dedupe a funeral
// home's output and keep URLs short.
func IdentityHash(name, funeralText, mediaURL string) string {
	h := sha256.Sum256([]byte(strings.TrimSpace(name) + "|" + strings.TrimSpace(funeralText) + "|" + strings.TrimSpace(mediaURL)))
	return hex.EncodeToString(h[:])[:12]
}

package model

import (
	"crypto/rand"
	"encoding/hex"
)

// newID returns a fresh opaque block identity. IDs only need to be unique
// within one editing session; they never round-trip through markup.
func newID() string {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// rand.Read on supported platforms does not fail; fall back to
		// an empty ID rather than propagating an error nobody can act on.
		return ""
	}
	return "blk-" + hex.EncodeToString(buf[:])
}

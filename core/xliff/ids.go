package xliff

import (
	"encoding/hex"

	"github.com/google/uuid"
	"github.com/zeebo/blake3"
)

// NewID returns a fresh identifier for trans-unit and group id attributes.
func NewID() string {
	return uuid.New().String()
}

// Checksum returns the private checksum written to crc attributes: the
// first 8 bytes of the BLAKE3 hash of s, hex encoded.
func Checksum(s string) string {
	sum := blake3.Sum256([]byte(s))
	return hex.EncodeToString(sum[:8])
}

package id

import (
	"encoding/base64"
	"fmt"
	mathrand "math/rand/v2"

	"github.com/google/uuid"
)

// EncodedLen is the length of an encoded device ID.
const EncodedLen = 22

// New draws a random device ID from r. The result always carries the UUID v4
// layout: 48 random bits, the version nibble set to 4, 12 random bits, the
// variant bits set to 10, then 62 random bits.
func New(r *mathrand.Rand) uuid.UUID {
	var b [16]byte
	for i := range b {
		b[i] = byte(r.IntN(256))
	}
	// Set version (4) and variant bits per RFC 4122
	b[6] = (b[6] & 0x0f) | 0x40
	b[8] = (b[8] & 0x3f) | 0x80
	return uuid.UUID(b)
}

// Encode returns the canonical encoded form of a device ID: the unpadded
// base64 URL encoding of its 16 raw bytes.
func Encode(id uuid.UUID) string {
	return base64.RawURLEncoding.EncodeToString(id[:])
}

// Decode parses an encoded device ID back into its 128-bit form.
func Decode(s string) (uuid.UUID, error) {
	if len(s) != EncodedLen {
		return uuid.UUID{}, fmt.Errorf("encoded device ID must be %d characters, got %d", EncodedLen, len(s))
	}
	b, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("invalid encoded device ID: %w", err)
	}
	var out uuid.UUID
	copy(out[:], b)
	return out, nil
}

// Package password wraps bcrypt hashing behind a small Hasher type.
//
// Only the first 72 bytes of the UTF-8 plaintext participate in hashing:
// bcrypt ignores everything past that limit, and this package truncates
// explicitly on both the hash and verify paths so the two always agree.
// This silent truncation is a documented quirk inherited from the existing
// credential data, not something to fix here.
package password

import (
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// maxInputBytes is bcrypt's effective input limit.
const maxInputBytes = 72

// DefaultCost is the work factor used when none is configured.
const DefaultCost = 12

// Hasher performs one-way password hashing and verification.
type Hasher struct {
	cost int
	log  zerolog.Logger
}

// NewHasher returns a Hasher with the given bcrypt cost. Costs outside
// bcrypt's supported range fall back to DefaultCost.
func NewHasher(cost int, log zerolog.Logger) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &Hasher{cost: cost, log: log}
}

// Hash generates a salted digest of the plaintext.
func (h *Hasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword(truncate(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches digest. It never returns an
// error: a malformed digest is logged and treated as a mismatch.
func (h *Hasher) Verify(plaintext, digest string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(digest), truncate(plaintext))
	if err == nil {
		return true
	}
	if err != bcrypt.ErrMismatchedHashAndPassword {
		h.log.Error().Err(err).Msg("password verification failed on malformed digest")
	}
	return false
}

func truncate(plaintext string) []byte {
	b := []byte(plaintext)
	if len(b) > maxInputBytes {
		b = b[:maxInputBytes]
	}
	return b
}

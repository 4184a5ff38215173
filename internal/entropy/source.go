// Package entropy supplies the randomness behind crisis draws. Callers
// inject a Source so tests can pin the sequence; production code seeds from
// crypto/rand or uses the random.org-backed Client.
package entropy

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// Source yields uniform integers in [0, n).
type Source interface {
	Intn(n int) int
}

// Seeded is a deterministic Source over math/rand. The same seed always
// produces the same draw sequence.
type Seeded struct {
	rng *rand.Rand
}

// NewSeeded creates a deterministic source from the given seed.
func NewSeeded(seed int64) *Seeded {
	return &Seeded{rng: rand.New(rand.NewSource(seed))}
}

// Intn returns a uniform integer in [0, n). Panics if n <= 0, matching
// math/rand.
func (s *Seeded) Intn(n int) int {
	return s.rng.Intn(n)
}

// NewSeed generates a high-entropy seed using crypto/rand, suitable for
// initializing a Seeded source when determinism is not wanted.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// cryptoFloat generates a uniform float64 in [0, 1) using crypto/rand.
func cryptoFloat() float64 {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		// Should never happen; 0.5 keeps draws in range.
		return 0.5
	}
	// Use only 53 bits for a uniform float64 in [0, 1).
	n := binary.LittleEndian.Uint64(buf[:]) >> 11
	return float64(n) / float64(1<<53)
}

// CryptoIntn returns a uniform integer in [0, n) from crypto/rand, with no
// seeding or state.
func CryptoIntn(n int) int {
	return int(cryptoFloat() * float64(n))
}

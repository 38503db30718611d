package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// NewSeed draws a non-zero seed from crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("failed to read random seed: %w", err)
	}

	seed := int64(binary.LittleEndian.Uint64(b[:]) >> 1)
	if seed == 0 {
		seed = 1
	}

	return seed, nil
}

// NewSource returns a generator for seed, drawing a fresh seed when it is 0.
// The seed actually used is returned so a game can be replayed.
func NewSource(seed int64) (*rand.Rand, int64, error) {
	if seed == 0 {
		var err error
		if seed, err = NewSeed(); err != nil {
			return nil, 0, err
		}
	}

	return rand.New(rand.NewSource(seed)), seed, nil //nolint: gosec // bot moves, not secrets
}

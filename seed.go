package minesweeper

import (
	crand "crypto/rand"
	"encoding/hex"
	"fmt"
	"math/rand/v2"
)

type Seed [32]byte

func GetSeed() Seed {
	var seed Seed
	// crypto/rand.Read never returns an error on supported platforms
	crand.Read(seed[:])
	return seed
}

func (s Seed) String() string {
	return hex.EncodeToString(s[:])
}

func ParseSeed(str string) (Seed, error) {
	var seed Seed

	decoded, err := hex.DecodeString(str)
	if err != nil {
		return seed, fmt.Errorf("%w: %v", ErrInvalidSeed, err)
	}
	if len(decoded) != len(seed) {
		return seed, fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidSeed, len(seed), len(decoded))
	}

	copy(seed[:], decoded)

	return seed, nil
}

func (s Seed) Rand() *rand.Rand {
	return rand.New(rand.NewChaCha8(s))
}

package random

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	mrand "math/rand/v2"
)

// New returns a PCG generator. Seed 0 means seeding from 'crypto/rand',
// any other seed gives a reproducible sequence.
// Will panic if it can't read from 'crypto/rand'.
func New(seed uint64) *mrand.Rand {
	if seed != 0 {
		return mrand.New(mrand.NewPCG(seed, seed))
	}

	var b [16]byte
	if _, err := io.ReadFull(rand.Reader, b[:]); err != nil {
		panic("unexpected error happened when reading from crypto/rand.Reader")
	}

	return mrand.New(mrand.NewPCG(binary.LittleEndian.Uint64(b[:8]), binary.LittleEndian.Uint64(b[8:])))
}

// IntRange returns a uniform value in the closed range [low, high].
func IntRange(r *mrand.Rand, low, high int) int {
	if low > high {
		panic(fmt.Sprintf("invalid range [%d, %d]", low, high))
	}

	return low + r.IntN(high-low+1)
}

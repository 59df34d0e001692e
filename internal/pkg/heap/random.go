package heap

import (
	"fmt"
	"math/rand/v2"

	"heaptree/internal/pkg/random"
)

// NewRandom returns a heap filled by pushing count values drawn uniformly from [low, high].
func NewRandom(count, low, high int, src *rand.Rand) *Heap[int] {
	if count < 0 {
		panic(fmt.Sprintf("negative node count %d", count))
	}

	h := New[int]()
	for range count {
		h.Push(random.IntRange(src, low, high))
	}

	return h
}

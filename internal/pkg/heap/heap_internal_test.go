package heap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBubbleUpIdempotent(t *testing.T) {
	h := New[int]()
	for _, v := range []int{5, 3, 8, 1, 9, 2, 7, 4} {
		h.Push(v)
	}

	for i := 1; i <= h.Len(); i++ {
		require.Zero(t, h.bubbleUp(i), "index %d", i)
	}
}

func TestBubbleUpSwaps(t *testing.T) {
	h := New[int]()
	for _, v := range []int{1, 2, 3, 4, 5, 6, 7} {
		h.Push(v)
	}

	h.store.Append(0)
	require.Equal(t, 3, h.bubbleUp(h.Len()))
	require.True(t, h.Valid())

	// stops below the root, which is equal and not greater
	h.store.Append(0)
	require.Equal(t, 2, h.bubbleUp(h.Len()))
	require.Equal(t, []int{0, 0, 3, 1, 5, 6, 7, 4, 2}, h.Values())
}

func TestViolation(t *testing.T) {
	h := New[int]()
	h.store.Append(1)
	h.store.Append(3)
	h.store.Append(0)

	require.Equal(t, 3, h.violation())
	require.False(t, h.Valid())
}

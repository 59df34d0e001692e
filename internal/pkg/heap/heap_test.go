package heap_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"heaptree/internal/pkg/heap"
	"heaptree/internal/pkg/random"
)

type Int int

func (i Int) Less(o Int) bool {
	return i < o
}

func requireHeapOrder[T int | Int](t *testing.T, h *heap.Heap[T]) {
	t.Helper()
	for i := 2; i <= h.Len(); i++ {
		parent, ok := h.Get(heap.ParentIndex(i))
		require.True(t, ok)
		v, ok := h.Get(i)
		require.True(t, ok)
		require.LessOrEqual(t, parent, v, "node %d is less than its parent", i)
	}
}

func TestHeap(t *testing.T) {
	h := heap.NewLesser[Int]()
	h.Push(2)
	h.Push(1)
	h.Push(3)

	require.Equal(t, 3, h.Len())
	requireHeapOrder(t, h)

	v, ok := h.Pop()
	require.True(t, ok)
	require.EqualValues(t, 1, v)
	require.Equal(t, 2, h.Len())

	h.Push(1)
	for _, want := range []Int{1, 2, 3} {
		v, ok = h.Pop()
		require.True(t, ok)
		require.Equal(t, want, v)
	}

	_, ok = h.Pop()
	require.False(t, ok)
	require.True(t, h.IsEmpty())
}

func TestHeap2(t *testing.T) {
	h := heap.FromSlice([]int{9, 4, 7, 1, 3, 2})

	h.Push(1)

	require.Equal(t, 7, h.Len())
	require.True(t, h.Valid())

	v, ok := h.Pop()
	require.True(t, ok)
	require.EqualValues(t, 1, v)
	require.Equal(t, 6, h.Len())
}

func TestPushKeepsOrder(t *testing.T) {
	r := random.New(42)
	h := heap.New[int]()

	for k := 1; k <= 200; k++ {
		h.Push(random.IntRange(r, -50, 50))

		require.Equal(t, k, h.Len())
		require.False(t, h.IsEmpty())
		requireHeapOrder(t, h)

		root, ok := h.Peek()
		require.True(t, ok)
		for _, v := range h.Values() {
			require.LessOrEqual(t, root, v)
		}
	}
}

func TestPushExample(t *testing.T) {
	h := heap.New[int]()
	for _, v := range []int{5, 3, 8, 1, 9, 2} {
		h.Push(v)
	}

	require.Equal(t, 6, h.Len())
	require.True(t, h.Valid())
	require.ElementsMatch(t, []int{5, 3, 8, 1, 9, 2}, h.Values())

	root, ok := h.Get(1)
	require.True(t, ok)
	require.Equal(t, 1, root)

	// array order, not sorted order
	require.Equal(t, "[1, 3, 2, 5, 9, 8]", h.String())
}

func TestSingle(t *testing.T) {
	h := heap.New[int]()
	h.Push(42)

	require.Equal(t, 1, h.Len())
	v, ok := h.Peek()
	require.True(t, ok)
	require.Equal(t, 42, v)
	require.Equal(t, "[42]", h.String())
}

func TestEmpty(t *testing.T) {
	h := heap.New[int]()

	require.True(t, h.IsEmpty())
	require.Equal(t, "[]", h.String())

	_, ok := h.Peek()
	require.False(t, ok)
	_, ok = h.Get(1)
	require.False(t, ok)
}

func TestGetBounds(t *testing.T) {
	h := heap.New[int]()
	h.Push(3)
	h.Push(1)

	require.Panics(t, func() { h.Get(0) })

	_, ok := h.Get(h.Len() + 1)
	require.False(t, ok)
}

func TestPopDrainsSorted(t *testing.T) {
	h := heap.NewRandom(100, 1, 50, random.New(7))

	prev := 0
	for !h.IsEmpty() {
		v, ok := h.Pop()
		require.True(t, ok)
		require.GreaterOrEqual(t, v, prev)
		prev = v
		require.True(t, h.Valid())
	}
}

func TestNewFunc(t *testing.T) {
	h := heap.NewFunc(func(a, b string) bool { return len(a) < len(b) })
	h.Push("ccc")
	h.Push("a")
	h.Push("bb")

	v, ok := h.Peek()
	require.True(t, ok)
	require.Equal(t, "a", v)

	require.Panics(t, func() { heap.NewFunc[int](nil) })
}

func TestNewRandom(t *testing.T) {
	h := heap.NewRandom(20, 1, 50, random.New(1))

	require.Equal(t, 20, h.Len())
	require.True(t, h.Valid())
	for _, v := range h.Values() {
		require.GreaterOrEqual(t, v, 1)
		require.LessOrEqual(t, v, 50)
	}

	// same seed, same heap
	require.Equal(t, h.Values(), heap.NewRandom(20, 1, 50, random.New(1)).Values())

	require.Equal(t, 0, heap.NewRandom(0, 1, 50, random.New(1)).Len())
	require.Panics(t, func() { heap.NewRandom(-1, 1, 50, random.New(1)) })
	require.Panics(t, func() { heap.NewRandom(1, 5, 4, random.New(1)) })
}

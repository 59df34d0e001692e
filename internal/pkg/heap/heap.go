// Package heap provides an implementation of a binary heap.
// A binary heap (binary min-heap) is a tree with the property that each node
// is the minimum-valued node in its subtree.
package heap

import (
	"cmp"

	"github.com/negrel/assert"
)

type Lesser[T any] interface {
	Less(b T) bool
}

// Heap implements a binary min-heap on top of a Store.
// less must be a strict total order, it is not validated.
type Heap[T any] struct {
	store *Store[T]
	less  func(a, b T) bool
}

// New returns a new heap ordered by the natural order of T.
func New[T cmp.Ordered]() *Heap[T] {
	return NewFunc(cmp.Less[T])
}

// NewFunc returns a new heap with the given less function.
func NewFunc[T any](less func(a, b T) bool) *Heap[T] {
	if less == nil {
		panic("missing less function")
	}

	return &Heap[T]{store: NewStore[T](), less: less}
}

// NewLesser returns a new heap for types that know how to compare themselves.
func NewLesser[T Lesser[T]]() *Heap[T] {
	return NewFunc(func(a, b T) bool { return a.Less(b) })
}

// FromSlice returns a new heap with the given initial data.
// The `data` is not copied and used as the inside array.
func FromSlice[T cmp.Ordered](data []T) *Heap[T] {
	h := &Heap[T]{store: &Store[T]{data: data}, less: cmp.Less[T]}
	for i := len(data) / 2; i >= 1; i-- {
		h.down(i)
	}

	h.check()

	return h
}

// Push pushes the given element onto the heap.
func (h *Heap[T]) Push(x T) {
	h.store.Append(x)
	h.bubbleUp(h.store.Len())

	h.check()
}

// Pop removes and returns the minimum element from the heap.
func (h *Heap[T]) Pop() (T, bool) {
	n := h.store.Len()
	if n == 0 {
		var zero T
		return zero, false
	}

	h.store.Swap(1, n)
	x, _ := h.store.RemoveLast()
	h.down(1)

	h.check()

	return x, true
}

// Peek returns the minimum element from the heap without removing it.
func (h *Heap[T]) Peek() (T, bool) {
	if h.store.IsEmpty() {
		var zero T
		return zero, false
	}

	return h.store.Get(1)
}

// Len returns the number of elements in the heap.
func (h *Heap[T]) Len() int {
	return h.store.Len()
}

func (h *Heap[T]) IsEmpty() bool {
	return h.store.IsEmpty()
}

// Get returns the element at tree index i, see Store.Get.
func (h *Heap[T]) Get(i int) (T, bool) {
	return h.store.Get(i)
}

// Values returns the elements in array order, not sorted order.
func (h *Heap[T]) Values() []T {
	return h.store.Values()
}

func (h *Heap[T]) String() string {
	return h.store.String()
}

// Valid reports whether every node is not less than its parent.
func (h *Heap[T]) Valid() bool {
	return h.violation() == 0
}

// violation returns the first tree index that is less than its parent, or 0.
func (h *Heap[T]) violation() int {
	d := h.store.data
	for i := 2; i <= len(d); i++ {
		if h.less(d[i-1], d[ParentIndex(i)-1]) {
			return i
		}
	}

	return 0
}

func (h *Heap[T]) check() {
	if checkInvariant {
		assert.Equal(h.violation(), 0)
	}
}

// bubbleUp moves the node at tree index i towards the root until its parent
// is not greater. It returns how many swaps it made.
func (h *Heap[T]) bubbleUp(i int) int {
	swaps := 0
	for h.store.HasParent(i) {
		parent := ParentIndex(i)
		if !h.less(h.store.data[i-1], h.store.data[parent-1]) {
			break
		}

		h.store.Swap(i, parent)
		i = parent
		swaps++
	}

	return swaps
}

func (h *Heap[T]) down(i int) {
	for h.store.HasLeftChild(i) {
		// find the smallest child
		j := LeftChildIndex(i)
		if h.store.HasRightChild(i) && h.less(h.store.data[j], h.store.data[j-1]) {
			j = RightChildIndex(i)
		}

		if !h.less(h.store.data[j-1], h.store.data[i-1]) {
			break
		}

		h.store.Swap(i, j)
		i = j
	}
}

package heap

import (
	"fmt"
	"strings"
)

// Store is a growable sequence addressed by 1-based tree index.
// It doesn't enforce any ordering, see Heap for that.
//
// Tree index i is kept at data[i-1], so there is no placeholder for index 0.
type Store[T any] struct {
	data []T
}

func NewStore[T any]() *Store[T] {
	return &Store[T]{data: make([]T, 0)}
}

func (s *Store[T]) Len() int {
	return len(s.data)
}

func (s *Store[T]) IsEmpty() bool {
	return len(s.data) == 0
}

// Get returns the element at tree index i, and false if i is past the last node.
// panic if i < 1.
func (s *Store[T]) Get(i int) (T, bool) {
	checkIndex(i)
	if i > len(s.data) {
		var zero T
		return zero, false
	}

	return s.data[i-1], true
}

// Ptr is the mutable version of Get, it returns nil if i is past the last node.
// panic if i < 1.
func (s *Store[T]) Ptr(i int) *T {
	checkIndex(i)
	if i > len(s.data) {
		return nil
	}

	return &s.data[i-1]
}

func (s *Store[T]) Parent(i int) (T, bool) {
	if !s.HasParent(i) {
		var zero T
		return zero, false
	}

	return s.Get(ParentIndex(i))
}

func (s *Store[T]) LeftChild(i int) (T, bool) {
	return s.Get(LeftChildIndex(i))
}

func (s *Store[T]) RightChild(i int) (T, bool) {
	return s.Get(RightChildIndex(i))
}

// Last returns the most recently appended element.
func (s *Store[T]) Last() (T, bool) {
	if len(s.data) == 0 {
		var zero T
		return zero, false
	}

	return s.data[len(s.data)-1], true
}

func (s *Store[T]) Append(v T) {
	s.data = append(s.data, v)
}

func (s *Store[T]) RemoveLast() (T, bool) {
	var zero T
	if len(s.data) == 0 {
		return zero, false
	}

	n := len(s.data) - 1
	v := s.data[n]
	s.data[n] = zero // drop reference held by backing array
	s.data = s.data[:n]

	return v, true
}

// Swap exchanges the elements at tree index a and b.
// panic if either index is out of range.
func (s *Store[T]) Swap(a, b int) {
	checkIndex(a)
	checkIndex(b)
	s.data[a-1], s.data[b-1] = s.data[b-1], s.data[a-1]
}

func (s *Store[T]) HasParent(i int) bool {
	return i > 1
}

func (s *Store[T]) HasLeftChild(i int) bool {
	return LeftChildIndex(i) <= len(s.data)
}

func (s *Store[T]) HasRightChild(i int) bool {
	return RightChildIndex(i) <= len(s.data)
}

// Values returns a copy of the elements in array order.
func (s *Store[T]) Values() []T {
	out := make([]T, len(s.data))
	copy(out, s.data)

	return out
}

func (s *Store[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range s.data {
		if i != 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, v)
	}
	b.WriteByte(']')

	return b.String()
}

func checkIndex(i int) {
	if i < 1 {
		panic(fmt.Sprintf("heap: tree index %d out of range, tree index starts at 1", i))
	}
}

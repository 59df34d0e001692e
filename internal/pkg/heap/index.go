package heap

// Tree indexes are 1-based: the root is 1, and node i has children 2i and 2i+1.

func ParentIndex(i int) int {
	return i / 2
}

func LeftChildIndex(i int) int {
	return i * 2
}

func RightChildIndex(i int) int {
	return LeftChildIndex(i) + 1
}

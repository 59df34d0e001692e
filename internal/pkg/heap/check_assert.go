//go:build assert

// re-check heap order after every mutation, O(n) per call

package heap

const checkInvariant = true

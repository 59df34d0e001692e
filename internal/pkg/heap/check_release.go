//go:build !assert

package heap

const checkInvariant = false

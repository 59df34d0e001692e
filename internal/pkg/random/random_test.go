package random_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"heaptree/internal/pkg/random"
)

func TestIntRange(t *testing.T) {
	t.Parallel()

	r := random.New(0)
	seen := map[int]bool{}
	for range 1000 {
		v := random.IntRange(r, 1, 5)
		require.GreaterOrEqual(t, v, 1)
		require.LessOrEqual(t, v, 5)
		seen[v] = true
	}

	require.Len(t, seen, 5)
	require.Equal(t, 3, random.IntRange(r, 3, 3))
	require.Panics(t, func() { random.IntRange(r, 2, 1) })
}

func TestSeed(t *testing.T) {
	t.Parallel()

	a, b := random.New(9), random.New(9)
	for range 10 {
		require.Equal(t, a.Uint64(), b.Uint64())
	}
}

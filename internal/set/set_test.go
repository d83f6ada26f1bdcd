package set

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSet_Insert(t *testing.T) {
	var s Set[int]

	require.True(t, s.Insert(1))
	require.True(t, s.Insert(2))
	require.False(t, s.Insert(1))

	require.Equal(t, 2, s.Len())
	require.True(t, s.Has(1))
	require.False(t, s.Has(3))

	values := slices.Sorted(s.Values())
	require.Equal(t, []int{1, 2}, values)
}

func TestSet_HasAll(t *testing.T) {
	s := Of("a", "b", "c")

	require.True(t, s.HasAll("a", "c"))
	require.True(t, s.HasAll())
	require.False(t, s.HasAll("a", "d"))
}

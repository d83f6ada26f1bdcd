package rawslice

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRawSlice_Get(t *testing.T) {
	values := []int{10, 20, 30}
	s := FromSlice[Immutable](values)

	require.Equal(t, 3, s.Len())
	require.False(t, s.IsMutable())

	for idx := range values {
		require.Same(t, &values[idx], s.Get(idx))
	}

	require.Panics(t, func() { s.Get(3) })
	require.Panics(t, func() { s.Get(-1) })
}

func TestRawSlice_TryGet(t *testing.T) {
	values := []string{"a", "b"}
	s := FromSlice[Immutable](values)

	ptr, ok := s.TryGet(1)
	require.True(t, ok)
	require.Same(t, s.Get(1), ptr)

	ptr, ok = s.TryGet(2)
	require.False(t, ok)
	require.Nil(t, ptr)
}

func TestRawSlice_Mutability(t *testing.T) {
	values := []int{1, 2, 3}

	mutable := FromSlice[Mutable](values)
	*mutable.GetMut(1) = 5
	require.Equal(t, []int{1, 5, 3}, values)

	ptr, ok := mutable.TryGetMut(2)
	require.True(t, ok)
	*ptr = 7
	require.Equal(t, []int{1, 5, 7}, values)

	immutable := FromSlice[Immutable](values)
	require.Panics(t, func() { immutable.GetMut(0) })
	require.Panics(t, func() { immutable.TryGetMut(0) })
}

func TestRawSlice_SplitAt(t *testing.T) {
	values := []int{1, 2, 3, 4, 5}
	s := FromSlice[Mutable](values)

	left, right := s.SplitAt(2)
	require.Equal(t, []int{1, 2}, left.Unsafe())
	require.Equal(t, []int{3, 4, 5}, right.Unsafe())
	require.True(t, left.IsMutable())

	// halves are disjoint
	*left.GetMut(1) = 20
	*right.GetMut(0) = 30
	require.Equal(t, []int{1, 20, 30, 4, 5}, values)
	require.Panics(t, func() { left.Get(2) })

	all, empty := s.SplitAt(5)
	require.Equal(t, 5, all.Len())
	require.Equal(t, 0, empty.Len())

	require.Panics(t, func() { s.SplitAt(6) })
}

func TestRawSlice_Empty(t *testing.T) {
	s := FromSlice[Immutable]([]float64(nil))

	require.Equal(t, 0, s.Len())
	require.Empty(t, s.Unsafe())

	_, ok := s.TryGet(0)
	require.False(t, ok)

	it := s.Iter()
	_, ok = it.Next()
	require.False(t, ok)

	require.Panics(t, func() { From[Immutable, int](nil, 1) })
}

func TestRawSlice_Iter(t *testing.T) {
	values := []int{1, 2, 3}
	it := FromSlice[Immutable](values).Iter()

	var collected []int
	for {
		value, ok := it.Next()
		if !ok {
			break
		}

		collected = append(collected, *value)
	}

	require.Equal(t, values, collected)
	require.Equal(t, 0, it.Remaining())
}

func TestRawSlice_All(t *testing.T) {
	values := []int{4, 5, 6}

	var sum, indices int
	for idx, value := range FromSlice[Immutable](values).All() {
		sum += *value
		indices += idx
	}

	require.Equal(t, 15, sum)
	require.Equal(t, 3, indices)
}

func BenchmarkRawSlice_Get(b *testing.B) {
	values := make([]int, 1000)
	s := FromSlice[Immutable](values)

	var sum int
	for b.Loop() {
		for idx := range s.Len() {
			sum += *s.Get(idx)
		}
	}

	_ = sum
}

package typedpool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPool_PutResets(t *testing.T) {
	pool := New[[]int]()

	scratch := pool.Get()
	require.NotNil(t, scratch)

	*scratch = append(*scratch, 1, 2, 3)

	pool.Put(scratch, func(s *[]int) { *s = (*s)[:0] })
	require.Empty(t, *scratch)
}

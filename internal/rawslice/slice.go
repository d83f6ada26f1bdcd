// Package rawslice provides unchecked views over contiguous memory.
//
// A RawSlice does not own the memory it points to. It is valid only as long as the
// buffer it was created from is not reallocated. The mutability marker documents
// whether a view may be written through. It does not stop anybody from creating a
// second, aliasing view over the same memory.
package rawslice

import (
	"fmt"
	"iter"
	"unsafe"

	"github.com/oliverbestmann/soa/internal/assert"
)

// Mutability is implemented by the two marker types Immutable and Mutable only.
type Mutability interface {
	mutable() bool
}

type Immutable struct{}

type Mutable struct{}

func (Immutable) mutable() bool { return false }

func (Mutable) mutable() bool { return true }

type RawSlice[M Mutability, T any] struct {
	start *T
	len   int
}

type Slice[T any] = RawSlice[Immutable, T]

type SliceMut[T any] = RawSlice[Mutable, T]

// From creates a view of length elements starting at start.
func From[M Mutability, T any](start *T, length int) RawSlice[M, T] {
	assert.That(length >= 0, "negative slice length %d", length)
	assert.That(start != nil || length == 0, "nil pointer with non-zero length %d", length)

	return RawSlice[M, T]{start: start, len: length}
}

// FromSlice creates a view over the current contents of values.
func FromSlice[M Mutability, T any](values []T) RawSlice[M, T] {
	return From[M](unsafe.SliceData(values), len(values))
}

func (s RawSlice[M, T]) Len() int {
	return s.len
}

func (s RawSlice[M, T]) IsMutable() bool {
	var marker M
	return marker.mutable()
}

// GetUnchecked returns the address of the element at idx. The caller
// must have checked that idx is within bounds.
func (s RawSlice[M, T]) GetUnchecked(idx int) *T {
	return (*T)(unsafe.Add(unsafe.Pointer(s.start), uintptr(idx)*unsafe.Sizeof(*s.start)))
}

// Get returns the address of the element at idx and panics if idx is out of bounds.
func (s RawSlice[M, T]) Get(idx int) *T {
	assert.InBounds(idx, s.len)
	return s.GetUnchecked(idx)
}

func (s RawSlice[M, T]) TryGet(idx int) (*T, bool) {
	if idx < 0 || idx >= s.len {
		return nil, false
	}

	return s.GetUnchecked(idx), true
}

// GetMut is like Get, but fails if the view is not Mutable.
func (s RawSlice[M, T]) GetMut(idx int) *T {
	s.assertMutable()
	return s.Get(idx)
}

func (s RawSlice[M, T]) TryGetMut(idx int) (*T, bool) {
	s.assertMutable()
	return s.TryGet(idx)
}

// SplitAt partitions the view into [0, idx) and [idx, len). The two halves
// do not overlap and keep the mutability of s.
func (s RawSlice[M, T]) SplitAt(idx int) (RawSlice[M, T], RawSlice[M, T]) {
	if idx < 0 || idx > s.len {
		panic(fmt.Sprintf("split index %d out of range for length %d", idx, s.len))
	}

	left := RawSlice[M, T]{start: s.start, len: idx}

	if idx == s.len {
		// do not point past the end of the buffer
		return left, RawSlice[M, T]{}
	}

	right := RawSlice[M, T]{start: s.GetUnchecked(idx), len: s.len - idx}
	return left, right
}

// Unsafe returns the memory of the view as a regular go slice. The
// slice must not be written to if the view is Immutable.
func (s RawSlice[M, T]) Unsafe() []T {
	return unsafe.Slice(s.start, s.len)
}

func (s RawSlice[M, T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for idx := range s.len {
			if !yield(idx, s.GetUnchecked(idx)) {
				return
			}
		}
	}
}

// Iter returns a pull style iterator over the elements of the view.
func (s RawSlice[M, T]) Iter() Iter[M, T] {
	return Iter[M, T]{slice: s}
}

func (s RawSlice[M, T]) String() string {
	var marker M
	return fmt.Sprintf("RawSlice[%T, %T](len=%d)", marker, *new(T), s.len)
}

func (s RawSlice[M, T]) assertMutable() {
	if !s.IsMutable() {
		panic(fmt.Sprintf("write access through immutable view of %T", *new(T)))
	}
}

type Iter[M Mutability, T any] struct {
	slice RawSlice[M, T]
	pos   int
}

func (it *Iter[M, T]) Next() (*T, bool) {
	if it.pos >= it.slice.len {
		return nil, false
	}

	ptr := it.slice.GetUnchecked(it.pos)
	it.pos += 1

	return ptr, true
}

// Remaining returns the number of elements not yet produced by Next.
func (it *Iter[M, T]) Remaining() int {
	return it.slice.len - it.pos
}

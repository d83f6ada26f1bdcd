package column

import (
	"fmt"
	"reflect"
	"sync/atomic"

	"github.com/oliverbestmann/soa/internal/rawslice"
)

// Erased is the type erased view on a Column[T].
type Erased interface {
	Len() int
	IsEmpty() bool

	// Clone creates a new, empty column of the same element type.
	// It must only be called on an empty column.
	Clone() Erased

	ElementType() reflect.Type

	// Borrowed reports if any view returned by Borrow or BorrowMut
	// has not yet been released.
	Borrowed() bool
}

const exclusive = -1

// Column is an append only buffer of values of type T. Views on the buffer
// are tracked at runtime: any number of shared borrows or a single exclusive borrow may
// be active at the same time. Pushing a value while a borrow is active fails, as the push
// might move the buffer underneath the view.
type Column[T any] struct {
	values []T

	// number of active shared borrows, or exclusive if
	// the column is borrowed for writing.
	borrows atomic.Int32
}

var _ Erased = &Column[int]{}

func New[T any]() *Column[T] {
	return &Column[T]{}
}

func (c *Column[T]) Push(value T) {
	if state := c.borrows.Load(); state != 0 {
		panic(fmt.Sprintf("push into column %s while borrowed (%s)", c.ElementType(), describe(state)))
	}

	c.values = append(c.values, value)
}

func (c *Column[T]) Len() int {
	return len(c.values)
}

func (c *Column[T]) IsEmpty() bool {
	return len(c.values) == 0
}

func (c *Column[T]) Clone() Erased {
	if !c.IsEmpty() {
		panic(fmt.Sprintf("clone of non-empty column %s with %d values", c.ElementType(), len(c.values)))
	}

	return New[T]()
}

func (c *Column[T]) ElementType() reflect.Type {
	return reflect.TypeFor[T]()
}

func (c *Column[T]) Borrowed() bool {
	return c.borrows.Load() != 0
}

// AsSlice exposes the current contents without tracking the borrow.
// The view must not be kept across a Push.
func (c *Column[T]) AsSlice() rawslice.Slice[T] {
	return rawslice.FromSlice[rawslice.Immutable](c.values)
}

// AsMutSlice is like AsSlice, but returns a mutable view.
func (c *Column[T]) AsMutSlice() rawslice.SliceMut[T] {
	return rawslice.FromSlice[rawslice.Mutable](c.values)
}

// Borrow returns a shared view on the columns contents. The returned function
// must be called exactly once to release the borrow.
func (c *Column[T]) Borrow() (rawslice.Slice[T], func()) {
	for {
		state := c.borrows.Load()
		if state == exclusive {
			panic(fmt.Sprintf("shared borrow of column %s conflicts with %s", c.ElementType(), describe(state)))
		}

		if c.borrows.CompareAndSwap(state, state+1) {
			break
		}
	}

	return c.AsSlice(), func() { c.borrows.Add(-1) }
}

// BorrowMut returns an exclusive view on the columns contents. The returned function
// must be called exactly once to release the borrow.
func (c *Column[T]) BorrowMut() (rawslice.SliceMut[T], func()) {
	if !c.borrows.CompareAndSwap(0, exclusive) {
		state := c.borrows.Load()
		panic(fmt.Sprintf("exclusive borrow of column %s conflicts with %s", c.ElementType(), describe(state)))
	}

	return c.AsMutSlice(), func() { c.borrows.Store(0) }
}

func describe(state int32) string {
	switch {
	case state == exclusive:
		return "an exclusive borrow"
	case state == 1:
		return "1 shared borrow"
	default:
		return fmt.Sprintf("%d shared borrows", state)
	}
}

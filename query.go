package soa

import (
	"fmt"
	"iter"
	"slices"

	"github.com/oliverbestmann/soa/internal/storage"
)

// Flavor decides how a query matches the component types of a block.
type Flavor uint8

const (
	// MatchAll matches blocks that contain at least the queried types.
	MatchAll Flavor = iota

	// MatchExact matches blocks that contain the queried types and nothing else.
	MatchExact
)

func (f Flavor) String() string {
	switch f {
	case MatchAll:
		return "All"
	case MatchExact:
		return "Exact"
	default:
		return fmt.Sprintf("Flavor(%d)", uint8(f))
	}
}

// Fetch describes access to the column of a single component type.
// An item of type I is produced per entity. Use Read or Write to create a Fetch.
type Fetch[I any] struct {
	componentType *storage.ComponentType
	mutable       bool

	// open borrows the column in the given block. If the block does not contain
	// the component, ok is false.
	open func(block *storage.Block) (next func() (I, bool), release func(), ok bool)
}

// Mutable returns true if the Fetch was created using Write.
func (f Fetch[I]) Mutable() bool {
	return f.mutable
}

func (f Fetch[I]) String() string {
	if f.mutable {
		return fmt.Sprintf("Write[%s]", f.componentType)
	}

	return fmt.Sprintf("Read[%s]", f.componentType)
}

// Read fetches a copy of the value of component C.
func Read[C any]() Fetch[C] {
	return Fetch[C]{
		componentType: storage.ComponentTypeOf[C](),

		open: func(block *storage.Block) (func() (C, bool), func(), bool) {
			column, ok := storage.ColumnOf[C](block)
			if !ok {
				return nil, nil, false
			}

			slice, release := column.Borrow()
			it := slice.Iter()

			next := func() (C, bool) {
				ptr, ok := it.Next()
				if !ok {
					var zero C
					return zero, false
				}

				return *ptr, true
			}

			return next, release, true
		},
	}
}

// Write fetches a pointer to the value of component C. The pointer
// must not be used after the iteration step that produced it.
func Write[C any]() Fetch[*C] {
	return Fetch[*C]{
		componentType: storage.ComponentTypeOf[C](),
		mutable:       true,

		open: func(block *storage.Block) (func() (*C, bool), func(), bool) {
			column, ok := storage.ColumnOf[C](block)
			if !ok {
				return nil, nil, false
			}

			slice, release := column.BorrowMut()
			it := slice.Iter()

			return it.Next, release, true
		},
	}
}

// matcher decides which blocks a query visits.
type matcher struct {
	flavor Flavor
	types  []*storage.ComponentType
}

func newMatcher(flavor Flavor, types ...*storage.ComponentType) matcher {
	for idx, ty := range types {
		if slices.Contains(types[:idx], ty) {
			panic(fmt.Sprintf("duplicate component type %s in query", ty))
		}
	}

	return matcher{flavor: flavor, types: types}
}

func (m matcher) matches(block *storage.Block) bool {
	if m.flavor == MatchExact && block.TypeCount() != len(m.types) {
		return false
	}

	return m.contained(block)
}

// contained returns true if the block holds all types of the matcher, ignoring the flavor.
func (m matcher) contained(block *storage.Block) bool {
	for _, ty := range m.types {
		if !block.ContainsType(ty) {
			return false
		}
	}

	return true
}

func (m matcher) String() string {
	return fmt.Sprintf("%s%v", m.flavor, m.types)
}

// count sums up the entities of all matching blocks.
func count(w *World, m matcher) int {
	var n int
	for block := range w.matching(m) {
		n += block.Len()
	}

	return n
}

// concat lazily chains the per block iterators produced by query.
func concat[R any](blocks iter.Seq[*storage.Block], query func(*storage.Block) (iter.Seq[R], bool)) iter.Seq[R] {
	return func(yield func(R) bool) {
		for block := range blocks {
			items, ok := query(block)
			if !ok {
				continue
			}

			for item := range items {
				if !yield(item) {
					return
				}
			}
		}
	}
}

package soa

import (
	"fmt"
	"iter"
	"slices"

	"github.com/oliverbestmann/soa/internal/storage"
)

// AppendComponents is implemented by the tuple types Tuple1 to Tuple4. A tuple
// describes both the set of component types of an entity and its component values.
type AppendComponents interface {
	// Arity returns the number of components in the tuple.
	Arity() int

	componentTypes() []*storage.ComponentType
	buildStorage() storage.Builder
	appendTo(block *storage.Block)
}

// AddEntity adds one entity per tuple to the world. All entities are added to the block
// that holds exactly the component types of T. The block is created if it does not exist yet.
func AddEntity[T AppendComponents](w *World, items ...T) {
	AddEntitySeq(w, slices.Values(items))
}

// AddEntitySeq is like AddEntity, but consumes the tuples from a sequence.
func AddEntitySeq[T AppendComponents](w *World, items iter.Seq[T]) {
	var list T

	block := w.blockFor(list.componentTypes(), func() *storage.Block {
		return list.buildStorage().Access()
	})

	appendComponents(items, block)
}

// isMatch returns true if the block holds exactly the component types of T.
func isMatch[T AppendComponents](block *storage.Block) bool {
	var list T
	return block.HasExactly(list.componentTypes())
}

// appendComponents pushes every tuple into the correspondingly typed columns of block.
func appendComponents[T AppendComponents](items iter.Seq[T], block *storage.Block) {
	if !isMatch[T](block) {
		var list T
		panic(fmt.Sprintf("can not append %T to %s", list, block))
	}

	for item := range items {
		// items might come from a query over this very block
		if block.Borrowed() {
			panic(fmt.Sprintf("can not append to %s while it is being queried", block))
		}

		item.appendTo(block)
	}

	block.AssertInvariants()
}

package soa

import (
	"iter"
	"log/slog"

	"github.com/oliverbestmann/soa/internal/storage"
	"github.com/oliverbestmann/soa/internal/typedpool"
)

// World holds all storage blocks, in the order they were created.
// At most one block exists per set of component types.
type World struct {
	noCopy noCopy

	blocks []*storage.Block

	// blocks grouped by the hash of their types
	lookup map[storage.ArchetypeId][]*storage.Block
}

// NewWorld creates a new empty world.
func NewWorld() *World {
	return &World{
		lookup: map[storage.ArchetypeId][]*storage.Block{},
	}
}

// BlockCount returns the number of storage blocks in the world.
func (w *World) BlockCount() int {
	return len(w.blocks)
}

// EntityCount returns the number of entities across all blocks.
func (w *World) EntityCount() int {
	var count int
	for _, block := range w.blocks {
		count += block.Len()
	}

	return count
}

// BlockInfo describes a single storage block.
type BlockInfo struct {
	// Names of the component types, ordered by registration of the type.
	Types []string

	// Number of entities in the block
	Len int
}

// Blocks describes all blocks of the world in creation order.
func (w *World) Blocks() []BlockInfo {
	infos := make([]BlockInfo, 0, len(w.blocks))

	for _, block := range w.blocks {
		var types []string
		for _, ty := range block.Types() {
			types = append(types, ty.String())
		}

		infos = append(infos, BlockInfo{Types: types, Len: block.Len()})
	}

	return infos
}

// blockFor finds the block holding exactly the given types. If no such block exists,
// a new one is created using build.
func (w *World) blockFor(types []*storage.ComponentType, build func() *storage.Block) *storage.Block {
	id, _ := storage.ArchetypeIdOf(types)

	for _, block := range w.lookup[id] {
		if block.HasExactly(types) {
			return block
		}
	}

	block := build()

	w.blocks = append(w.blocks, block)
	w.lookup[id] = append(w.lookup[id], block)

	slog.Debug(
		"New storage block created",
		slog.String("block", block.String()),
		slog.Int("blocks", len(w.blocks)),
	)

	return block
}

var blockScratch = typedpool.New[[]*storage.Block]()

func resetBlocks(blocks *[]*storage.Block) {
	clear(*blocks)
	*blocks = (*blocks)[:0]
}

// matching returns the blocks accepted by the matcher, in creation order.
// The blocks are selected at the time iteration starts.
func (w *World) matching(m matcher) iter.Seq[*storage.Block] {
	return func(yield func(*storage.Block) bool) {
		// collect into a pooled scratch buffer to minimize allocations
		scratch := blockScratch.Get()
		defer blockScratch.Put(scratch, resetBlocks)

		for _, block := range w.blocks {
			if m.matches(block) {
				*scratch = append(*scratch, block)
			}
		}

		for _, block := range *scratch {
			if !yield(block) {
				return
			}
		}
	}
}

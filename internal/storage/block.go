package storage

import (
	"fmt"
	"strings"

	"github.com/oliverbestmann/soa/internal/column"
	"github.com/oliverbestmann/soa/internal/rawslice"
	"github.com/oliverbestmann/soa/internal/set"
)

// Block stores all entities that share exactly the same set of component types.
// Each component type is stored in its own column. Row i of every column
// belongs to the entity at position i.
type Block struct {
	Id ArchetypeId

	// registered types, sorted by id
	types   []*ComponentType
	typeSet set.Set[*ComponentType]

	columns map[*ComponentType]column.Erased
}

func (b *Block) String() string {
	var value strings.Builder

	value.WriteString("Block(")
	for idx, ty := range b.types {
		if idx > 0 {
			value.WriteString(", ")
		}

		value.WriteString(ty.String())
	}

	value.WriteString(")")

	return value.String()
}

// Types returns the registered component types, ordered by their id.
// The returned slice must not be modified.
func (b *Block) Types() []*ComponentType {
	return b.types
}

func (b *Block) TypeCount() int {
	return b.typeSet.Len()
}

func (b *Block) ContainsType(componentType *ComponentType) bool {
	return b.typeSet.Has(componentType)
}

// HasExactly returns true if the blocks type set is equal to the given types.
func (b *Block) HasExactly(types []*ComponentType) bool {
	return len(types) == b.typeSet.Len() && b.typeSet.HasAll(types...)
}

// Len returns the number of entities in this block.
func (b *Block) Len() int {
	if len(b.types) == 0 {
		return 0
	}

	return b.columns[b.types[0]].Len()
}

// Borrowed reports if any column of the block is currently borrowed.
func (b *Block) Borrowed() bool {
	for _, column := range b.columns {
		if column.Borrowed() {
			return true
		}
	}

	return false
}

func (b *Block) AssertInvariants() {
	if len(b.columns) != b.typeSet.Len() {
		panic(fmt.Sprintf("%s: %d columns for %d types", b, len(b.columns), b.typeSet.Len()))
	}

	entityCount := b.Len()

	for _, ty := range b.types {
		column, ok := b.columns[ty]
		if !ok {
			panic(fmt.Sprintf("%s: no column for type %s", b, ty))
		}

		if column.Len() != entityCount {
			panic(fmt.Sprintf("%s: expected %d values in column %s, got %d", b, entityCount, ty, column.Len()))
		}
	}
}

func Contains[C any](b *Block) bool {
	return b.ContainsType(ComponentTypeOf[C]())
}

// ColumnOf returns the column holding values of type C.
func ColumnOf[C any](b *Block) (*column.Column[C], bool) {
	componentType := ComponentTypeOf[C]()

	erased, ok := b.columns[componentType]
	if !ok {
		return nil, false
	}

	typed, ok := erased.(*column.Column[C])
	if !ok {
		panic(fmt.Sprintf("%s: column for %s holds values of type %s", b, componentType, erased.ElementType()))
	}

	return typed, true
}

// Component returns a view on the values of type C. The view is not tracked
// and must not be used after the next push into the block.
func Component[C any](b *Block) (rawslice.Slice[C], bool) {
	column, ok := ColumnOf[C](b)
	if !ok {
		return rawslice.Slice[C]{}, false
	}

	return column.AsSlice(), true
}

// ComponentMut is like Component, but returns a mutable view. Callers must not request
// the same type mutably and immutably at the same time.
func ComponentMut[C any](b *Block) (rawslice.SliceMut[C], bool) {
	column, ok := ColumnOf[C](b)
	if !ok {
		return rawslice.SliceMut[C]{}, false
	}

	return column.AsMutSlice(), true
}

// Push appends a value to the column of type C. The caller is responsible to push
// exactly one value into every column of the block for each entity added.
func Push[C any](b *Block, value C) {
	column, ok := ColumnOf[C](b)
	if !ok {
		panic(fmt.Sprintf("unexpected component of type %s for %s", ComponentTypeOf[C](), b))
	}

	column.Push(value)
}

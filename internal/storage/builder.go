package storage

import (
	"fmt"
	"slices"

	"github.com/oliverbestmann/soa/internal/column"
	"github.com/oliverbestmann/soa/internal/set"
)

// Builder collects the component types of a new Block. A Builder is
// immutable, every registration returns a new Builder.
type Builder struct {
	types []*ComponentType
}

// Empty returns a Builder without any registered component types.
func Empty() Builder {
	return Builder{}
}

// Register returns a new Builder that additionally registers component type C.
func Register[C any](b Builder) Builder {
	return b.RegisterType(ComponentTypeOf[C]())
}

func (b Builder) RegisterType(componentType *ComponentType) Builder {
	if slices.Contains(b.types, componentType) {
		panic(fmt.Sprintf("component type %s registered twice", componentType))
	}

	types := make([]*ComponentType, 0, len(b.types)+1)
	types = append(types, b.types...)
	types = append(types, componentType)

	return Builder{types: types}
}

// Types returns the types registered so far, in registration order.
func (b Builder) Types() []*ComponentType {
	return b.types
}

// Access allocates the block with an empty column for every registered type.
func (b Builder) Access() *Block {
	id, sortedTypes := ArchetypeIdOf(b.types)

	columns := make(map[*ComponentType]column.Erased, len(sortedTypes))
	for _, ty := range sortedTypes {
		columns[ty] = ty.MakeColumn()
	}

	return &Block{
		Id:      id,
		types:   sortedTypes,
		typeSet: set.Of(sortedTypes...),
		columns: columns,
	}
}

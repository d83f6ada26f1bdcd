/*
Package soa is an in-memory entity-component store.

Entities are grouped into storage blocks by the exact set of component types they carry.
Every component type of a block is stored in its own contiguous column, and row i of all
columns together make up entity i of the block. Entities do not have an id beyond that position.

Entities are added as tuples of component values. The first tuple of a new combination of
types creates a new block:

	world := soa.NewWorld()

	soa.AddEntity(world,
		soa.MakeTuple2(Position{X: 1}, Velocity{X: 2}),
		soa.MakeTuple2(Position{X: 3}, Velocity{X: 4}),
	)

Queries describe the component types to read or write. An All query matches every block
containing the requested types, an Exact query only matches blocks holding no other types:

	query := soa.All2(soa.Write[Position](), soa.Read[Velocity]())

	for item := range query.Iter(world) {
		item.V1.X += item.V2.X
	}

Blocks are visited in the order they were created, entities within a block in the order they
were added.

Columns are borrowed while a query iterates over them. Reading a column from two queries at the same
time is fine, but writing a column that is already borrowed, or adding entities to a block that is
currently being iterated, panics. A World must not be modified from multiple goroutines concurrently.
*/
package soa

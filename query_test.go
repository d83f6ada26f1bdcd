package soa

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQuery_AllAndExact(t *testing.T) {
	w := NewWorld()

	AddEntity(w, MakeTuple1(int32(5)))
	AddEntity(w, MakeTuple2(int32(6), 1.5))

	exact := slices.Collect(Exact1(Read[int32]()).Iter(w))
	require.Equal(t, []Tuple1[int32]{{5}}, exact)

	all := slices.Collect(All1(Read[int32]()).Iter(w))
	require.Equal(t, []Tuple1[int32]{{5}, {6}}, all)
}

func TestQuery_SupersetBlock(t *testing.T) {
	w := NewWorld()
	AddEntity(w, MakeTuple3(Position{X: 1}, Velocity{X: 2}, Health(3)))

	require.Equal(t, 1, All2(Read[Position](), Read[Velocity]()).Count(w))
	require.Equal(t, 0, Exact2(Read[Position](), Read[Velocity]()).Count(w))
	require.Equal(t, 1, Exact3(Read[Position](), Read[Velocity](), Read[Health]()).Count(w))
	require.Equal(t, 0, All4(Read[Position](), Read[Velocity](), Read[Health](), Read[Name]()).Count(w))
}

func TestQuery_Write(t *testing.T) {
	w := NewWorld()

	AddEntity(w,
		MakeTuple2(Position{X: 1}, Velocity{X: 1, Y: 2}),
		MakeTuple2(Position{X: 2}, Velocity{X: 3, Y: 4}),
	)

	AddEntity(w, MakeTuple3(Position{X: 3}, Velocity{X: 5, Y: 6}, Name("fast")))

	for item := range All2(Write[Position](), Read[Velocity]()).Iter(w) {
		item.V1.X += item.V2.X
		item.V1.Y += item.V2.Y
	}

	var positions []Position
	for item := range All1(Read[Position]()).Iter(w) {
		positions = append(positions, item.V1)
	}

	require.Equal(t, []Position{{X: 2, Y: 2}, {X: 5, Y: 4}, {X: 8, Y: 6}}, positions)
}

func TestQuery_ReadYieldsCopy(t *testing.T) {
	w := NewWorld()
	AddEntity(w, MakeTuple1(Position{X: 1}))

	for item := range All1(Read[Position]()).Iter(w) {
		item.V1.X = 100
	}

	require.Equal(t, []Tuple1[Position]{{Position{X: 1}}}, slices.Collect(All1(Read[Position]()).Iter(w)))
}

func TestQuery_Arity4(t *testing.T) {
	w := NewWorld()

	AddEntity(w, MakeTuple4(Position{X: 1}, Velocity{Y: 2}, Health(3), Name("four")))
	AddEntity(w, MakeTuple3(Position{}, Velocity{}, Health(0)))

	query := Exact4(Read[Name](), Read[Health](), Write[Velocity](), Read[Position]())

	items := slices.Collect(query.Iter(w))
	require.Len(t, items, 1)

	require.Equal(t, Name("four"), items[0].V1)
	require.Equal(t, Health(3), items[0].V2)
	require.Equal(t, Velocity{Y: 2}, *items[0].V3)
	require.Equal(t, Position{X: 1}, items[0].V4)
}

func TestQuery_BlockOrder(t *testing.T) {
	w := NewWorld()

	AddEntity(w, MakeTuple2(Health(1), Name("a")))
	AddEntity(w, MakeTuple1(Health(2)))
	AddEntity(w, MakeTuple2(Health(3), Position{}))
	AddEntity(w, MakeTuple1(Health(4)))

	var values []Health
	for item := range All1(Read[Health]()).Iter(w) {
		values = append(values, item.V1)
	}

	// blocks in creation order, entities in insertion order
	require.Equal(t, []Health{1, 2, 4, 3}, values)
}

func TestQuery_IterIsRepeatable(t *testing.T) {
	w := NewWorld()
	AddEntity(w, MakeTuple1(Health(1)), MakeTuple1(Health(2)))
	AddEntity(w, MakeTuple2(Health(3), Name("a")))
	AddEntity(w, MakeTuple2(Health(4), Position{}), MakeTuple2(Health(5), Position{}))

	items := All1(Read[Health]()).Iter(w)

	first := slices.Collect(items)
	require.Equal(t, []Tuple1[Health]{{1}, {2}, {3}, {4}, {5}}, first)
	require.Equal(t, first, slices.Collect(items))

	// a second query over the unmodified world yields the same order
	require.Equal(t, first, slices.Collect(All1(Read[Health]()).Iter(w)))
}

func TestQuery_Count(t *testing.T) {
	w := NewWorld()
	require.Equal(t, 0, All1(Read[Health]()).Count(w))

	AddEntity(w, MakeTuple1(Health(1)), MakeTuple1(Health(2)))
	AddEntity(w, MakeTuple2(Health(3), Name("x")))

	require.Equal(t, 3, All1(Read[Health]()).Count(w))
	require.Equal(t, 2, Exact1(Read[Health]()).Count(w))
	require.Equal(t, 1, All2(Read[Name](), Write[Health]()).Count(w))
}

func TestQuery_DuplicateComponentType(t *testing.T) {
	require.Panics(t, func() {
		All2(Read[Health](), Read[Health]())
	})

	require.Panics(t, func() {
		Exact2(Write[Health](), Read[Health]())
	})
}

func TestQuery_Borrows(t *testing.T) {
	w := NewWorld()
	AddEntity(w, MakeTuple2(Position{}, Velocity{}), MakeTuple2(Position{}, Velocity{}))

	t.Run("shared reads", func(t *testing.T) {
		var count int
		for range All1(Read[Position]()).Iter(w) {
			for range All2(Read[Position](), Read[Velocity]()).Iter(w) {
				count++
			}
		}

		require.Equal(t, 4, count)
	})

	t.Run("write while reading", func(t *testing.T) {
		for range All1(Read[Position]()).Iter(w) {
			require.Panics(t, func() {
				for range All1(Write[Position]()).Iter(w) {
				}
			})
		}
	})

	t.Run("read while writing", func(t *testing.T) {
		for range All1(Write[Position]()).Iter(w) {
			require.Panics(t, func() {
				for range All1(Read[Position]()).Iter(w) {
				}
			})

			// other columns are not affected
			for range All1(Write[Velocity]()).Iter(w) {
			}
		}
	})

	t.Run("released after break", func(t *testing.T) {
		for range All1(Write[Position]()).Iter(w) {
			break
		}

		require.False(t, w.blocks[0].Borrowed())
		require.Equal(t, 2, len(slices.Collect(All1(Write[Position]()).Iter(w))))
	})
}

func TestQuery_String(t *testing.T) {
	require.Equal(t, "Exact", Exact1(Read[Health]()).Flavor().String())
	require.Equal(t, "All", All1(Read[Health]()).Flavor().String())

	require.Equal(t, "Read[soa.Health]", Read[Health]().String())
	require.Equal(t, "Write[soa.Health]", Write[Health]().String())
	require.True(t, Write[Health]().Mutable())

	require.Equal(t, "QueryAll[soa.Health soa.Name]", All2(Read[Health](), Read[Name]()).String())
}

func BenchmarkQueryMovement(b *testing.B) {
	type Acceleration struct {
		X, Y float64
	}

	type Enemy struct{}

	w := NewWorld()

	for idx := range 1000 {
		acc := Acceleration{X: rand.Float64(), Y: rand.Float64()}

		if idx%2 == 0 {
			AddEntity(w, MakeTuple4(Position{}, Velocity{}, acc, Enemy{}))
		} else {
			AddEntity(w, MakeTuple3(Position{}, Velocity{}, acc))
		}
	}

	query := All3(Write[Position](), Write[Velocity](), Read[Acceleration]())

	b.ReportAllocs()
	b.ResetTimer()

	for b.Loop() {
		for item := range query.Iter(w) {
			item.V2.X += item.V3.X
			item.V2.Y += item.V3.Y

			item.V1.X += item.V2.X
			item.V1.Y += item.V2.Y
		}
	}
}

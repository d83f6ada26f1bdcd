package bench

import (
	"iter"
	"time"

	"github.com/jakecoffman/cp/v2"
	"go.uber.org/zap"

	"github.com/oliverbestmann/soa"
)

type Position struct {
	cp.Vector
}

type Velocity struct {
	cp.Vector
}

type Acceleration struct {
	cp.Vector
}

type Mass float64

type Frozen struct{}

// shapes add count entities of one component set each, starting at index offset.
var shapes = []func(w *soa.World, offset, count int){
	func(w *soa.World, offset, count int) {
		soa.AddEntitySeq(w, generate(offset, count, func(idx int) soa.Tuple2[Position, Velocity] {
			return soa.MakeTuple2(position(idx), velocity(idx))
		}))
	},

	func(w *soa.World, offset, count int) {
		soa.AddEntitySeq(w, generate(offset, count, func(idx int) soa.Tuple3[Position, Velocity, Acceleration] {
			return soa.MakeTuple3(position(idx), velocity(idx), Acceleration{cp.Vector{Y: -9.81}})
		}))
	},

	func(w *soa.World, offset, count int) {
		soa.AddEntitySeq(w, generate(offset, count, func(idx int) soa.Tuple3[Position, Velocity, Mass] {
			return soa.MakeTuple3(position(idx), velocity(idx), Mass(1+idx%10))
		}))
	},

	func(w *soa.World, offset, count int) {
		soa.AddEntitySeq(w, generate(offset, count, func(idx int) soa.Tuple3[Position, Velocity, Frozen] {
			return soa.MakeTuple3(position(idx), velocity(idx), Frozen{})
		}))
	},
}

func generate[T any](offset, count int, makeItem func(idx int) T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for idx := offset; idx < offset+count; idx++ {
			if !yield(makeItem(idx)) {
				return
			}
		}
	}
}

func position(idx int) Position {
	return Position{cp.Vector{X: float64(idx), Y: float64(idx % 100)}}
}

func velocity(idx int) Velocity {
	return Velocity{cp.Vector{X: 1, Y: float64(idx%7) - 3}}
}

type Result struct {
	Entities int
	Blocks   int
	Frames   int
	Moving   int
	Duration time.Duration

	// sum over all position coordinates after the last frame
	Checksum float64
}

// Populate creates a world with the configured number of entities, spread
// evenly over the configured number of shapes.
func Populate(cfg WorkloadConfig) *soa.World {
	world := soa.NewWorld()

	perShape := cfg.Entities / cfg.Shapes

	var offset int
	for idx, addEntities := range shapes[:cfg.Shapes] {
		count := perShape
		if idx == cfg.Shapes-1 {
			count = cfg.Entities - offset
		}

		addEntities(world, offset, count)
		offset += count
	}

	return world
}

var (
	accelerate = soa.All2(soa.Write[Velocity](), soa.Read[Acceleration]())
	integrate  = soa.All2(soa.Write[Position](), soa.Read[Velocity]())
	frozen     = soa.All2(soa.Read[Position](), soa.Read[Frozen]())
	moving     = soa.Exact2(soa.Read[Position](), soa.Read[Velocity]())
	positions  = soa.All1(soa.Read[Position]())
)

// Step advances the simulation of the world by a single frame.
func Step(world *soa.World, dt float64) {
	for item := range accelerate.Iter(world) {
		item.V1.Vector = item.V1.Add(item.V2.Mult(dt))
	}

	for item := range integrate.Iter(world) {
		item.V1.Vector = item.V1.Add(item.V2.Mult(dt))
	}
}

// Run populates a world and simulates it for the configured number of frames.
func Run(cfg WorkloadConfig, logger *zap.Logger) Result {
	world := Populate(cfg)

	logger.Info("World populated",
		zap.Int("entities", world.EntityCount()),
		zap.Int("blocks", world.BlockCount()),
		zap.Int("frozen", frozen.Count(world)),
	)

	for _, block := range world.Blocks() {
		logger.Debug("Storage block", zap.Strings("types", block.Types), zap.Int("len", block.Len))
	}

	startTime := time.Now()

	for frame := range cfg.Frames {
		Step(world, cfg.Step)

		if frame%100 == 99 {
			logger.Debug("Frame done", zap.Int("frame", frame+1), zap.Duration("elapsed", time.Since(startTime)))
		}
	}

	var checksum float64
	for item := range positions.Iter(world) {
		checksum += item.V1.X + item.V1.Y
	}

	return Result{
		Entities: world.EntityCount(),
		Blocks:   world.BlockCount(),
		Frames:   cfg.Frames,
		Moving:   moving.Count(world),
		Duration: time.Since(startTime),
		Checksum: checksum,
	}
}

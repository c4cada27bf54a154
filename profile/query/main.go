// Profiling:
//
//	go build ./profile/query
//	go tool pprof -http=":8000" -nodefraction=0.001 ./query cpu.pprof
package main

import (
	"github.com/pkg/profile"

	"github.com/arriety/arc"
)

type pos struct {
	X, Y float64
}

type vel struct {
	X, Y float64
}

type integrateSystem struct {
	arc.IteratingSystem
}

func newIntegrateSystem() *integrateSystem {
	s := &integrateSystem{}
	s.IteratingSystem = arc.NewIteratingSystem(s)
	s.Require(&pos{}, &vel{})
	return s
}

func (s *integrateSystem) Process(e arc.Entity, dt float64) {
	p, _ := arc.Get[pos](e)
	v, _ := arc.Get[vel](e)
	p.X += v.X * dt
	p.Y += v.Y * dt
}

func main() {
	rounds := 10
	iters := 10000
	entities := 10000
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, iters, entities)
	p.Stop()
}

// run stresses matching and iteration: one populated world, many updates.
func run(rounds, iters, numEntities int) {
	for r := 0; r < rounds; r++ {
		world := arc.NewWorld(arc.WithExpectedEntityCount(numEntities))
		if err := world.AddSystem(newIntegrateSystem()); err != nil {
			panic(err)
		}
		world.Initialize()

		for n := 0; n < numEntities; n++ {
			e := world.CreateEntity()
			e.AddComponent(&pos{})
			e.AddComponent(&vel{X: 1, Y: 1})
		}

		for i := 0; i < iters; i++ {
			world.Update(arc.DefaultStep)
		}
		world.Dispose()
	}
}

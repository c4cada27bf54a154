// Profiling:
//
//	go build ./profile/entities
//	go tool pprof -http=":8000" -nodefraction=0.001 ./entities mem.pprof
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

func main() {
	rounds := 50
	iters := 1000
	entities := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, iters, entities)
	p.Stop()
}

// run stresses entity churn: create a batch with components, delete the
// batch, repeat. Exercises ID recycling and storage reuse.
func run(rounds, iters, numEntities int) {
	for r := 0; r < rounds; r++ {
		world := arc.NewWorld(arc.WithExpectedEntityCount(numEntities))
		world.Initialize()

		for i := 0; i < iters; i++ {
			batch := make([]arc.Entity, 0, numEntities)
			for n := 0; n < numEntities; n++ {
				e := world.CreateEntity()
				e.AddComponent(&pos{X: float64(n)})
				e.AddComponent(&vel{X: 1})
				batch = append(batch, e)
			}
			for _, e := range batch {
				world.DeleteEntity(e)
			}
		}
		world.Dispose()
	}
}

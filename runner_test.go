package arc_test

import (
	"context"
	"testing"

	"github.com/arriety/arc"
)

type tickCounterSystem struct {
	arc.IteratingSystem
	updates int
	stop    context.CancelFunc
	stopAt  int
}

func newTickCounterSystem() *tickCounterSystem {
	s := &tickCounterSystem{}
	s.IteratingSystem = arc.NewIteratingSystem(s)
	return s
}

func (s *tickCounterSystem) Process(arc.Entity, float64) {}

func (s *tickCounterSystem) Update(dt float64) {
	s.updates++
	if s.stop != nil && s.updates >= s.stopAt {
		s.stop()
	}
	s.IteratingSystem.Update(dt)
}

func TestRunnerRunsRequestedSteps(t *testing.T) {
	world := arc.NewWorld()
	sys := newTickCounterSystem()
	world.AddSystem(sys)
	world.Initialize()

	runner := arc.NewRunner(world, arc.DefaultStep)
	if err := runner.Run(context.Background(), 10); err != nil {
		t.Fatalf("run: %v", err)
	}
	if sys.updates != 10 {
		t.Fatalf("expected 10 updates, got %d", sys.updates)
	}
	if world.Tick() != 10 {
		t.Fatalf("expected tick 10, got %d", world.Tick())
	}
	if world.Delta() != arc.DefaultStep {
		t.Fatalf("expected delta %v, got %v", arc.DefaultStep, world.Delta())
	}
}

func TestRunnerStepUsesFallbackStep(t *testing.T) {
	world := arc.NewWorld()
	world.Initialize()

	runner := arc.NewRunner(world, -1)
	runner.Step()
	if world.Delta() != arc.DefaultStep {
		t.Fatalf("expected fallback step %v, got %v", arc.DefaultStep, world.Delta())
	}
}

func TestRunnerStopsOnCancelledContext(t *testing.T) {
	world := arc.NewWorld()
	sys := newTickCounterSystem()
	world.AddSystem(sys)
	world.Initialize()

	ctx, cancel := context.WithCancel(context.Background())
	sys.stop = cancel
	sys.stopAt = 3

	runner := arc.NewRunner(world, arc.DefaultStep)
	err := runner.Run(ctx, 100)
	if err == nil {
		t.Fatalf("expected cancellation error")
	}
	// Cancellation is noticed between steps, never mid-update.
	if sys.updates != 3 {
		t.Fatalf("expected 3 updates before stopping, got %d", sys.updates)
	}
}

func TestRunnerWithAlreadyCancelledContext(t *testing.T) {
	world := arc.NewWorld()
	sys := newTickCounterSystem()
	world.AddSystem(sys)
	world.Initialize()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner := arc.NewRunner(world, arc.DefaultStep)
	if err := runner.Run(ctx, 5); err == nil {
		t.Fatalf("expected error from cancelled context")
	}
	if sys.updates != 0 {
		t.Fatalf("expected no updates, got %d", sys.updates)
	}
}

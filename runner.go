package arc

import (
	"context"
	"io"
	"runtime/trace"

	"github.com/rotisserie/eris"
)

// DefaultStep is the fixed time step used when a runner is constructed
// without one: 60 updates per simulated second.
const DefaultStep = 1.0 / 60.0

// Runner drives a world through fixed-size steps. Each step is one blocking
// World.Update call; the context is only consulted between steps, matching
// the core's no-cancellation-mid-update model.
type Runner struct {
	world *World
	step  float64
}

// NewRunner binds a runner to a world. A step at or below zero falls back to
// DefaultStep.
func NewRunner(world *World, step float64) *Runner {
	if step <= 0 {
		step = DefaultStep
	}
	return &Runner{world: world, step: step}
}

// Step advances the world by one fixed step.
func (r *Runner) Step() {
	r.world.Update(r.step)
}

// Run advances the world by steps fixed steps, stopping early when ctx is
// cancelled.
func (r *Runner) Run(ctx context.Context, steps int) error {
	for i := 0; i < steps; i++ {
		if err := ctx.Err(); err != nil {
			return eris.Wrapf(err, "run stopped after %d of %d steps", i, steps)
		}
		r.world.Update(r.step)
	}
	return nil
}

// RunWithTrace captures a runtime execution trace to w while running.
func (r *Runner) RunWithTrace(ctx context.Context, w io.Writer, steps int) error {
	if err := trace.Start(w); err != nil {
		return eris.Wrap(err, "start trace")
	}
	defer trace.Stop()
	return r.Run(ctx, steps)
}

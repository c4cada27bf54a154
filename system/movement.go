// Package system provides the simulation systems driving the gameplay
// components: movement integration, health upkeep, and AI decision making.
package system

import (
	"github.com/arriety/arc"
	"github.com/arriety/arc/component"
)

// Gravity is the default downward acceleration in world units per second
// squared. Positive Y points down.
const Gravity = 980.0

// MovementSystem integrates velocity into position for entities carrying
// Transform and Movement: gravity, acceleration, friction, speed clamping,
// then translation, with a flat ground plane at y = 0.
type MovementSystem struct {
	arc.IteratingSystem
}

// NewMovementSystem constructs the system.
func NewMovementSystem() *MovementSystem {
	s := &MovementSystem{}
	s.IteratingSystem = arc.NewIteratingSystem(s)
	s.Require(&component.Transform{}, &component.Movement{})
	return s
}

// Process advances one entity by dt seconds.
func (s *MovementSystem) Process(e arc.Entity, dt float64) {
	transform, ok := arc.Get[component.Transform](e)
	if !ok {
		return
	}
	movement, ok := arc.Get[component.Movement](e)
	if !ok || !movement.CanMove {
		return
	}

	movement.ApplyGravity(Gravity, dt)
	movement.VelocityX += movement.AccelerationX * dt
	movement.VelocityY += movement.AccelerationY * dt
	movement.ApplyFriction(dt)
	movement.ClampVelocity()

	transform.Translate(movement.VelocityX*dt, movement.VelocityY*dt)

	// Flat ground at y = 0: falling entities land, everything else is
	// airborne.
	if movement.GravityEnabled && transform.Y >= 0 {
		if movement.VelocityY > 0 {
			transform.Y = 0
			movement.VelocityY = 0
			movement.Grounded = true
		}
	} else {
		movement.Grounded = false
	}
}

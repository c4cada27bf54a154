package component

import (
	"fmt"
	"math"
)

// Movement carries velocity, acceleration, and movement constraints for
// entities that move through the world. Units are world units per second.
type Movement struct {
	VelocityX     float64
	VelocityY     float64
	AccelerationX float64
	AccelerationY float64

	MaxSpeed       float64
	Friction       float64 // coefficient in [0, 1]
	GravityEnabled bool
	GravityScale   float64

	CanMove  bool
	Grounded bool
}

// NewMovement creates a movement component with the given max speed and
// friction. Friction is clamped to [0, 1].
func NewMovement(maxSpeed, friction float64) *Movement {
	return &Movement{
		MaxSpeed:     maxSpeed,
		Friction:     math.Max(0, math.Min(1, friction)),
		GravityScale: 1,
		CanMove:      true,
	}
}

// SetVelocity replaces the current velocity.
func (m *Movement) SetVelocity(vx, vy float64) {
	m.VelocityX = vx
	m.VelocityY = vy
}

// AddVelocity adds to the current velocity.
func (m *Movement) AddVelocity(dvx, dvy float64) {
	m.VelocityX += dvx
	m.VelocityY += dvy
}

// Speed returns the magnitude of the current velocity.
func (m *Movement) Speed() float64 {
	return math.Sqrt(m.VelocityX*m.VelocityX + m.VelocityY*m.VelocityY)
}

// SetCanMove toggles movement. Disabling movement also zeroes velocity and
// acceleration so the entity stops instead of coasting.
func (m *Movement) SetCanMove(canMove bool) {
	m.CanMove = canMove
	if !canMove {
		m.Stop()
	}
}

// ApplyFriction decays velocity toward zero.
func (m *Movement) ApplyFriction(dt float64) {
	if m.Friction <= 0 {
		return
	}
	multiplier := math.Max(0, 1-m.Friction*dt*10)
	m.VelocityX *= multiplier
	m.VelocityY *= multiplier
}

// ApplyGravity accelerates the entity downward while airborne. Positive Y
// points down.
func (m *Movement) ApplyGravity(gravity, dt float64) {
	if m.GravityEnabled && !m.Grounded {
		m.VelocityY += gravity * m.GravityScale * dt
	}
}

// ClampVelocity scales velocity back to MaxSpeed when it exceeds it.
func (m *Movement) ClampVelocity() {
	speed := m.Speed()
	if speed > m.MaxSpeed && speed > 0 {
		ratio := m.MaxSpeed / speed
		m.VelocityX *= ratio
		m.VelocityY *= ratio
	}
}

// Stop zeroes velocity and acceleration immediately.
func (m *Movement) Stop() {
	m.VelocityX = 0
	m.VelocityY = 0
	m.AccelerationX = 0
	m.AccelerationY = 0
}

// Jump launches the entity upward. Only a grounded entity that can move may
// jump; negative Y is up.
func (m *Movement) Jump(force float64) {
	if m.Grounded && m.CanMove {
		m.VelocityY = -force
		m.Grounded = false
	}
}

func (m *Movement) String() string {
	return fmt.Sprintf("Movement{vel=(%.1f, %.1f), speed=%.1f/%.1f, grounded=%t}",
		m.VelocityX, m.VelocityY, m.Speed(), m.MaxSpeed, m.Grounded)
}

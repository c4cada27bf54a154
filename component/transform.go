// Package component provides the gameplay components used by the simulation
// systems: spatial state, movement, health, AI, skills, and NPC interaction.
// Components are plain mutable structs attached to entities as pointers.
package component

import (
	"fmt"
	"math"
)

// Transform defines position, rotation, and scale. Every entity placed in
// the world carries one. Rotation is in degrees.
type Transform struct {
	X        float64
	Y        float64
	Rotation float64
	ScaleX   float64
	ScaleY   float64
}

// NewTransform places a transform at x, y with default scale.
func NewTransform(x, y float64) *Transform {
	return &Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}
}

// SetPosition moves the transform to x, y.
func (t *Transform) SetPosition(x, y float64) {
	t.X = x
	t.Y = y
}

// Translate moves the transform by the given offset.
func (t *Transform) Translate(dx, dy float64) {
	t.X += dx
	t.Y += dy
}

// SetRotation sets the rotation, normalized to [0, 360).
func (t *Transform) SetRotation(degrees float64) {
	t.Rotation = math.Mod(degrees, 360)
}

// Rotate adds to the rotation, normalized to [0, 360).
func (t *Transform) Rotate(degrees float64) {
	t.Rotation = math.Mod(t.Rotation+degrees, 360)
}

// SetScale sets a uniform scale factor.
func (t *Transform) SetScale(scale float64) {
	t.ScaleX = scale
	t.ScaleY = scale
}

// DistanceTo returns the distance to another transform.
func (t *Transform) DistanceTo(other *Transform) float64 {
	return math.Sqrt(t.DistanceSquaredTo(other))
}

// DistanceSquaredTo returns the squared distance to another transform,
// cheaper than DistanceTo when only comparing.
func (t *Transform) DistanceSquaredTo(other *Transform) float64 {
	dx := t.X - other.X
	dy := t.Y - other.Y
	return dx*dx + dy*dy
}

func (t *Transform) String() string {
	return fmt.Sprintf("Transform{pos=(%.2f, %.2f), rot=%.1f, scale=(%.2f, %.2f)}",
		t.X, t.Y, t.Rotation, t.ScaleX, t.ScaleY)
}

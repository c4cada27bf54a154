package component

import (
	"fmt"
	"math"
)

// Health tracks hit points for entities that can take damage and die. Death
// is a component-state flag: reaching zero health marks the component dead
// but never deletes the entity, leaving corpse handling to gameplay code.
type Health struct {
	current        float64
	max            float64
	dead           bool
	invulnerable   bool
	regenRate      float64 // health per second
	lastDamageTime float64
}

// NewHealth creates a health component at full health.
func NewHealth(max float64) *Health {
	return &Health{current: max, max: max}
}

// Current returns the current health.
func (h *Health) Current() float64 { return h.current }

// Max returns the maximum health.
func (h *Health) Max() float64 { return h.max }

// SetMax adjusts the maximum, clamping current health underneath it.
func (h *Health) SetMax(max float64) {
	h.max = math.Max(0, max)
	h.current = math.Min(h.current, h.max)
}

// Percentage returns current health as a fraction of max, in [0, 1].
func (h *Health) Percentage() float64 {
	if h.max <= 0 {
		return 0
	}
	return h.current / h.max
}

// IsDead reports whether the entity has died.
func (h *Health) IsDead() bool { return h.dead }

// IsInvulnerable reports whether damage is currently ignored.
func (h *Health) IsInvulnerable() bool { return h.invulnerable }

// SetInvulnerable toggles damage immunity.
func (h *Health) SetInvulnerable(invulnerable bool) { h.invulnerable = invulnerable }

// RegenRate returns the regeneration rate in health per second.
func (h *Health) RegenRate() float64 { return h.regenRate }

// SetRegenRate sets the regeneration rate; negative rates clamp to zero.
func (h *Health) SetRegenRate(rate float64) { h.regenRate = math.Max(0, rate) }

// TimeSinceLastDamage returns the elapsed time since damage was last taken.
func (h *Health) TimeSinceLastDamage(now float64) float64 {
	return now - h.lastDamageTime
}

// TakeDamage applies damage and returns the amount actually dealt. Damage is
// ignored while invulnerable or dead, and never drives health below zero.
func (h *Health) TakeDamage(damage, now float64) float64 {
	if h.invulnerable || h.dead || damage <= 0 {
		return 0
	}
	actual := math.Min(damage, h.current)
	h.current -= actual
	h.lastDamageTime = now
	if h.current <= 0 {
		h.current = 0
		h.dead = true
	}
	return actual
}

// Heal restores health and returns the amount actually restored. The dead
// cannot be healed; use Revive.
func (h *Health) Heal(amount float64) float64 {
	if h.dead || amount <= 0 {
		return 0
	}
	actual := math.Min(amount, h.max-h.current)
	h.current += actual
	return actual
}

// FullHeal restores full health and clears the dead flag.
func (h *Health) FullHeal() {
	h.current = h.max
	h.dead = false
}

// Kill drops health to zero and marks the entity dead.
func (h *Health) Kill() {
	h.current = 0
	h.dead = true
}

// Revive brings a dead entity back with the given health, clamped to
// [1, max]. Reviving the living is a no-op.
func (h *Health) Revive(health float64) {
	if !h.dead {
		return
	}
	h.current = math.Max(1, math.Min(health, h.max))
	h.dead = false
}

// UpdateRegen advances regeneration by dt seconds.
func (h *Health) UpdateRegen(dt float64) {
	if !h.dead && h.regenRate > 0 && h.current < h.max {
		h.Heal(h.regenRate * dt)
	}
}

func (h *Health) String() string {
	return fmt.Sprintf("Health{%.1f/%.1f (%.0f%%), dead=%t, invuln=%t, regen=%.1f/s}",
		h.current, h.max, h.Percentage()*100, h.dead, h.invulnerable, h.regenRate)
}

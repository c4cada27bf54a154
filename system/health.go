package system

import (
	"github.com/arriety/arc"
	"github.com/arriety/arc/component"
)

// DeathHandler is called once per frame for each dead entity. Gameplay code
// installs one to drop loot, award experience, or schedule corpse removal.
type DeathHandler func(e arc.Entity, health *component.Health)

// HealthSystem advances regeneration for entities carrying Health and
// reports deaths. Death never deletes the entity; the dead flag stays on the
// component until gameplay code decides what to do with the corpse.
type HealthSystem struct {
	arc.IteratingSystem
	onDeath DeathHandler
}

// NewHealthSystem constructs the system.
func NewHealthSystem() *HealthSystem {
	s := &HealthSystem{}
	s.IteratingSystem = arc.NewIteratingSystem(s)
	s.Require(&component.Health{})
	return s
}

// OnDeath installs the death handler.
func (s *HealthSystem) OnDeath(handler DeathHandler) {
	s.onDeath = handler
}

// Process updates one entity's health by dt seconds.
func (s *HealthSystem) Process(e arc.Entity, dt float64) {
	health, ok := arc.Get[component.Health](e)
	if !ok {
		return
	}
	health.UpdateRegen(dt)
	if health.IsDead() && s.onDeath != nil {
		s.onDeath(e, health)
	}
}

package system

import (
	"math"

	"github.com/arriety/arc"
	"github.com/arriety/arc/component"
)

const (
	waypointTolerance = 10.0
	idleTimeout       = 5.0
	searchTimeout     = 10.0
	stunDuration      = 3.0
	recoverThreshold  = 0.5 // health fraction at which retreating stops
	baseAttackDamage  = 10.0
)

// AISystem runs the state machine for entities carrying AILogic and
// Transform. It tracks its own simulation clock by accumulating deltas, so
// cooldowns and state timers are measured in seconds of simulated time.
type AISystem struct {
	arc.IteratingSystem
	now float64
}

// NewAISystem constructs the system.
func NewAISystem() *AISystem {
	s := &AISystem{}
	s.IteratingSystem = arc.NewIteratingSystem(s)
	s.Require(&component.AILogic{}, &component.Transform{})
	return s
}

// Now returns the accumulated simulation time in seconds.
func (s *AISystem) Now() float64 {
	return s.now
}

// Update advances the clock, then runs the per-entity state machine.
func (s *AISystem) Update(dt float64) {
	s.now += dt
	s.IteratingSystem.Update(dt)
}

// Process runs one entity's AI for this frame.
func (s *AISystem) Process(e arc.Entity, dt float64) {
	ai, ok := arc.Get[component.AILogic](e)
	if !ok {
		return
	}
	ai.UpdateStateTimer(dt)

	// Low health forces a retreat from any live state.
	if health, ok := arc.Get[component.Health](e); ok {
		if ai.ShouldRetreat(health.Percentage()) &&
			ai.State() != component.StateRetreat && ai.State() != component.StateDead {
			ai.SetState(component.StateRetreat, s.now)
		}
	}

	switch ai.State() {
	case component.StateIdle:
		s.handleIdle(ai)
	case component.StatePatrol:
		s.handlePatrol(e, ai)
	case component.StateChase:
		s.handleChase(e, ai)
	case component.StateAttack:
		s.handleAttack(e, ai)
	case component.StateRetreat:
		s.handleRetreat(e, ai)
	case component.StateSearch:
		s.handleSearch(e, ai)
	case component.StateStunned:
		s.handleStunned(ai)
	case component.StateDead:
		s.handleDead(e)
	}

	// Acquire targets only while unlocked; re-acquiring every frame would
	// bounce an attacking AI back into chase.
	if _, locked := ai.Target(); !locked {
		if ai.Behavior() == component.BehaviorAggressive ||
			ai.Behavior() == component.BehaviorTerritorial {
			s.lookForTargets(e, ai)
		}
	}
}

func (s *AISystem) handleIdle(ai *component.AILogic) {
	if ai.StateTimer() > idleTimeout {
		if _, ok := ai.CurrentPatrolPoint(); ok {
			ai.SetState(component.StatePatrol, s.now)
		}
	}
}

func (s *AISystem) handlePatrol(e arc.Entity, ai *component.AILogic) {
	transform, ok := arc.Get[component.Transform](e)
	if !ok {
		return
	}
	waypoint, ok := ai.CurrentPatrolPoint()
	if !ok {
		ai.SetState(component.StateIdle, s.now)
		return
	}

	dx := waypoint[0] - transform.X
	dy := waypoint[1] - transform.Y
	distance := math.Sqrt(dx*dx + dy*dy)

	if distance < waypointTolerance {
		ai.NextPatrolPoint()
		return
	}
	if movement, ok := arc.Get[component.Movement](e); ok {
		movement.VelocityX = dx / distance * ai.PatrolSpeed
		movement.VelocityY = dy / distance * ai.PatrolSpeed
	}
}

func (s *AISystem) handleChase(e arc.Entity, ai *component.AILogic) {
	target, ok := ai.Target()
	if !ok || !target.Alive() {
		ai.ClearTarget()
		ai.SetState(component.StateSearch, s.now)
		return
	}

	transform, ok := arc.Get[component.Transform](e)
	targetTransform, tok := arc.Get[component.Transform](target)
	if !ok || !tok {
		ai.SetState(component.StateIdle, s.now)
		return
	}

	distance := transform.DistanceTo(targetTransform)
	if distance <= ai.AttackRange {
		ai.SetState(component.StateAttack, s.now)
		return
	}
	if distance > ai.ChaseRange {
		ai.ClearTarget()
		ai.SetState(component.StateSearch, s.now)
		return
	}

	if movement, ok := arc.Get[component.Movement](e); ok && distance > 0 {
		dx := targetTransform.X - transform.X
		dy := targetTransform.Y - transform.Y
		movement.VelocityX = dx / distance * movement.MaxSpeed
		movement.VelocityY = dy / distance * movement.MaxSpeed
	}
}

func (s *AISystem) handleAttack(e arc.Entity, ai *component.AILogic) {
	target, ok := ai.Target()
	if !ok || !target.Alive() {
		ai.ClearTarget()
		ai.SetState(component.StateIdle, s.now)
		return
	}

	transform, ok := arc.Get[component.Transform](e)
	targetTransform, tok := arc.Get[component.Transform](target)
	if !ok || !tok {
		ai.SetState(component.StateIdle, s.now)
		return
	}

	if transform.DistanceTo(targetTransform) > ai.AttackRange {
		ai.SetState(component.StateChase, s.now)
		return
	}

	if ai.CanAttack(s.now) {
		if health, ok := arc.Get[component.Health](target); ok {
			health.TakeDamage(baseAttackDamage, s.now)
		}
		ai.RecordAttack(s.now)
	}
}

func (s *AISystem) handleRetreat(e arc.Entity, ai *component.AILogic) {
	if target, ok := ai.Target(); ok && target.Alive() {
		transform, tok := arc.Get[component.Transform](e)
		targetTransform, ttok := arc.Get[component.Transform](target)
		movement, mok := arc.Get[component.Movement](e)
		if tok && ttok && mok {
			dx := transform.X - targetTransform.X
			dy := transform.Y - targetTransform.Y
			distance := math.Sqrt(dx*dx + dy*dy)
			if distance > 0 {
				movement.VelocityX = dx / distance * movement.MaxSpeed
				movement.VelocityY = dy / distance * movement.MaxSpeed
			}
		}
	}

	if health, ok := arc.Get[component.Health](e); ok {
		if health.Percentage() > recoverThreshold {
			ai.SetState(component.StateIdle, s.now)
		}
	}
}

func (s *AISystem) handleSearch(e arc.Entity, ai *component.AILogic) {
	s.lookForTargets(e, ai)
	if ai.StateTimer() > searchTimeout {
		ai.SetState(component.StateIdle, s.now)
	}
}

func (s *AISystem) handleStunned(ai *component.AILogic) {
	if ai.StateTimer() > stunDuration {
		ai.SetState(component.StateIdle, s.now)
	}
}

func (s *AISystem) handleDead(e arc.Entity) {
	if movement, ok := arc.Get[component.Movement](e); ok {
		movement.Stop()
	}
}

// lookForTargets scans for the closest living entity in detection range and
// switches to chase when one is found.
func (s *AISystem) lookForTargets(e arc.Entity, ai *component.AILogic) {
	transform, ok := arc.Get[component.Transform](e)
	if !ok {
		return
	}

	var closest arc.Entity
	found := false
	closestDistance := math.MaxFloat64

	for _, candidate := range e.World().Entities() {
		if candidate == e || !candidate.Alive() {
			continue
		}
		health, ok := arc.Get[component.Health](candidate)
		if !ok || health.IsDead() {
			continue
		}
		candidateTransform, ok := arc.Get[component.Transform](candidate)
		if !ok {
			continue
		}
		distance := transform.DistanceTo(candidateTransform)
		if distance <= ai.DetectionRange && distance < closestDistance {
			closest = candidate
			closestDistance = distance
			found = true
		}
	}

	if found {
		ai.SetTarget(closest)
		ai.SetState(component.StateChase, s.now)
	}
}

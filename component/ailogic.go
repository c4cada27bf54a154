package component

import (
	"fmt"

	"github.com/arriety/arc"
)

// AIState names the states of the AI state machine.
type AIState int

const (
	StateIdle AIState = iota
	StatePatrol
	StateChase
	StateAttack
	StateRetreat
	StateSearch
	StateStunned
	StateDead
)

var aiStateNames = [...]string{
	"IDLE", "PATROL", "CHASE", "ATTACK", "RETREAT", "SEARCH", "STUNNED", "DEAD",
}

func (s AIState) String() string {
	if s < 0 || int(s) >= len(aiStateNames) {
		return fmt.Sprintf("AIState(%d)", int(s))
	}
	return aiStateNames[s]
}

// AIBehavior names the coarse aggression profiles.
type AIBehavior int

const (
	BehaviorPassive AIBehavior = iota
	BehaviorDefensive
	BehaviorAggressive
	BehaviorTerritorial
	BehaviorBoss
)

var aiBehaviorNames = [...]string{
	"PASSIVE", "DEFENSIVE", "AGGRESSIVE", "TERRITORIAL", "BOSS",
}

func (b AIBehavior) String() string {
	if b < 0 || int(b) >= len(aiBehaviorNames) {
		return fmt.Sprintf("AIBehavior(%d)", int(b))
	}
	return aiBehaviorNames[b]
}

// AILogic drives monster and boss decision making: a state machine plus the
// ranges and timers the AI system consults each frame.
type AILogic struct {
	state           AIState
	behavior        AIBehavior
	target          arc.Entity
	hasTarget       bool
	lastStateChange float64
	stateTimer      float64

	DetectionRange   float64 // range at which enemies are noticed
	AttackRange      float64
	ChaseRange       float64 // give up pursuit beyond this
	RetreatThreshold float64 // health fraction that triggers retreat
	AttackCooldown   float64 // seconds between attacks
	lastAttackTime   float64

	patrolPoints [][2]float64
	patrolIndex  int
	PatrolSpeed  float64
}

// NewAILogic creates an AI component with the given behavior and default
// tuning.
func NewAILogic(behavior AIBehavior) *AILogic {
	return &AILogic{
		behavior:         behavior,
		DetectionRange:   100,
		AttackRange:      50,
		ChaseRange:       200,
		RetreatThreshold: 0.2,
		AttackCooldown:   2,
		lastAttackTime:   -2, // a fresh AI is attack-ready
		PatrolSpeed:      50,
	}
}

// State returns the current state.
func (a *AILogic) State() AIState { return a.state }

// SetState transitions to newState, resetting the state timer. Transitioning
// to the current state is a no-op so the timer keeps running.
func (a *AILogic) SetState(newState AIState, now float64) {
	if a.state == newState {
		return
	}
	a.state = newState
	a.lastStateChange = now
	a.stateTimer = 0
}

// Behavior returns the aggression profile.
func (a *AILogic) Behavior() AIBehavior { return a.behavior }

// SetBehavior replaces the aggression profile.
func (a *AILogic) SetBehavior(b AIBehavior) { a.behavior = b }

// Target returns the current target, or absence.
func (a *AILogic) Target() (arc.Entity, bool) {
	return a.target, a.hasTarget
}

// SetTarget locks onto e.
func (a *AILogic) SetTarget(e arc.Entity) {
	a.target = e
	a.hasTarget = true
}

// ClearTarget drops the current target.
func (a *AILogic) ClearTarget() {
	a.target = arc.Entity{}
	a.hasTarget = false
}

// CanAttack reports whether the attack cooldown has elapsed.
func (a *AILogic) CanAttack(now float64) bool {
	return now-a.lastAttackTime >= a.AttackCooldown
}

// RecordAttack restarts the attack cooldown.
func (a *AILogic) RecordAttack(now float64) {
	a.lastAttackTime = now
}

// TimeInState returns how long the current state has been active.
func (a *AILogic) TimeInState(now float64) float64 {
	return now - a.lastStateChange
}

// UpdateStateTimer advances the per-state timer by dt seconds.
func (a *AILogic) UpdateStateTimer(dt float64) {
	a.stateTimer += dt
}

// StateTimer returns the time accumulated in the current state.
func (a *AILogic) StateTimer() float64 { return a.stateTimer }

// SetPatrolPoints replaces the patrol route and rewinds to its start.
func (a *AILogic) SetPatrolPoints(points ...[2]float64) {
	a.patrolPoints = append([][2]float64(nil), points...)
	a.patrolIndex = 0
}

// CurrentPatrolPoint returns the active waypoint, or absence when no route
// is set.
func (a *AILogic) CurrentPatrolPoint() ([2]float64, bool) {
	if len(a.patrolPoints) == 0 {
		return [2]float64{}, false
	}
	return a.patrolPoints[a.patrolIndex], true
}

// NextPatrolPoint advances to the next waypoint, wrapping at the end.
func (a *AILogic) NextPatrolPoint() {
	if len(a.patrolPoints) > 0 {
		a.patrolIndex = (a.patrolIndex + 1) % len(a.patrolPoints)
	}
}

// Stun forces the stunned state.
func (a *AILogic) Stun(now float64) {
	a.SetState(StateStunned, now)
}

// ShouldRetreat reports whether the given health fraction is at or below the
// retreat threshold.
func (a *AILogic) ShouldRetreat(healthFraction float64) bool {
	return healthFraction <= a.RetreatThreshold
}

func (a *AILogic) String() string {
	return fmt.Sprintf("AILogic{state=%s, behavior=%s, timer=%.1fs}",
		a.state, a.behavior, a.stateTimer)
}

package system_test

import (
	"testing"

	"github.com/arriety/arc"
	"github.com/arriety/arc/component"
	"github.com/arriety/arc/system"
)

func newAIWorld(t *testing.T) (*arc.World, *system.AISystem) {
	t.Helper()
	world := arc.NewWorld()
	ai := system.NewAISystem()
	if err := world.AddSystem(ai); err != nil {
		t.Fatalf("add system: %v", err)
	}
	world.Initialize()
	return world, ai
}

func spawnMonster(world *arc.World, x, y float64, behavior component.AIBehavior) (arc.Entity, *component.AILogic) {
	e := world.CreateEntity()
	e.AddComponent(component.NewTransform(x, y))
	e.AddComponent(component.NewMovement(80, 0))
	e.AddComponent(component.NewHealth(100))
	logic := component.NewAILogic(behavior)
	e.AddComponent(logic)
	return e, logic
}

func spawnPlayer(world *arc.World, x, y float64) arc.Entity {
	e := world.CreateEntity()
	e.AddComponent(component.NewTransform(x, y))
	e.AddComponent(component.NewHealth(200))
	return e
}

func TestAggressiveAIDetectsAndChases(t *testing.T) {
	world, _ := newAIWorld(t)
	_, logic := spawnMonster(world, 0, 0, component.BehaviorAggressive)
	player := spawnPlayer(world, 80, 0)

	world.Update(1.0 / 60.0)

	if logic.State() != component.StateChase {
		t.Fatalf("expected CHASE, got %v", logic.State())
	}
	target, ok := logic.Target()
	if !ok || target != player {
		t.Fatalf("wrong target")
	}
}

func TestPassiveAIIgnoresNearbyEntities(t *testing.T) {
	world, _ := newAIWorld(t)
	_, logic := spawnMonster(world, 0, 0, component.BehaviorPassive)
	spawnPlayer(world, 50, 0)

	world.Update(1.0 / 60.0)

	if logic.State() != component.StateIdle {
		t.Fatalf("passive AI left idle: %v", logic.State())
	}
}

func TestAIOutOfDetectionRangeStaysIdle(t *testing.T) {
	world, _ := newAIWorld(t)
	_, logic := spawnMonster(world, 0, 0, component.BehaviorAggressive)
	spawnPlayer(world, 500, 0)

	world.Update(1.0 / 60.0)

	if logic.State() != component.StateIdle {
		t.Fatalf("AI noticed a target outside detection range: %v", logic.State())
	}
}

func TestAIAttacksInRange(t *testing.T) {
	world, _ := newAIWorld(t)
	monster, logic := spawnMonster(world, 0, 0, component.BehaviorAggressive)
	player := spawnPlayer(world, 30, 0)
	logic.SetTarget(player)
	logic.SetState(component.StateChase, 0)
	// Keep the monster stationary so the range check stays stable.
	if m, ok := arc.Get[component.Movement](monster); ok {
		m.CanMove = false
	}

	world.Update(1.0 / 60.0) // chase -> attack
	if logic.State() != component.StateAttack {
		t.Fatalf("expected ATTACK, got %v", logic.State())
	}

	playerHealth, _ := arc.Get[component.Health](player)
	before := playerHealth.Current()
	world.Update(1.0 / 60.0) // first swing
	if playerHealth.Current() >= before {
		t.Fatalf("attack dealt no damage")
	}

	// Cooldown prevents an immediate second swing.
	after := playerHealth.Current()
	world.Update(1.0 / 60.0)
	if playerHealth.Current() != after {
		t.Fatalf("attack ignored its cooldown")
	}
}

func TestAIRetreatsAtLowHealth(t *testing.T) {
	world, _ := newAIWorld(t)
	monster, logic := spawnMonster(world, 0, 0, component.BehaviorDefensive)

	h, _ := arc.Get[component.Health](monster)
	h.TakeDamage(90, 0) // 10% left, below the 20% threshold

	world.Update(1.0 / 60.0)

	if logic.State() != component.StateRetreat {
		t.Fatalf("expected RETREAT, got %v", logic.State())
	}
}

func TestAIRecoversFromRetreat(t *testing.T) {
	world, _ := newAIWorld(t)
	monster, logic := spawnMonster(world, 0, 0, component.BehaviorDefensive)

	h, _ := arc.Get[component.Health](monster)
	h.TakeDamage(90, 0)
	world.Update(1.0 / 60.0)
	if logic.State() != component.StateRetreat {
		t.Fatalf("expected RETREAT, got %v", logic.State())
	}

	h.Heal(80) // back to 90%
	world.Update(1.0 / 60.0)
	if logic.State() != component.StateIdle {
		t.Fatalf("expected IDLE after recovering, got %v", logic.State())
	}
}

func TestAIPatrolAdvancesWaypoints(t *testing.T) {
	world, _ := newAIWorld(t)
	monster, logic := spawnMonster(world, 0, 0, component.BehaviorPassive)
	logic.SetPatrolPoints([2]float64{5, 0}, [2]float64{100, 0})
	logic.SetState(component.StatePatrol, 0)

	world.Update(1.0 / 60.0)

	// First waypoint is inside the arrival tolerance, so the route advances.
	wp, ok := logic.CurrentPatrolPoint()
	if !ok || wp != [2]float64{100, 0} {
		t.Fatalf("waypoint did not advance: %v", wp)
	}

	world.Update(1.0 / 60.0)
	m, _ := arc.Get[component.Movement](monster)
	if m.VelocityX <= 0 {
		t.Fatalf("patrol not moving toward waypoint, vx=%v", m.VelocityX)
	}
}

func TestAIStunRecovery(t *testing.T) {
	world, ai := newAIWorld(t)
	_, logic := spawnMonster(world, 0, 0, component.BehaviorPassive)
	logic.Stun(ai.Now())

	world.Update(1)
	if logic.State() != component.StateStunned {
		t.Fatalf("stun cleared too early: %v", logic.State())
	}

	world.Update(2.5)
	if logic.State() != component.StateIdle {
		t.Fatalf("expected IDLE after stun wears off, got %v", logic.State())
	}
}

func TestAIDeadStateStopsMovement(t *testing.T) {
	world, ai := newAIWorld(t)
	monster, logic := spawnMonster(world, 0, 0, component.BehaviorAggressive)
	m, _ := arc.Get[component.Movement](monster)
	m.SetVelocity(40, 0)
	logic.SetState(component.StateDead, ai.Now())

	world.Update(1.0 / 60.0)

	if m.VelocityX != 0 || m.VelocityY != 0 {
		t.Fatalf("dead entity kept moving: (%v, %v)", m.VelocityX, m.VelocityY)
	}
}

func TestAISearchTimesOutToIdle(t *testing.T) {
	world, ai := newAIWorld(t)
	_, logic := spawnMonster(world, 0, 0, component.BehaviorPassive)
	logic.SetState(component.StateSearch, ai.Now())

	world.Update(11)

	if logic.State() != component.StateIdle {
		t.Fatalf("search never timed out: %v", logic.State())
	}
}

func TestAILosesChaseTargetWhenDeleted(t *testing.T) {
	world, _ := newAIWorld(t)
	_, logic := spawnMonster(world, 0, 0, component.BehaviorPassive)
	player := spawnPlayer(world, 60, 0)
	logic.SetTarget(player)
	logic.SetState(component.StateChase, 0)

	world.DeleteEntity(player)
	world.Update(1.0 / 60.0)

	if logic.State() != component.StateSearch {
		t.Fatalf("expected SEARCH after target vanished, got %v", logic.State())
	}
	if _, ok := logic.Target(); ok {
		t.Fatalf("dead target still locked")
	}
}

package system_test

import (
	"math"
	"testing"

	"github.com/arriety/arc"
	"github.com/arriety/arc/component"
	"github.com/arriety/arc/system"
)

func TestHealthSystemRegenerates(t *testing.T) {
	world := arc.NewWorld()
	world.AddSystem(system.NewHealthSystem())
	world.Initialize()

	e := world.CreateEntity()
	h := component.NewHealth(100)
	h.TakeDamage(50, 0)
	h.SetRegenRate(10)
	e.AddComponent(h)

	world.Update(1)
	if math.Abs(h.Current()-60) > 1e-9 {
		t.Fatalf("expected 60 after 1s regen, got %v", h.Current())
	}
}

func TestDeathLeavesEntityAndComponentIntact(t *testing.T) {
	world := arc.NewWorld()
	hs := system.NewHealthSystem()
	world.AddSystem(hs)
	world.Initialize()

	e := world.CreateEntity()
	h := component.NewHealth(100)
	e.AddComponent(h)
	h.TakeDamage(100, 0)

	world.Update(1.0 / 60.0)

	// Death is a component flag. The entity stays live and keeps its
	// Health component until gameplay code removes it.
	if !e.Alive() {
		t.Fatalf("death deleted the entity")
	}
	got, ok := arc.Get[component.Health](e)
	if !ok || got != h {
		t.Fatalf("health component detached on death")
	}
	if !got.IsDead() || got.Current() != 0 {
		t.Fatalf("unexpected post-death state: %v", got)
	}
}

func TestHealthSystemDeathHandler(t *testing.T) {
	world := arc.NewWorld()
	hs := system.NewHealthSystem()
	var deaths []arc.Entity
	hs.OnDeath(func(e arc.Entity, _ *component.Health) {
		deaths = append(deaths, e)
	})
	world.AddSystem(hs)
	world.Initialize()

	e := world.CreateEntity()
	h := component.NewHealth(50)
	e.AddComponent(h)

	world.Update(1.0 / 60.0)
	if len(deaths) != 0 {
		t.Fatalf("handler fired for a living entity")
	}

	h.Kill()
	world.Update(1.0 / 60.0)
	if len(deaths) != 1 || deaths[0] != e {
		t.Fatalf("expected one death for %v, got %v", e, deaths)
	}
}

func TestDeadEntitiesDoNotRegenerate(t *testing.T) {
	world := arc.NewWorld()
	world.AddSystem(system.NewHealthSystem())
	world.Initialize()

	e := world.CreateEntity()
	h := component.NewHealth(100)
	h.SetRegenRate(50)
	e.AddComponent(h)
	h.Kill()

	world.Update(1)
	if h.Current() != 0 {
		t.Fatalf("corpse regenerated to %v", h.Current())
	}
}

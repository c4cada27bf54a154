package arc_test

import (
	"errors"
	"testing"

	"github.com/arriety/arc"
)

func TestCreateEntityCommand(t *testing.T) {
	world := arc.NewWorld()
	var created arc.Entity
	cmd := arc.NewCreateEntityCommand(&created)
	if err := cmd.Apply(world); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if !created.Alive() {
		t.Fatalf("expected created entity to be live")
	}
	if world.EntityCount() != 1 {
		t.Fatalf("expected one entity, got %d", world.EntityCount())
	}
}

func TestCreateEntityCommandWithoutTarget(t *testing.T) {
	world := arc.NewWorld()
	if err := arc.NewCreateEntityCommand(nil).Apply(world); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if world.EntityCount() != 1 {
		t.Fatalf("expected one entity, got %d", world.EntityCount())
	}
}

func TestDeleteEntityCommand(t *testing.T) {
	world := arc.NewWorld()
	e := world.CreateEntity()
	e.AddComponent(&compA{})

	if err := arc.NewDeleteEntityCommand(e).Apply(world); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if e.Alive() {
		t.Fatalf("entity still live after delete command")
	}
	// Deleting twice is a no-op, like World.DeleteEntity.
	if err := arc.NewDeleteEntityCommand(e).Apply(world); err != nil {
		t.Fatalf("second apply: %v", err)
	}
}

func TestAddComponentCommand(t *testing.T) {
	world := arc.NewWorld()
	e := world.CreateEntity()

	if err := arc.NewAddComponentCommand(e, &compA{N: 7}).Apply(world); err != nil {
		t.Fatalf("apply: %v", err)
	}
	got, ok := arc.Get[compA](e)
	if !ok || got.N != 7 {
		t.Fatalf("component not attached: %v, %v", got, ok)
	}
}

func TestAddComponentCommandRejectsNilComponent(t *testing.T) {
	world := arc.NewWorld()
	e := world.CreateEntity()

	err := arc.NewAddComponentCommand(e, nil).Apply(world)
	if !errors.Is(err, arc.ErrNilComponent) {
		t.Fatalf("expected ErrNilComponent, got %v", err)
	}
}

func TestAddComponentCommandRejectsDeadEntity(t *testing.T) {
	world := arc.NewWorld()
	e := world.CreateEntity()
	world.DeleteEntity(e)

	err := arc.NewAddComponentCommand(e, &compA{}).Apply(world)
	if !errors.Is(err, arc.ErrDeadEntity) {
		t.Fatalf("expected ErrDeadEntity, got %v", err)
	}
}

func TestCommandsRejectForeignEntities(t *testing.T) {
	home := arc.NewWorld()
	away := arc.NewWorld()
	e := home.CreateEntity()

	if err := arc.NewAddComponentCommand(e, &compA{}).Apply(away); !errors.Is(err, arc.ErrForeignEntity) {
		t.Fatalf("add: expected ErrForeignEntity, got %v", err)
	}
	if err := arc.NewRemoveComponentCommand(e, &compA{}).Apply(away); !errors.Is(err, arc.ErrForeignEntity) {
		t.Fatalf("remove: expected ErrForeignEntity, got %v", err)
	}
	if err := arc.NewDeleteEntityCommand(e).Apply(away); !errors.Is(err, arc.ErrForeignEntity) {
		t.Fatalf("delete: expected ErrForeignEntity, got %v", err)
	}
}

func TestRemoveComponentCommand(t *testing.T) {
	world := arc.NewWorld()
	e := world.CreateEntity()
	e.AddComponent(&compA{})

	if err := arc.NewRemoveComponentCommand(e, &compA{}).Apply(world); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if arc.Has[compA](e) {
		t.Fatalf("component still attached after remove command")
	}
	// Removing an absent component is benign.
	if err := arc.NewRemoveComponentCommand(e, &compA{}).Apply(world); err != nil {
		t.Fatalf("second apply: %v", err)
	}
}

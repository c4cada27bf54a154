package arc

import "github.com/rotisserie/eris"

// NewCreateEntityCommand enqueues an entity creation. If target is non-nil
// it receives the created handle when the command applies.
func NewCreateEntityCommand(target *Entity) Command {
	return createEntityCommand{target: target}
}

// NewDeleteEntityCommand enqueues an entity deletion. Applying it to an
// already dead entity is a no-op, matching World.DeleteEntity.
func NewDeleteEntityCommand(e Entity) Command {
	return deleteEntityCommand{entity: e}
}

// NewAddComponentCommand enqueues a component addition.
func NewAddComponentCommand(e Entity, c Component) Command {
	return addComponentCommand{entity: e, component: c}
}

// NewRemoveComponentCommand enqueues removal of the component of proto's kind.
func NewRemoveComponentCommand(e Entity, proto Component) Command {
	return removeComponentCommand{entity: e, proto: proto}
}

type createEntityCommand struct {
	target *Entity
}

type deleteEntityCommand struct {
	entity Entity
}

type addComponentCommand struct {
	entity    Entity
	component Component
}

type removeComponentCommand struct {
	entity Entity
	proto  Component
}

func (c createEntityCommand) Apply(world *World) error {
	e := world.CreateEntity()
	if c.target != nil {
		*c.target = e
	}
	return nil
}

func (c deleteEntityCommand) Apply(world *World) error {
	if c.entity.world != nil && c.entity.world != world {
		return eris.Wrapf(ErrForeignEntity, "delete %v", c.entity)
	}
	world.DeleteEntity(c.entity)
	return nil
}

func (c addComponentCommand) Apply(world *World) error {
	if c.component == nil {
		return eris.Wrapf(ErrNilComponent, "add to %v", c.entity)
	}
	if c.entity.world != world {
		return eris.Wrapf(ErrForeignEntity, "add component to %v", c.entity)
	}
	if !c.entity.Alive() {
		return eris.Wrapf(ErrDeadEntity, "add component to %v", c.entity)
	}
	c.entity.AddComponent(c.component)
	return nil
}

func (c removeComponentCommand) Apply(world *World) error {
	if c.entity.world != world {
		return eris.Wrapf(ErrForeignEntity, "remove component from %v", c.entity)
	}
	// Removal of an absent component is benign, deletion-style.
	c.entity.RemoveComponent(c.proto)
	return nil
}

var (
	_ Command = createEntityCommand{}
	_ Command = deleteEntityCommand{}
	_ Command = addComponentCommand{}
	_ Command = removeComponentCommand{}
)

package arc

import (
	"fmt"

	"github.com/arriety/arc/container"
)

// Entity is a handle to an identity in a world: an integer ID plus the world
// it belongs to. It carries no payload of its own. Deleted IDs are recycled,
// so holding an Entity across a deletion boundary and assuming continued
// identity is a caller error; re-fetch through World.Entity when in doubt.
type Entity struct {
	id    int
	world *World
}

// ID returns the entity's integer identifier.
func (e Entity) ID() int {
	return e.id
}

// World returns the world this handle belongs to.
func (e Entity) World() *World {
	return e.world
}

// Alive reports whether the handle still names a live entity.
func (e Entity) Alive() bool {
	return e.world != nil && e.world.entities.isLive(e.id)
}

// AddComponent attaches c to the entity, replacing any existing component of
// the same kind (last write wins). Adding to a dead entity or adding nil is
// a no-op.
func (e Entity) AddComponent(c Component) {
	if c == nil || !e.Alive() {
		return
	}
	e.world.components.add(e.id, c)
}

// RemoveComponent detaches the component of proto's kind and returns it, or
// reports absence when the entity never had one.
func (e Entity) RemoveComponent(proto Component) (Component, bool) {
	if !e.Alive() {
		return nil, false
	}
	idx, ok := e.world.registry.Lookup(KindOf(proto))
	if !ok {
		return nil, false
	}
	return e.world.components.remove(e.id, idx)
}

// GetComponent returns the attached component of proto's kind, or absence.
func (e Entity) GetComponent(proto Component) (Component, bool) {
	if !e.Alive() {
		return nil, false
	}
	idx, ok := e.world.registry.Lookup(KindOf(proto))
	if !ok {
		return nil, false
	}
	return e.world.components.get(e.id, idx)
}

// HasComponent reports whether a component of proto's kind is attached. This
// is a pure bit-set read and never touches component storage.
func (e Entity) HasComponent(proto Component) bool {
	if !e.Alive() {
		return false
	}
	idx, ok := e.world.registry.Lookup(KindOf(proto))
	if !ok {
		return false
	}
	return e.world.components.has(e.id, idx)
}

// Components returns the components currently attached to the entity, in
// type-index order.
func (e Entity) Components() []Component {
	if !e.Alive() {
		return nil
	}
	return e.world.components.componentsOf(e.id)
}

// Delete removes the entity from its world. Equivalent to World.DeleteEntity.
func (e Entity) Delete() {
	if e.world != nil {
		e.world.DeleteEntity(e)
	}
}

func (e Entity) String() string {
	return fmt.Sprintf("Entity[%d]", e.id)
}

// entityManager owns identity allocation for one world. Deleted IDs are
// recycled through a FIFO queue, oldest-deleted first, so a quickly
// recreated entity receives the ID that has been free the longest.
type entityManager struct {
	world  *World
	nextID int
	alive  container.BitSet
	free   container.IntQueue
	count  int
}

func newEntityManager(w *World, capacityHint int) *entityManager {
	m := &entityManager{world: w}
	if capacityHint > 0 {
		m.alive.EnsureBits(capacityHint)
	}
	return m
}

// create allocates an ID, preferring the free queue over fresh issuance.
func (m *entityManager) create() Entity {
	id, ok := m.free.Pop()
	if !ok {
		id = m.nextID
		m.nextID++
	}
	m.alive.Set(id)
	m.count++
	return Entity{id: id, world: m.world}
}

// delete marks id dead and queues it for reuse. Safe to call on an already
// dead or never-issued ID.
func (m *entityManager) delete(id int) bool {
	if !m.isLive(id) {
		return false
	}
	m.alive.Clear(id)
	m.free.Push(id)
	m.count--
	return true
}

func (m *entityManager) isLive(id int) bool {
	return id >= 0 && m.alive.Get(id)
}

// get returns a handle for id, or absence for dead or never-issued IDs.
func (m *entityManager) get(id int) (Entity, bool) {
	if !m.isLive(id) {
		return Entity{}, false
	}
	return Entity{id: id, world: m.world}, true
}

// entities returns a snapshot of the currently live entities in ID order.
// Deletions after the snapshot do not disturb iteration over it.
func (m *entityManager) entities() []Entity {
	out := make([]Entity, 0, m.count)
	for id := m.alive.NextSetBit(0); id >= 0; id = m.alive.NextSetBit(id + 1) {
		out = append(out, Entity{id: id, world: m.world})
	}
	return out
}

func (m *entityManager) size() int {
	return m.count
}

// clear releases every identity and forgets the recycling history.
func (m *entityManager) clear() {
	m.alive.Reset()
	m.free.Clear()
	m.nextID = 0
	m.count = 0
}

package arc

import "github.com/arriety/arc/container"

// componentManager aggregates per-type component storage for one world. For
// each component kind it keeps a sparse Bag addressed by entity ID; for each
// entity it keeps a membership bit set and a reverse list of attached type
// indices used for bulk cleanup. The membership bits are the single source
// of truth for "has component": storage and bits are mutated together and a
// cleared bit fully hides whatever the storage slot holds.
type componentManager struct {
	world    *World
	stores   *container.Bag[*container.Bag[Component]] // by type index
	bits     *container.Bag[*container.BitSet]         // by entity ID
	attached *container.Bag[[]int]                     // by entity ID, type indices
	hint     int
}

func newComponentManager(w *World, entityHint, componentHint int) *componentManager {
	typeHint := componentHint
	if typeHint < 1 {
		typeHint = 16
	}
	if entityHint < 1 {
		entityHint = 16
	}
	return &componentManager{
		world:    w,
		stores:   container.NewBag[*container.Bag[Component]](typeHint),
		bits:     container.NewBag[*container.BitSet](entityHint),
		attached: container.NewBag[[]int](entityHint),
		hint:     entityHint,
	}
}

// add stores c for entity id under c's kind, sets the membership bit, and
// records the kind in the entity's reverse list. An existing component of
// the same kind is replaced: last write wins.
func (m *componentManager) add(id int, c Component) {
	idx := m.world.registry.IndexOf(KindOf(c))

	store, ok := m.stores.Get(idx)
	if !ok {
		store = container.NewBag[Component](m.hint)
		m.stores.Set(idx, store)
	}
	_, replacing := store.Get(id)
	store.Set(id, c)

	bits, ok := m.bits.Get(id)
	if !ok {
		bits = &container.BitSet{}
		m.bits.Set(id, bits)
	}
	bits.Set(idx)

	if !replacing {
		list, _ := m.attached.Get(id)
		m.attached.Set(id, append(list, idx))
	}
}

// remove clears the storage slot and the membership bit together and returns
// the removed component. Redundant calls are safe and report absence.
func (m *componentManager) remove(id, typeIndex int) (Component, bool) {
	if !m.has(id, typeIndex) {
		return nil, false
	}
	store, _ := m.stores.Get(typeIndex)
	c, _ := store.RemoveAt(id)

	bits, _ := m.bits.Get(id)
	bits.Clear(typeIndex)

	if list, ok := m.attached.Get(id); ok {
		for i, idx := range list {
			if idx == typeIndex {
				list[i] = list[len(list)-1]
				m.attached.Set(id, list[:len(list)-1])
				break
			}
		}
	}
	return c, true
}

// get returns the component stored for (id, typeIndex). Absence is reported
// whenever the membership bit is clear, regardless of what the backing slot
// holds.
func (m *componentManager) get(id, typeIndex int) (Component, bool) {
	if !m.has(id, typeIndex) {
		return nil, false
	}
	store, ok := m.stores.Get(typeIndex)
	if !ok {
		return nil, false
	}
	return store.Get(id)
}

// has is a pure bit-set read.
func (m *componentManager) has(id, typeIndex int) bool {
	bits, ok := m.bits.Get(id)
	if !ok {
		return false
	}
	return bits.Get(typeIndex)
}

// bitsFor returns the entity's membership bit set, or nil when the entity
// has never had a component. Callers treat nil as the empty set.
func (m *componentManager) bitsFor(id int) *container.BitSet {
	bits, ok := m.bits.Get(id)
	if !ok {
		return nil
	}
	return bits
}

// componentsOf returns the entity's attached components in type-index order.
func (m *componentManager) componentsOf(id int) []Component {
	bits, ok := m.bits.Get(id)
	if !ok {
		return nil
	}
	var out []Component
	for idx := bits.NextSetBit(0); idx >= 0; idx = bits.NextSetBit(idx + 1) {
		if store, ok := m.stores.Get(idx); ok {
			if c, ok := store.Get(id); ok {
				out = append(out, c)
			}
		}
	}
	return out
}

// removeAll detaches every component from entity id in one pass, zeroing the
// storage slots so a recycled ID can never observe stale data. Safe to call
// on an entity with no components.
func (m *componentManager) removeAll(id int) {
	list, ok := m.attached.Get(id)
	if ok {
		for _, idx := range list {
			if store, ok := m.stores.Get(idx); ok {
				store.RemoveAt(id)
			}
		}
		m.attached.RemoveAt(id)
	}
	if bits, ok := m.bits.Get(id); ok {
		bits.Reset()
	}
}

// clear drops all component storage, membership bits, and reverse lists.
// The type registry is left alone: indices stay stable for the process.
func (m *componentManager) clear() {
	m.stores.Clear()
	m.bits.Clear()
	m.attached.Clear()
}
